package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	// URL is optional; transaction events are not published when empty
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// LedgerConfig holds the WLOS token ledger configuration
type LedgerConfig struct {
	RPCURL       string `mapstructure:"rpc_url"`
	ChainID      int64  `mapstructure:"chain_id"`
	TokenAddress string `mapstructure:"token_address"`
	// TreasuryKey is the hex encoded private key of the treasury wallet
	TreasuryKey         string        `mapstructure:"treasury_key"`
	CallTimeout         time.Duration `mapstructure:"call_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	WaitForReceipt      bool          `mapstructure:"wait_for_receipt"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	ConfirmationTaskQueue              string  `mapstructure:"confirmation_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins is the list of browser origins; empty allows all
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds the per wallet rate limit of mutating requests
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	// MaxPrincipals bounds the number of limiters kept in memory
	MaxPrincipals int `mapstructure:"max_principals"`
}

// EconomyConfig holds the game economy switches
type EconomyConfig struct {
	ChargeLevelUpCost bool          `mapstructure:"charge_level_up_cost"`
	PackCacheSize     int           `mapstructure:"pack_cache_size"`
	PackCacheTTL      time.Duration `mapstructure:"pack_cache_ttl"`
	// ExecutorPoolSize bounds the concurrent store reads of aggregate endpoints
	ExecutorPoolSize int `mapstructure:"executor_pool_size"`
}

// ConfirmationConfig holds the ledger confirmation tracking configuration
type ConfirmationConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Depth           uint64        `mapstructure:"depth"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	TrackingTimeout time.Duration `mapstructure:"tracking_timeout"`
}

// ReconcilerConfig holds the inconsistency reconciler configuration
type ReconcilerConfig struct {
	Interval             time.Duration `mapstructure:"interval"`
	BatchSize            int           `mapstructure:"batch_size"`
	WorkerPoolSize       int           `mapstructure:"worker_pool_size"`
	MaxAttempts          int           `mapstructure:"max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	RetryMaxElapsedTime  time.Duration `mapstructure:"retry_max_elapsed_time"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Auth         AuthConfig         `mapstructure:"auth"`
	RateLimit    RateLimitConfig    `mapstructure:"ratelimit"`
	Ledger       LedgerConfig       `mapstructure:"ledger"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Temporal     TemporalConfig     `mapstructure:"temporal"`
	Confirmation ConfirmationConfig `mapstructure:"confirmation"`
	Economy      EconomyConfig      `mapstructure:"economy"`
}

// WorkerCoreConfig holds configuration for worker-core
type WorkerCoreConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Temporal     TemporalConfig     `mapstructure:"temporal"`
	Ledger       LedgerConfig       `mapstructure:"ledger"`
	Confirmation ConfirmationConfig `mapstructure:"confirmation"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Reconciler ReconcilerConfig `mapstructure:"reconciler"`
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("ledger.chain_id", 1)
	v.SetDefault("ledger.call_timeout", "30s")
	v.SetDefault("ledger.receipt_poll_interval", "2s")
	v.SetDefault("ledger.wait_for_receipt", true)
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.confirmation_task_queue", "ledger-confirmation")
}

func setConfirmationDefaults(v *viper.Viper) {
	v.SetDefault("confirmation.depth", 12)
	v.SetDefault("confirmation.poll_interval", "15s")
	v.SetDefault("confirmation.tracking_timeout", "2h")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.stream_name", "ECONOMY_TRANSACTIONS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	// value moving calls wait for the ledger receipt
	v.SetDefault("server.write_timeout", 90)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_second", 5)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("ratelimit.max_principals", 10000)
	v.SetDefault("economy.charge_level_up_cost", false)
	v.SetDefault("economy.pack_cache_size", 128)
	v.SetDefault("economy.pack_cache_ttl", "5m")
	v.SetDefault("economy.executor_pool_size", 8)
	v.SetDefault("nats.connection_name", "ff-economy-api")
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setTemporalDefaults(v)
	setConfirmationDefaults(v)
	setNATSDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWorkerCoreConfig loads configuration for worker-core
func LoadWorkerCoreConfig(configFile string, envPath string) (*WorkerCoreConfig, error) {
	v := configureViper("worker-core", configFile, envPath)

	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setTemporalDefaults(v)
	setConfirmationDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerCoreConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Ledger.RPCURL == "" {
		return nil, errors.New("ledger.rpc_url is required")
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	v.SetDefault("reconciler.interval", "1m")
	v.SetDefault("reconciler.batch_size", 100)
	v.SetDefault("reconciler.worker_pool_size", 4)
	v.SetDefault("reconciler.max_attempts", 20)
	v.SetDefault("reconciler.retry_initial_interval", "500ms")
	v.SetDefault("reconciler.retry_max_elapsed_time", "30s")
	v.SetDefault("nats.connection_name", "ff-economy-sweeper")
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// readConfig reads the config file, falling back to environment variables when there is none
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_ECONOMY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Ledger
		"ledger.rpc_url",
		"ledger.chain_id",
		"ledger.token_address",
		"ledger.treasury_key",
		"ledger.call_timeout",
		"ledger.receipt_poll_interval",
		"ledger.wait_for_receipt",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.confirmation_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Confirmation
		"confirmation.enabled",
		"confirmation.depth",
		"confirmation.poll_interval",
		"confirmation.tracking_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"ratelimit.enabled",
		"ratelimit.requests_per_second",
		"ratelimit.burst",
		"ratelimit.max_principals",
		// Economy
		"economy.charge_level_up_cost",
		"economy.pack_cache_size",
		"economy.pack_cache_ttl",
		"economy.executor_pool_size",
		// Reconciler
		"reconciler.interval",
		"reconciler.batch_size",
		"reconciler.worker_pool_size",
		"reconciler.max_attempts",
		"reconciler.retry_initial_interval",
		"reconciler.retry_max_elapsed_time",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		// Overload lets later files override earlier ones
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
