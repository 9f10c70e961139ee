package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Rows the economy schema seeds and the store tests rely on
const (
	seededStakingPools = 4
	seededPackTypes    = 4
)

var testDB *gorm.DB

// TestMain loads the economy schema into a throwaway Postgres and runs the store suite
// against it. TEST_DB_HOST points the suite at an existing server instead.
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, terminate, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("Failed to prepare test database: %v\n", err)
		os.Exit(1)
	}

	code, err := runWithDatabase(m, dsn)
	if err != nil {
		fmt.Printf("Failed to initialize test database: %v\n", err)
		code = 1
	}
	terminate()

	os.Exit(code)
}

func runWithDatabase(m *testing.M, dsn string) (int, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return 1, fmt.Errorf("failed to connect: %w", err)
	}
	if err := loadEconomySchema(db); err != nil {
		return 1, err
	}
	if err := checkReferenceData(db); err != nil {
		return 1, err
	}

	testDB = db
	return m.Run(), nil
}

// testDSN returns the DSN of the test database and a func that releases it
func testDSN(ctx context.Context) (string, func(), error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "economy_test"))
		fmt.Printf("Using external database: %s\n", host)
		return dsn, func() {}, nil
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("economy_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate postgres container: %v\n", err)
		}
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return dsn, terminate, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEconomySchema executes db/init_pg_db.sql, which also seeds the staking pools and pack types
func loadEconomySchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaSQL, err := os.ReadFile(filepath.Join("..", "..", "db", "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func checkReferenceData(db *gorm.DB) error {
	var pools, packTypes int64
	if err := db.Table("staking_pools").Count(&pools).Error; err != nil {
		return fmt.Errorf("failed to count staking pools: %w", err)
	}
	if err := db.Table("pack_types").Count(&packTypes).Error; err != nil {
		return fmt.Errorf("failed to count pack types: %w", err)
	}
	if pools != seededStakingPools {
		return fmt.Errorf("expected %d seeded staking pools, found %d", seededStakingPools, pools)
	}
	if packTypes != seededPackTypes {
		return fmt.Errorf("expected %d seeded pack types, found %d", seededPackTypes, packTypes)
	}
	return nil
}

// initPGTestDB returns a store bound to a transaction that is rolled back when the test ends
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func TestPostgreSQLStore(t *testing.T) {
	require.NotNil(t, testDB, "test database not initialized")

	// Rollback in initPGTestDB already resets every subtest
	RunStoreTests(t, initPGTestDB, func(*testing.T) {})
}
