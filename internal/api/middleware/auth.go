package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-economy/internal/api/shared/errors"
	"github.com/feral-file/ff-economy/internal/logger"
	"github.com/feral-file/ff-economy/internal/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// Authenticator validates Authorization headers. The public key and API keys are parsed once.
type Authenticator struct {
	publicKey    *rsa.PublicKey
	publicKeyErr error
	apiKeys      map[string]bool
}

// NewAuthenticator creates an authenticator. A missing or invalid public key only fails JWT requests.
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{apiKeys: make(map[string]bool)}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = true
		}
	}

	if cfg.JWTPublicKey == "" {
		a.publicKeyErr = errors.New("JWT public key not configured")
	} else {
		a.publicKey, a.publicKeyErr = parseRSAPublicKey(cfg.JWTPublicKey)
		if a.publicKeyErr != nil {
			a.publicKeyErr = fmt.Errorf("failed to parse RSA public key: %w", a.publicKeyErr)
		}
	}
	return a
}

// Authenticate validates the Authorization header against the allowed schemes
func (a *Authenticator) Authenticate(authHeader string, allowed ...string) AuthResult {
	result := AuthResult{}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	var authType string
	switch strings.ToLower(parts[0]) {
	case "bearer":
		authType = AUTH_TYPE_JWT
	case "apikey":
		authType = AUTH_TYPE_APIKEY
	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", parts[0])
		return result
	}

	permitted := false
	for _, t := range allowed {
		if t == authType {
			permitted = true
			break
		}
	}
	if !permitted {
		result.Error = fmt.Errorf("authorization type %s is not accepted here", authType)
		return result
	}

	switch authType {
	case AUTH_TYPE_JWT:
		claims, err := a.validateJWT(parts[1])
		if err != nil {
			result.Error = err
			return result
		}
		if claims.Subject == "" {
			result.Error = errors.New("token has no subject")
			return result
		}
		result.Claims = claims
		result.AuthSubject = claims.Subject
	case AUTH_TYPE_APIKEY:
		if err := a.validateAPIKey(parts[1]); err != nil {
			result.Error = err
			return result
		}
	}

	result.Success = true
	result.AuthType = authType
	return result
}

// JWTAuth requires a bearer token. Its subject becomes the wallet principal of the request.
func JWTAuth(a *Authenticator) gin.HandlerFunc {
	return authenticate(a, AUTH_TYPE_JWT)
}

// APIKeyAuth requires an API key
func APIKeyAuth(a *Authenticator) gin.HandlerFunc {
	return authenticate(a, AUTH_TYPE_APIKEY)
}

func authenticate(a *Authenticator, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := a.Authenticate(c.GetHeader("Authorization"), allowed...)
		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.Response{
				Error: apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error()),
			})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}
		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// Principal returns the wallet the request is authenticated as
func Principal(c *gin.Context) (string, bool) {
	subject := c.GetString(string(AUTH_SUBJECT_KEY))
	return subject, subject != ""
}

// IsPrincipal reports whether the request is authenticated as wallet.
// Wallet addresses compare case insensitively.
func IsPrincipal(c *gin.Context, wallet string) bool {
	subject, ok := Principal(c)
	return ok && types.SameWallet(subject, wallet)
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// Expiry and not-before are checked by the parser.
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKeyErr != nil {
		return nil, a.publicKeyErr
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// PKIX first, then PKCS1
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}
	if !a.apiKeys[apiKey] {
		return errors.New("invalid API key")
	}
	return nil
}
