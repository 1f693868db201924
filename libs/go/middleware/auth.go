package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wkcda/crm-gateway/libs/go/logger"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned when the presented bearer token fails
// signature or claim validation.
var ErrInvalidToken = errors.New("invalid token")

// PortalClaims is the claim set the portal's identity provider issues
// for server-to-server calls.
type PortalClaims struct {
	jwt.RegisteredClaims
	ClientName string `json:"client_name,omitempty"`
}

// AuthClient validates portal credentials. The portal normally sends a
// shared API key; a JWKS-backed bearer token is accepted as well so the
// portal can migrate off static keys without a gateway release.
type AuthClient struct {
	apiKey   string
	issuer   string
	audience string
	jwks     *keyfunc.JWKS
}

// NewAuthClient creates an auth client from the environment. JWKS
// refresh runs in the background for the process lifetime.
func NewAuthClient() *AuthClient {
	client := &AuthClient{
		apiKey:   os.Getenv("PORTAL_API_KEY"),
		issuer:   os.Getenv("PORTAL_JWT_ISSUER"),
		audience: os.Getenv("PORTAL_JWT_AUDIENCE"),
	}

	jwksURL := os.Getenv("PORTAL_JWKS_ENDPOINT")
	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				logger.Error("JWKS refresh failed", zap.Error(err))
			},
		})
		if err != nil {
			logger.Error("Failed to initialize JWKS", zap.Error(err))
		} else {
			client.jwks = jwks
		}
	}

	return client
}

// validateToken parses and validates a portal bearer token.
func (ac *AuthClient) validateToken(tokenString string) (*PortalClaims, error) {
	if ac.jwks == nil {
		return nil, ErrInvalidToken
	}

	claims := &PortalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.jwks.Keyfunc,
		jwt.WithIssuer(ac.issuer),
		jwt.WithAudience(ac.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EnsureValidAPIKeyOrToken authenticates the calling portal. Requests
// without usable credentials are rejected with 401.
func (ac *AuthClient) EnsureValidAPIKeyOrToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" && ac.apiKey != "" {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(ac.apiKey)) == 1 {
				c.Next()
				return
			}
			logger.Warn("Rejected request with bad API key",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()))
			abortUnauthorized(c, "invalid API key")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := ac.validateToken(tokenString)
			if err != nil {
				logger.Warn("Rejected request with bad bearer token",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
				abortUnauthorized(c, "invalid bearer token")
				return
			}
			c.Set("client_name", claims.ClientName)
			c.Next()
			return
		}

		abortUnauthorized(c, "missing credentials")
	}
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":          detail,
		"correlation_id": GetCorrelationID(c),
	})
}
