package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// ContextUserKey is the gin context key carrying the authenticated user id.
const ContextUserKey = "user_id"

// Authenticator resolves bearer tokens to internal user ids. API keys and
// JWTs both land on the same user id, which parameterizes every tenant
// session downstream.
type Authenticator struct {
	keys  *KeyManager
	jwt   *JWTValidator
	users *services.UserService
}

// NewAuthenticator wires the two credential paths over the root client.
func NewAuthenticator(root *ent.Client, keys *KeyManager, jwt *JWTValidator) *Authenticator {
	return &Authenticator{
		keys:  keys,
		jwt:   jwt,
		users: services.NewUserService(root),
	}
}

// Middleware authenticates every request. Tokens starting with the API key
// prefix go through bcrypt verification; everything else is treated as a
// JWT. Unknown JWT subjects are provisioned on first sight.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		var userID string
		if strings.HasPrefix(token, KeyPrefixLive) {
			id, err := a.keys.Verify(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				return
			}
			userID = id
		} else {
			if a.jwt == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "JWT authentication not configured"})
				return
			}
			claims, err := a.jwt.Validate(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			user, err := a.users.GetOrCreateByExternalSubject(c.Request.Context(), claims.Subject, claims.Email)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
				return
			}
			userID = user.ID
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id from the gin context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}
