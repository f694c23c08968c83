package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	UserKey  = "userID"
	EmailKey = "userEmail"
	RoleKey  = "userRole"
)

// Auth verifies bearer tokens issued by the hosted auth provider. The
// secret is injected at construction; there is no package-level state.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

func (a *Auth) parseToken(tokenStr string) (jwt.MapClaims, error) {
	if len(a.secret) == 0 {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func setClaims(c *gin.Context, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Set(UserKey, sub)
	}
	if email, ok := claims["email"].(string); ok {
		c.Set(EmailKey, email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set(RoleKey, role)
	}
}

// authenticate parses the bearer token and loads its claims onto the
// context. Reports whether the request carries a valid token with a subject.
func (a *Auth) authenticate(c *gin.Context) bool {
	tokenStr := bearerToken(c)
	if tokenStr == "" {
		return false
	}

	claims, err := a.parseToken(tokenStr)
	if err != nil {
		return false
	}

	setClaims(c, claims)
	return GetUserID(c) != ""
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the admin role. The role
// is checked before any downstream handler runs.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if GetRole(c) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	if val, exists := c.Get(UserKey); exists {
		return val.(string)
	}
	return ""
}

func GetEmail(c *gin.Context) string {
	if val, exists := c.Get(EmailKey); exists {
		return val.(string)
	}
	return ""
}

func GetRole(c *gin.Context) string {
	if val, exists := c.Get(RoleKey); exists {
		return val.(string)
	}
	return ""
}
