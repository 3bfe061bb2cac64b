package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yashwardhan0703/ecomerce-backend/models"
)

// Context keys set by the auth middleware.
const (
	UserContextKey = "userID"
	RoleContextKey = "userRole"
)

// GenerateToken issues an HS256 token carrying user ID and role, valid for
// 24 hours.
func GenerateToken(secret string, userID primitive.ObjectID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.Hex(),
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken validates the token signature and expiry and returns its claims.
func parseToken(secret, tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireAuth authenticates the bearer token and stores the user identity in
// the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Please provide a token",
			})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := parseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		rawID, _ := claims["user_id"].(string)
		userID, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token claims",
			})
			return
		}

		role, _ := claims["role"].(string)

		c.Set(UserContextKey, userID)
		c.Set(RoleContextKey, role)
		c.Next()
	}
}

// RequireAdmin rejects authenticated identities lacking the admin role. It
// must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied. Admin role required.",
			})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the request context.
func GetUserID(c *gin.Context) (primitive.ObjectID, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(primitive.ObjectID); ok {
			return id, nil
		}
	}
	return primitive.NilObjectID, errors.New("user ID not found in context")
}

// GetUserRole returns the authenticated user's role, or "" when absent.
func GetUserRole(c *gin.Context) string {
	if val, ok := c.Get(RoleContextKey); ok {
		if role, ok := val.(string); ok {
			return role
		}
	}
	return ""
}
