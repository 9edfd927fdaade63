package middleware

import (
	"strings"
	"time"

	"article-hub/config"
	"article-hub/helper"
	"article-hub/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var HTTPHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ContextUserID reads the authenticated user id set by AuthMiddleware.
// uuid.Nil means no valid session reached this handler.
func ContextUserID(c *gin.Context) uuid.UUID {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func AuthMiddleware(revocations *session.RevocationList) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorized(c, "Bearer token required")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})
		if err != nil {
			HTTPHelper.SendUnauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}
		if !token.Valid {
			HTTPHelper.SendUnauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		if revocations != nil && revocations.IsRevoked(claims.ID) {
			HTTPHelper.SendUnauthorized(c, "Token has been revoked")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			HTTPHelper.SendUnauthorized(c, "Invalid token subject")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		} else {
			c.Set("token_exp", time.Now().Add(config.JWTExpiration))
		}

		c.Next()
	}
}
