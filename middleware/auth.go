package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"service-desk/models"
	"service-desk/utils"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextClaims    = "claims"
)

type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// AuthMiddleware answers 401 when no token is presented and 403 when the
// presented token does not verify.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "token missing",
			})
			return
		}

		if !strings.EqualFold(fields[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "token invalid",
			})
			return
		}

		claims, err := verifier.Verify(fields[1])
		if err != nil {
			Logger(c).Debug("rejected bearer token", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "token invalid",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims attached by AuthMiddleware.
func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*utils.Claims)
	return claims, ok
}
