package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ramo772/blog-management-api/cmd/api/auth"
	"github.com/ramo772/blog-management-api/cmd/api/dto"
	"github.com/ramo772/blog-management-api/cmd/api/services"
	"github.com/ramo772/blog-management-api/internal/logger"
)

const (
	ctxKeyUserID  = "user_id"
	ctxKeyIsAdmin = "is_admin"
)

const invalidTokenMessage = "invalid token."

// AuthMiddleware verifies the X-Auth-Token header on protected routes and
// injects the caller's identity into the gin context. A missing header is
// rejected with 401; a token that fails verification with 400.
func AuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		sub, isAdmin, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.DebugWithFields("token verification failed", logger.Fields{"error": err.Error()})
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Response{Success: false, Error: invalidTokenMessage})
			return
		}

		callerID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Response{Success: false, Error: invalidTokenMessage})
			return
		}

		c.Set(ctxKeyUserID, callerID)
		c.Set(ctxKeyIsAdmin, isAdmin)

		c.Next()
	}
}

// CallerID returns the authenticated caller's id set by AuthMiddleware.
func CallerID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// IsAdmin reports whether the caller's token carried the admin flag.
func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIsAdmin)
	if !ok {
		return false
	}
	isAdmin, _ := v.(bool)
	return isAdmin
}
