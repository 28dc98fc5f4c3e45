package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the custom header carrying the auth token on requests and
// returned on register/login responses.
const TokenHeader = "X-Auth-Token"

var (
	ErrMissingToken = errors.New("missing_auth_token")
	ErrEmptyToken   = errors.New("empty_auth_token")
)

// ExtractToken reads the token from the X-Auth-Token header.
func ExtractToken(c *gin.Context) (string, error) {
	headerValue := c.GetHeader(TokenHeader)
	if headerValue == "" {
		return "", ErrMissingToken
	}

	token := strings.TrimSpace(headerValue)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
}
