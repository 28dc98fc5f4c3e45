package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ramo772/blog-management-api/cmd/api/dto"
)

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Response{Success: true, Data: data})
}

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{Success: false, Error: message})
}

const internalErrorMessage = "internal server error."
