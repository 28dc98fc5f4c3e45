package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramo772/blog-management-api/cmd/api/auth"
	"github.com/ramo772/blog-management-api/cmd/api/dto"
	"github.com/ramo772/blog-management-api/cmd/api/services"
)

const passwordPolicyMessage = "password must be at least 8 characters long and include both letters and numbers."

// RegisterHandler godoc
// @Summary      Register new user
// @Description  Create an account and return the sanitized identity; the token is set in the X-Auth-Token response header
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Registration payload"
// @Success      200  {object}  dto.Response{data=dto.UserDTO}
// @Failure      400  {object}  dto.Response
// @Router       /auth/register [post]
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if !req.ValidatePassword() {
			respondError(c, http.StatusBadRequest, passwordPolicyMessage)
			return
		}

		user, token, err := svc.Register(c.Request.Context(), services.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		c.Header(auth.TokenHeader, token)
		respondSuccess(c, http.StatusOK, user)
	}
}

// LoginHandler godoc
// @Summary      Login user
// @Description  Verify credentials and return the sanitized identity; the token is set in the X-Auth-Token response header
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Login payload"
// @Success      200  {object}  dto.Response{data=dto.UserDTO}
// @Failure      400  {object}  dto.Response
// @Router       /auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		user, token, err := svc.Login(c.Request.Context(), services.LoginInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		c.Header(auth.TokenHeader, token)
		respondSuccess(c, http.StatusOK, user)
	}
}
