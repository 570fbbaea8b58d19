package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bank-backoffice.backend/internal/domain/entities"
	"bank-backoffice.backend/internal/interfaces/http/response"
	"bank-backoffice.backend/internal/usecases"
	"bank-backoffice.backend/pkg/validation"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	validator   *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindAndValidate(c, h.validator, &input) {
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input entities.RefreshInput
	if !bindAndValidate(c, h.validator, &input) {
		return
	}

	authResponse, err := h.authUsecase.RefreshToken(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}
