package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles PIN login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", response.LoginResponse{
		Token: result.Token,
		User:  response.NewUserResponse(result.User),
	})
}
