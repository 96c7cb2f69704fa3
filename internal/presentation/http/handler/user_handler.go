package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// UserHandler handles staff account HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing staff accounts
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", response.NewUserListResponse(users))
}

// Create handles creating a staff account
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), service.CreateUserInput{
		Name: req.Name,
		Role: enum.Role(req.Role),
		PIN:  req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", response.NewUserResponse(*user))
}

// Update handles patching a staff account
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "User ID is required")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := service.UpdateUserInput{Name: req.Name}
	if req.Role != nil {
		role := enum.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", response.NewUserResponse(*user))
}

// Delete handles removing a staff account
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "User ID is required")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ChangePIN handles changing a staff account's PIN. Staff may only change
// their own PIN; admins may change anyone's.
func (h *UserHandler) ChangePIN(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "User ID is required")
		return
	}

	if id != GetUserID(c) && !IsAdmin(c) {
		response.Forbidden(c, "You can only change your own PIN")
		return
	}

	var req request.ChangePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.userService.ChangePIN(c.Request.Context(), id, req.CurrentPIN, req.NewPIN); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "PIN changed successfully", nil)
}

// RecipientHandler handles day-summary email recipient HTTP requests
type RecipientHandler struct {
	recipientService *service.RecipientService
}

// NewRecipientHandler creates a new recipient handler
func NewRecipientHandler(recipientService *service.RecipientService) *RecipientHandler {
	return &RecipientHandler{recipientService: recipientService}
}

// List handles listing recipient addresses
func (h *RecipientHandler) List(c *gin.Context) {
	recipients, err := h.recipientService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipients retrieved successfully", recipients)
}

// Add handles adding a recipient address
func (h *RecipientHandler) Add(c *gin.Context) {
	var req request.AddRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.recipientService.Add(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Recipient added successfully", nil)
}

// Remove handles deleting a recipient address
func (h *RecipientHandler) Remove(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.BadRequest(c, "Recipient email is required")
		return
	}

	if err := h.recipientService.Remove(c.Request.Context(), email); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
