package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// CreditorHandler handles creditor HTTP requests
type CreditorHandler struct {
	creditorService *service.CreditorService
	creditService   *service.CreditService
}

// NewCreditorHandler creates a new creditor handler
func NewCreditorHandler(creditorService *service.CreditorService, creditService *service.CreditService) *CreditorHandler {
	return &CreditorHandler{creditorService: creditorService, creditService: creditService}
}

// List handles listing creditors
func (h *CreditorHandler) List(c *gin.Context) {
	creditors, err := h.creditorService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Creditors retrieved successfully", creditors)
}

// Create handles registering a creditor
func (h *CreditorHandler) Create(c *gin.Context) {
	var req request.CreateCreditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	creditor, err := h.creditorService.Create(c.Request.Context(), service.CreateCreditorInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedBy: GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Creditor created successfully", creditor)
}

// Update handles patching a creditor record
func (h *CreditorHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Creditor ID is required")
		return
	}

	var req request.UpdateCreditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	creditor, err := h.creditorService.Update(c.Request.Context(), id, service.UpdateCreditorInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Notes:  req.Notes,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Creditor updated successfully", creditor)
}

// Delete handles removing a creditor
func (h *CreditorHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Creditor ID is required")
		return
	}

	if err := h.creditorService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Outstanding handles listing a creditor's outstanding bills and total
func (h *CreditorHandler) Outstanding(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Creditor ID is required")
		return
	}

	result, err := h.creditService.GetOutstanding(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outstanding credit retrieved successfully", result)
}
