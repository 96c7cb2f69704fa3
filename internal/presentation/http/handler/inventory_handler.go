package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListEntries handles listing inventory purchases
func (h *InventoryHandler) ListEntries(c *gin.Context) {
	data, err := h.inventoryService.Data(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory entries retrieved successfully", data.Entries)
}

// AddEntry handles recording an immediate inventory purchase
func (h *InventoryHandler) AddEntry(c *gin.Context) {
	var req request.AddInventoryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.inventoryService.AddEntry(c.Request.Context(), service.AddEntryInput{
		Item:       req.Item,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		TotalPrice: req.TotalPrice,
		PaidVia:    enum.PaymentMethod(req.PaidVia),
		AddedBy:    GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory entry added successfully", entry)
}

// ListRequests handles listing purchase requests
func (h *InventoryHandler) ListRequests(c *gin.Context) {
	data, err := h.inventoryService.Data(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory requests retrieved successfully", data.Requests)
}

// CreateRequest handles raising a purchase request
func (h *InventoryHandler) CreateRequest(c *gin.Context) {
	var req request.CreateInventoryRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.inventoryService.CreateRequest(c.Request.Context(), service.CreateRequestInput{
		Item:              req.Item,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		Notes:             req.Notes,
		RecommendedPrice:  req.RecommendedPrice,
		RecommendedMethod: req.RecommendedMethod,
		RequestedBy:       GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory request created successfully", created)
}

// FulfillRequest handles fulfilling a pending purchase request
func (h *InventoryHandler) FulfillRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Request ID is required")
		return
	}

	var req request.FulfillInventoryRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.inventoryService.FulfillRequest(c.Request.Context(), id, service.FulfillRequestInput{
		FulfilledBy: GetUserName(c),
		TotalPrice:  req.TotalPrice,
		PaidVia:     enum.PaymentMethod(req.PaidVia),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory request fulfilled successfully", updated)
}

// CancelRequest handles cancelling a pending purchase request
func (h *InventoryHandler) CancelRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Request ID is required")
		return
	}

	updated, err := h.inventoryService.CancelRequest(c.Request.Context(), id, GetUserName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory request cancelled successfully", updated)
}
