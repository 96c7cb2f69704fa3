package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// TabHandler handles bill and tab HTTP requests
type TabHandler struct {
	tabService *service.TabService
}

// NewTabHandler creates a new tab handler
func NewTabHandler(tabService *service.TabService) *TabHandler {
	return &TabHandler{tabService: tabService}
}

// GetData handles fetching the full bill/tab ledger
func (h *TabHandler) GetData(c *gin.Context) {
	data, err := h.tabService.Data(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data retrieved successfully", data)
}

// ReplaceData handles overwriting the full bill/tab ledger
func (h *TabHandler) ReplaceData(c *gin.Context) {
	var data entity.BillData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.tabService.ReplaceData(c.Request.Context(), &data); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data saved successfully", data)
}

// CreateBill handles appending an externally-built completed bill
func (h *TabHandler) CreateBill(c *gin.Context) {
	var bill entity.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.tabService.CreateBill(c.Request.Context(), bill)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", created)
}

// UpdateBill handles patching the editable fields of a completed bill
func (h *TabHandler) UpdateBill(c *gin.Context) {
	billID := c.Param("id")
	if billID == "" {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	var req request.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.tabService.UpdateBill(c.Request.Context(), billID, service.UpdateBillInput{
		CustomerName: req.CustomerName,
		CreditName:   req.CreditName,
		CreditorID:   req.CreditorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}

// OpenTab handles opening a tab on a table
func (h *TabHandler) OpenTab(c *gin.Context) {
	table := c.Param("table")

	var req request.OpenTabRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tab, err := h.tabService.OpenTab(c.Request.Context(), table, req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab opened successfully", tab)
}

// AddItem handles appending an item to a table's tab
func (h *TabHandler) AddItem(c *gin.Context) {
	table := c.Param("table")

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item := entity.BillItem{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	tab, err := h.tabService.AddItem(c.Request.Context(), table, item, GetUserName(c), req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added successfully", tab)
}

// RemoveItem handles removing an item from a table's tab by index
func (h *TabHandler) RemoveItem(c *gin.Context) {
	table := c.Param("table")

	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tab, err := h.tabService.RemoveItem(c.Request.Context(), table, req.Index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed successfully", tab)
}

// SetCustomer handles updating the customer name on an open tab
func (h *TabHandler) SetCustomer(c *gin.Context) {
	table := c.Param("table")

	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.tabService.SetCustomer(c.Request.Context(), table, req.CustomerName); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", nil)
}

// CompleteTab handles settling a tab into a completed bill
func (h *TabHandler) CompleteTab(c *gin.Context) {
	table := c.Param("table")

	var req request.CompleteTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.tabService.CompleteTab(c.Request.Context(), table, service.CompleteTabInput{
		PaymentMode:   enum.PaymentMode(req.PaymentMode),
		User:          GetUserName(c),
		CreditName:    req.CreditName,
		CreditorID:    req.CreditorID,
		CashAmount:    req.CashAmount,
		QRAmount:      req.QRAmount,
		PartialAmount: req.PartialAmount,
		PartialMethod: enum.PaymentMethod(req.PartialMethod),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab completed successfully", bill)
}

// CancelTab handles discarding a table's open tab
func (h *TabHandler) CancelTab(c *gin.Context) {
	table := c.Param("table")

	if err := h.tabService.CancelTab(c.Request.Context(), table); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab cancelled successfully", nil)
}

// TransferTab handles moving an open tab to a vacant table
func (h *TabHandler) TransferTab(c *gin.Context) {
	table := c.Param("table")

	var req request.TransferTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tab, err := h.tabService.TransferTab(c.Request.Context(), table, req.TargetTable)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tab transferred successfully", tab)
}
