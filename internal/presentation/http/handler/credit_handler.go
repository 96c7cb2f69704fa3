package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// CreditHandler handles credit ledger HTTP requests
type CreditHandler struct {
	creditService *service.CreditService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *service.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// RecordPayment handles recording a payment against an outstanding credit bill
func (h *CreditHandler) RecordPayment(c *gin.Context) {
	billID := c.Param("id")
	if billID == "" {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.creditService.RecordPayment(c.Request.Context(), billID, service.RecordPaymentInput{
		Amount:     req.Amount,
		Method:     enum.PaymentMethod(req.Method),
		RecordedBy: GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", bill)
}

// RequestClear handles flagging an outstanding bill for clearance approval
func (h *CreditHandler) RequestClear(c *gin.Context) {
	billID := c.Param("id")
	if billID == "" {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	bill, err := h.creditService.RequestClear(c.Request.Context(), billID, GetUserName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clear requested successfully", bill)
}

// ApproveClear handles approving a pending clear request
func (h *CreditHandler) ApproveClear(c *gin.Context) {
	billID := c.Param("id")
	if billID == "" {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	bill, err := h.creditService.ApproveClear(c.Request.Context(), billID, GetUserName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit cleared successfully", bill)
}

// RejectClear handles rejecting a pending clear request
func (h *CreditHandler) RejectClear(c *gin.Context) {
	billID := c.Param("id")
	if billID == "" {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	bill, err := h.creditService.RejectClear(c.Request.Context(), billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clear request rejected", bill)
}

// ListLogs handles listing credit log entries, optionally windowed by days
func (h *CreditHandler) ListLogs(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = parsed
	}

	logs, err := h.creditService.ListLogs(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit logs retrieved successfully", logs)
}

// RecentLogs handles listing today's and yesterday's credit log entries
func (h *CreditHandler) RecentLogs(c *gin.Context) {
	logs, err := h.creditService.RecentLogs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent credit logs retrieved successfully", logs)
}
