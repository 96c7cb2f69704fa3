package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// TimesheetHandler handles timesheet HTTP requests
type TimesheetHandler struct {
	timesheetService *service.TimesheetService
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(timesheetService *service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// List handles listing timesheet entries
func (h *TimesheetHandler) List(c *gin.Context) {
	entries, err := h.timesheetService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Timesheets retrieved successfully", entries)
}

// Active handles listing currently clocked-in staff
func (h *TimesheetHandler) Active(c *gin.Context) {
	entries, err := h.timesheetService.Active(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active timesheets retrieved successfully", entries)
}

// ClockIn handles opening a shift for the authenticated user
func (h *TimesheetHandler) ClockIn(c *gin.Context) {
	entry, err := h.timesheetService.ClockIn(c.Request.Context(), GetUserID(c), GetUserName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Clocked in successfully", entry)
}

// ClockOut handles closing the authenticated user's open shift
func (h *TimesheetHandler) ClockOut(c *gin.Context) {
	entry, err := h.timesheetService.ClockOut(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clocked out successfully", entry)
}

// WageHandler handles wage HTTP requests
type WageHandler struct {
	wageService *service.WageService
}

// NewWageHandler creates a new wage handler
func NewWageHandler(wageService *service.WageService) *WageHandler {
	return &WageHandler{wageService: wageService}
}

// List handles listing wage payments
func (h *WageHandler) List(c *gin.Context) {
	payments, err := h.wageService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wage payments retrieved successfully", payments)
}

// Pay handles recording a wage payout
func (h *WageHandler) Pay(c *gin.Context) {
	var req request.PayWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := h.wageService.Pay(c.Request.Context(), service.PayInput{
		UserID: req.UserID,
		Amount: req.Amount,
		PaidBy: GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Wage payment recorded successfully", payment)
}
