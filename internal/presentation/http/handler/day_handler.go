package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/request"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/dto/response"
)

// DayHandler handles accounting day HTTP requests
type DayHandler struct {
	dayService *service.DayService
}

// NewDayHandler creates a new day handler
func NewDayHandler(dayService *service.DayService) *DayHandler {
	return &DayHandler{dayService: dayService}
}

// Current handles fetching the day state (current day + history)
func (h *DayHandler) Current(c *gin.Context) {
	state, err := h.dayService.State(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day state retrieved successfully", state)
}

// Start handles opening a new accounting day
func (h *DayHandler) Start(c *gin.Context) {
	var req request.StartDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	day, err := h.dayService.StartDay(c.Request.Context(), service.StartDayInput{
		StartedBy:   Actor(c),
		OpeningCash: req.OpeningCash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Day started successfully", day)
}

// End handles closing the current accounting day
func (h *DayHandler) End(c *gin.Context) {
	var req request.EndDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	day, summary, err := h.dayService.EndDay(c.Request.Context(), service.EndDayInput{
		EndedBy:     Actor(c),
		ClosingCash: req.ClosingCash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day ended successfully", gin.H{
		"day":     day,
		"summary": summary,
	})
}

// Summary handles computing the reconciliation summary for the current day
func (h *DayHandler) Summary(c *gin.Context) {
	summary, err := h.dayService.CurrentSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day summary retrieved successfully", summary)
}

// Blockers handles listing what prevents the current day from closing
func (h *DayHandler) Blockers(c *gin.Context) {
	blockers, err := h.dayService.ActiveBlockers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Day blockers retrieved successfully", blockers)
}
