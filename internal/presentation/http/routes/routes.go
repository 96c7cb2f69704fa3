package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/config"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/handler"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/middleware"
	"github.com/arpanregmi/cafepos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Tab       *handler.TabHandler
	Credit    *handler.CreditHandler
	Creditor  *handler.CreditorHandler
	Day       *handler.DayHandler
	Inventory *handler.InventoryHandler
	Timesheet *handler.TimesheetHandler
	Wage      *handler.WageHandler
	User      *handler.UserHandler
	Recipient *handler.RecipientHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		// Public routes (no authentication required)
		api.POST("/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Bill/tab ledger
	protected.GET("/data", h.Tab.GetData)
	protected.POST("/data", h.Tab.ReplaceData)

	registerBillRoutes(protected, h)
	registerTabRoutes(protected, h)
	registerCreditorRoutes(protected, h)
	registerCreditLogRoutes(protected, h)
	registerDayRoutes(protected, h)
	registerInventoryRoutes(protected, h)
	registerTimesheetRoutes(protected, h)
	registerUserRoutes(protected, h)
	registerRecipientRoutes(protected, h)
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers) {
	bills := protected.Group("/bills")
	{
		bills.POST("", h.Tab.CreateBill)
		bills.PATCH("/:id", h.Tab.UpdateBill)
		bills.POST("/:id/credit-payment", h.Credit.RecordPayment)
		bills.POST("/:id/request-clear", h.Credit.RequestClear)
		bills.POST("/:id/approve-clear", middleware.RequireRole("admin"), h.Credit.ApproveClear)
		bills.POST("/:id/reject-clear", middleware.RequireRole("admin"), h.Credit.RejectClear)
	}
}

func registerTabRoutes(protected *gin.RouterGroup, h *Handlers) {
	tabs := protected.Group("/tabs")
	{
		tabs.POST("/:table", h.Tab.OpenTab)
		tabs.POST("/:table/add", h.Tab.AddItem)
		tabs.POST("/:table/remove", h.Tab.RemoveItem)
		tabs.PATCH("/:table/customer", h.Tab.SetCustomer)
		tabs.POST("/:table/complete", h.Tab.CompleteTab)
		tabs.POST("/:table/cancel", h.Tab.CancelTab)
		tabs.POST("/:table/transfer", h.Tab.TransferTab)
	}
}

func registerCreditorRoutes(protected *gin.RouterGroup, h *Handlers) {
	creditors := protected.Group("/creditors")
	{
		creditors.GET("", h.Creditor.List)
		creditors.POST("", h.Creditor.Create)
		creditors.PATCH("/:id", h.Creditor.Update)
		creditors.DELETE("/:id", middleware.RequireRole("admin"), h.Creditor.Delete)
		creditors.GET("/:id/outstanding", h.Creditor.Outstanding)
	}
}

func registerCreditLogRoutes(protected *gin.RouterGroup, h *Handlers) {
	logs := protected.Group("/credit-logs")
	{
		logs.GET("", h.Credit.ListLogs)
		logs.GET("/recent", h.Credit.RecentLogs)
	}
}

func registerDayRoutes(protected *gin.RouterGroup, h *Handlers) {
	days := protected.Group("/days")
	{
		days.GET("/current", h.Day.Current)
		days.POST("/start", h.Day.Start)
		days.POST("/end", h.Day.End)
		days.GET("/summary", h.Day.Summary)
		days.GET("/blockers", h.Day.Blockers)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("/entries", h.Inventory.ListEntries)
		inventory.POST("/entries", h.Inventory.AddEntry)
		inventory.GET("/requests", h.Inventory.ListRequests)
		inventory.POST("/requests", h.Inventory.CreateRequest)
		inventory.PATCH("/requests/:id/fulfill", h.Inventory.FulfillRequest)
		inventory.PATCH("/requests/:id/cancel", h.Inventory.CancelRequest)
	}
}

func registerTimesheetRoutes(protected *gin.RouterGroup, h *Handlers) {
	timesheets := protected.Group("/timesheets")
	{
		timesheets.GET("", h.Timesheet.List)
		timesheets.GET("/active", h.Timesheet.Active)
		timesheets.POST("/clockin", h.Timesheet.ClockIn)
		timesheets.POST("/clockout", h.Timesheet.ClockOut)
	}

	wages := protected.Group("/wages")
	{
		wages.GET("", h.Wage.List)
		wages.POST("/pay", h.Wage.Pay)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", middleware.RequireRole("admin"), h.User.Create)
		users.PATCH("/:id", middleware.RequireRole("admin"), h.User.Update)
		users.DELETE("/:id", middleware.RequireRole("admin"), h.User.Delete)
		users.POST("/:id/change-pin", h.User.ChangePIN)
	}
}

func registerRecipientRoutes(protected *gin.RouterGroup, h *Handlers) {
	recipients := protected.Group("/email-recipients")
	{
		recipients.GET("", h.Recipient.List)
		recipients.POST("", h.Recipient.Add)
		recipients.DELETE("/:email", h.Recipient.Remove)
	}
}
