// Package server assembles the HTTP router: middleware, services, handlers
// and routes.
package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"finman/internal/config"
	"finman/internal/docs"
	"finman/internal/handlers"
	"finman/internal/middleware"
	"finman/internal/notify"
	"finman/internal/services"
)

// Endpoint is one entry of the /api/docs index.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// DocsResponse is the body of GET /api/docs.
type DocsResponse struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Swagger   string     `json:"swagger"`
	Endpoints []Endpoint `json:"endpoints"`
}

// NewRouter builds the gin engine serving the whole API. notifier is used by
// the bill reminder pipeline; the router never starts goroutines of its own.
func NewRouter(cfg *config.Config, db *gorm.DB, notifier notify.Notifier) *gin.Engine {
	// Services
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewGoalService(db)
	recurringService := services.NewRecurringService(db)
	billService := services.NewBillService(db)
	sharedService := services.NewSharedExpenseService(db)
	reportService := services.NewReportService(db, expenseService)
	reminderService := services.NewReminderService(db, notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	profileHandler := handlers.NewProfileHandler(userService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	recurringHandler := handlers.NewRecurringHandler(recurringService, auditService)
	billHandler := handlers.NewBillHandler(billService, auditService)
	sharedHandler := handlers.NewSharedExpenseHandler(sharedService, auditService)
	reportHandler := handlers.NewReportHandler(reportService, auditService)
	pipelineHandler := handlers.NewPipelineHandler(reminderService, cfg.ReminderWindow)

	metrics := middleware.NewMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(metrics.Middleware())
	router.Use(middleware.ErrorHandler())

	health := healthHandler(db)
	router.GET("/health", health)
	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", health)
	api.GET("/docs", docsHandler(router))

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Scheduler-facing routes
	pipeline := api.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.POST("/bill-reminders", pipelineHandler.DispatchBillReminders)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(userService))

	// Profile and settings
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.UpdateProfile)
	protected.POST("/profile", profileHandler.ChangePassword)
	protected.POST("/profile/change-password", profileHandler.ChangePassword)
	protected.DELETE("/profile", profileHandler.DeleteAccount)
	protected.GET("/settings", profileHandler.GetSettings)
	protected.PUT("/settings", profileHandler.ReplaceSettings)
	protected.PATCH("/settings", profileHandler.UpdateSetting)

	// Expense routes. Static segments take precedence over /:id in gin.
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/stats/summary", expenseHandler.GetSummary)
	expenses.GET("/stats/monthly", expenseHandler.GetMonthlyTotals)
	expenses.GET("/filter", expenseHandler.FilterExpenses)
	expenses.GET("/budget-overview", expenseHandler.GetBudgetOverview)
	expenses.GET("/spending-trends", expenseHandler.GetSpendingTrends)
	expenses.GET("/category-insights", expenseHandler.GetCategoryInsights)
	expenses.GET("/recent-activity", expenseHandler.GetRecentActivity)
	expenses.GET("/forecast", expenseHandler.GetForecast)
	expenses.GET("/compare", expenseHandler.ComparePeriods)
	expenses.GET("/report", expenseHandler.GetReport)
	expenses.POST("/budget-alert", expenseHandler.CheckBudgetAlert)
	expenses.POST("/savings-goal", expenseHandler.TrackSavingsGoal)
	expenses.POST("/bills", billHandler.SetReminder)
	expenses.GET("/bills/upcoming", billHandler.GetUpcoming)
	expenses.PATCH("/bills/:billId/paid", billHandler.MarkPaid)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	protected.GET("/dashboard", expenseHandler.GetDashboard)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/overview", budgetHandler.GetOverview)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Recurring routes
	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.ScheduleRecurring)
	recurring.GET("", recurringHandler.GetRecurring)
	recurring.PUT("/:id", recurringHandler.UpdateRecurring)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurring)
	recurring.POST("/:id/pay", recurringHandler.PayRecurring)

	// Shared expense routes
	shared := protected.Group("/shared")
	shared.POST("", sharedHandler.CreateSharedExpense)
	shared.GET("", sharedHandler.GetSharedExpenses)
	shared.PUT("/:id", sharedHandler.UpdateSharedExpense)
	shared.DELETE("/:id", sharedHandler.DeleteSharedExpense)
	shared.POST("/:id/settle", sharedHandler.SettleSharedExpense)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/generate", reportHandler.GenerateReport)
	reports.GET("", reportHandler.GetReportHistory)

	return router
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, database := "ok", "ok"
		status := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			state, database = "degraded", "unavailable"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":    state,
			"database":  database,
			"timestamp": time.Now().UTC(),
		})
	}
}

// docsHandler lists every registered route. The list is read per request so
// it always reflects the final router.
func docsHandler(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := router.Routes()
		endpoints := make([]Endpoint, 0, len(routes))
		for _, r := range routes {
			endpoints = append(endpoints, Endpoint{Method: r.Method, Path: r.Path})
		}
		sort.Slice(endpoints, func(i, j int) bool {
			if endpoints[i].Path != endpoints[j].Path {
				return endpoints[i].Path < endpoints[j].Path
			}
			return endpoints[i].Method < endpoints[j].Method
		})

		c.JSON(http.StatusOK, DocsResponse{
			Name:      docs.SwaggerInfo.Title,
			Version:   docs.SwaggerInfo.Version,
			Swagger:   "/swagger/index.html",
			Endpoints: endpoints,
		})
	}
}
