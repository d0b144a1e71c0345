package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Admin Routes ---
	admin := api.Group("/admin", middleware.JWTMiddleware, middleware.AdminRequired)

	// User Management
	admin.Post("/users", handlers.HandleCreateUser)
	admin.Get("/users", handlers.HandleListUsers)

	// Store Management
	admin.Get("/stores", handlers.HandleListStores)
	admin.Get("/stores/:storeId", handlers.HandleGetStoreByID)
	admin.Post("/stores", handlers.HandleCreateStore)
	admin.Put("/stores/:storeId", handlers.HandleUpdateStore)
	admin.Delete("/stores/:storeId", handlers.HandleDeleteStore)

	// Holiday Management
	admin.Get("/holidays", handlers.HandleListHolidays)
	admin.Post("/holidays", handlers.HandleCreateHoliday)
	admin.Delete("/holidays/:holidayId", handlers.HandleDeleteHoliday)

	// --- Daily Report Routes (admin and managers) ---
	reports := api.Group("/reports", middleware.JWTMiddleware)
	reports.Post("/", handlers.HandleUpsertDailyReport)
	reports.Get("/", handlers.HandleListReports)
	reports.Post("/export", handlers.HandleExportMonthlyReports) // Must be before /:reportId
	reports.Get("/:reportId", handlers.HandleGetReportByID)
	reports.Delete("/:reportId", handlers.HandleDeleteReport)

	// --- Dashboard ---
	dashboard := api.Group("/dashboard", middleware.JWTMiddleware)
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)

	// --- Analytics Chat ---
	analytics := api.Group("/analytics", middleware.JWTMiddleware)
	analytics.Post("/chat", handlers.HandleAnalyticsChat)

	// --- Help Assistant ---
	assistant := api.Group("/assistant", middleware.JWTMiddleware)
	assistant.Post("/ask", handlers.HandleAssistantAsk)

	// --- Gemini Routes ---
	gemini := api.Group("/gemini", middleware.JWTMiddleware)
	gemini.Post("/generate", handlers.HandleGenerateText)
	gemini.Post("/report-comment", handlers.HandleGenerateReportComment)
}
