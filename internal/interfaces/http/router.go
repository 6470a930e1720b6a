package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Services *usecase.Services
	Health   dto.HealthResponse
	Log      zerolog.Logger
	// SwaggerFile ruta del swagger.json; si no existe no se monta la UI.
	SwaggerFile string
}

// NewApp construye la aplicación Fiber con middlewares, health y rutas de la API.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.Health.App,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "IntelliCollect API",
			}))
		} else {
			deps.Log.Warn().Str("file", deps.SwaggerFile).Msg("swagger.json no encontrado, UI deshabilitada")
		}
	}

	health := NewHealthHandler(deps.Health)
	app.Get("/health", health.Health)
	app.Get("/", health.Info)

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	svc := deps.Services

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(svc.Customers)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Post("/:id/risk-assessment", customerHandler.AssessRisk)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(svc.Invoices, svc.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/:id/reminders", invoiceHandler.SendReminder)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	payments := api.Group("/payments")
	paymentHandler := NewPaymentHandler(svc.Payments)
	payments.Post("/", paymentHandler.Create)
	payments.Post("/upload-receipt", paymentHandler.UploadReceipt)
	payments.Get("/invoice/:id/payments", paymentHandler.ListByInvoice)

	comms := api.Group("/communications")
	commHandler := NewCommunicationHandler(svc.Communications)
	comms.Post("/send", commHandler.Send)
	comms.Get("/customer/:id/history", commHandler.History)

	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(svc.Analytics)
	analyticsGroup.Get("/summary", analyticsHandler.Summary)
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.Get("/revenue/trend", analyticsHandler.RevenueTrend)
	analyticsGroup.Get("/customer/:id/analytics", analyticsHandler.CustomerAnalytics)
}
