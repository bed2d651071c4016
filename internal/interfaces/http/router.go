package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-movil/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *inventory.Store
	InvoicePDF *pdf.Generator
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.Store)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/code/:code", itemHandler.GetByCode)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Patch("/:id/stock", itemHandler.UpdateStock)

	// Transactions
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Store)
	transactions.Post("/", transactionHandler.RecordMovement)
	transactions.Post("/checkout", transactionHandler.Checkout)
	transactions.Get("/", transactionHandler.List)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Store, deps.InvoicePDF, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Store)
	reports.Get("/monthly-profits", reportHandler.MonthlyProfits)
	reports.Get("/summary", reportHandler.Summary)
}
