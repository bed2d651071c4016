package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-movil/internal/application/dto"
	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// ReportHandler maneja las peticiones HTTP de reportes.
type ReportHandler struct {
	store *inventory.Store
}

// NewReportHandler construye el handler.
func NewReportHandler(store *inventory.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// MonthlyProfits godoc
// @Summary      Ganancias mensuales (12 buckets, enero = mes 0)
// @Description  Sin year todas las facturas del histórico colapsan en los
//
//	mismos 12 meses; con year solo cuentan las de ese año.
//
// @Tags         reports
// @Produce      json
// @Param        year  query  int  false  "Año a filtrar (ej. 2026)"
// @Success      200  {object}  dto.MonthlyProfitsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly-profits [get]
func (h *ReportHandler) MonthlyProfits(c *fiber.Ctx) error {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year debe ser un entero positivo"})
		}
		year = parsed
	}

	months := h.store.MonthlyProfits(year)
	out := dto.MonthlyProfitsResponse{
		Year:   year,
		Months: make([]dto.MonthlyProfitEntry, 0, len(months)),
	}
	for _, m := range months {
		out.Months = append(out.Months, dto.MonthlyProfitEntry{Month: m.Month, Profit: m.Profit})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen global del inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	items := h.store.Items()
	inStock := 0
	for _, it := range items {
		if it.Status == entity.StatusIn {
			inStock++
		}
	}

	return c.JSON(dto.SummaryResponse{
		TotalProfit:       h.store.TotalProfit(),
		TotalStock:        h.store.TotalStock(),
		TotalItems:        len(items),
		ItemsInStock:      inStock,
		ItemsOutOfStock:   len(items) - inStock,
		TotalTransactions: len(h.store.Transactions()),
		TotalInvoices:     len(h.store.Invoices()),
	})
}
