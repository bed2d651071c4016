package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-movil/internal/application/dto"
	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-movil/pkg/logger"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	store *inventory.Store
	pdf   *pdf.Generator
	log   *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(store *inventory.Store, gen *pdf.Generator, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{store: store, pdf: gen, log: log}
}

// List godoc
// @Summary      Historial de facturas (más reciente primero)
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToInvoiceListResponse(h.store.Invoices()))
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "ID de la factura (INV-...)"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, ok := h.store.InvoiceByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(dto.ToInvoiceResponse(inv))
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Description  Las líneas se enriquecen con código y descripción del artículo;
//
//	si el artículo ya fue borrado, la línea muestra su ID.
//
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura (INV-...)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	inv, ok := h.store.InvoiceByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}

	lines := make([]pdf.InvoiceLine, 0, len(inv.Items))
	for _, li := range inv.Items {
		line := pdf.InvoiceLine{
			Description:   li.ItemID,
			Quantity:      li.Quantity,
			PurchasePrice: li.PurchasePrice,
			SellingPrice:  li.SellingPrice,
			Subtotal:      li.SellingPrice.Mul(decimal.NewFromInt(int64(li.Quantity))),
		}
		if item, ok := h.store.ItemByID(li.ItemID); ok {
			line.Code = item.Code
			line.Description = item.Description
		}
		lines = append(lines, line)
	}

	data, err := h.pdf.Generate(inv, lines)
	if err != nil {
		h.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("error generando PDF de factura")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, inv.ID))
	return c.Send(data)
}
