package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-movil/internal/application/dto"
	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// TransactionHandler maneja las peticiones HTTP de movimientos de stock.
type TransactionHandler struct {
	store *inventory.Store
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(store *inventory.Store) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de entrada o salida
// @Description  Con item_id el movimiento actualiza el artículo existente; sin
//
//	item_id se crea uno nuevo (category y description obligatorios).
//	Una salida con selling_price genera una factura automática.
//
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if in.PurchasePrice.IsNegative() || negative(in.SellingPrice) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los precios no pueden ser negativos"})
	}

	if in.ItemID == "" {
		if in.Category == "" || in.Description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "category y description son obligatorios al crear un artículo nuevo",
			})
		}
	} else if _, ok := h.store.ItemByID(in.ItemID); !ok {
		// El almacén registraría la transacción igualmente (tolerancia de la
		// app de pantalla); en la API preferimos avisar al llamador.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}

	res := h.store.RecordTransaction(in.Type, inventory.MovementInput{
		ItemID:        in.ItemID,
		Category:      entity.ItemCategory(in.Category),
		Description:   in.Description,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		ImageURI:      in.ImageURI,
		Quantity:      in.Quantity,
	}, in.Notes)

	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ItemID:        res.ItemID,
		TransactionID: res.TransactionID,
		InvoiceID:     res.InvoiceID,
	})
}

// Checkout godoc
// @Summary      Checkout de carrito (varias salidas, una factura)
// @Description  Registra una salida por línea y una única factura que cubre
//
//	todas. Las líneas con item_id desconocido se saltan.
//
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Líneas del carrito"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions/checkout [post]
func (h *TransactionHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	for _, line := range in.Items {
		if line.SellingPrice.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los precios no pueden ser negativos"})
		}
	}

	lines := make([]inventory.CheckoutLine, 0, len(in.Items))
	for _, line := range in.Items {
		lines = append(lines, inventory.CheckoutLine{
			ItemID:       line.ItemID,
			Quantity:     line.Quantity,
			SellingPrice: line.SellingPrice,
		})
	}
	res := h.store.RecordMultipleTransactions(lines, in.Notes)

	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{
		TransactionIDs: res.TransactionIDs,
		InvoiceID:      res.InvoiceID,
	})
}

// List godoc
// @Summary      Historial de movimientos (más reciente primero)
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToTransactionListResponse(h.store.Transactions()))
}
