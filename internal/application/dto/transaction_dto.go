package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// RecordMovementRequest entrada para registrar un movimiento de stock.
// Con item_id vacío se crea el artículo (category y description pasan a ser
// obligatorios; eso se comprueba en el handler).
type RecordMovementRequest struct {
	Type          string           `json:"type" validate:"required,oneof=in out"`
	ItemID        string           `json:"item_id"`
	Category      string           `json:"category" validate:"omitempty,oneof=electronics furniture clothing food office other"`
	Description   string           `json:"description" validate:"omitempty,max=500"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	ImageURI      string           `json:"image_uri"`
	Quantity      int              `json:"quantity" validate:"omitempty,min=1"` // omitido equivale a 1
	Notes         string           `json:"notes" validate:"max=500"`
}

// MovementResponse IDs generados por un movimiento.
type MovementResponse struct {
	ItemID        string `json:"item_id"`
	TransactionID string `json:"transaction_id"`
	InvoiceID     string `json:"invoice_id,omitempty"`
}

// CheckoutLineRequest línea del carrito: salida de un artículo existente.
type CheckoutLineRequest struct {
	ItemID       string          `json:"item_id" validate:"required"`
	Quantity     int             `json:"quantity" validate:"min=1"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// CheckoutRequest checkout del carrito completo: una factura para todas las líneas.
type CheckoutRequest struct {
	Items []CheckoutLineRequest `json:"items" validate:"required,min=1,dive"`
	Notes string                `json:"notes" validate:"max=500"`
}

// CheckoutResponse IDs generados por el checkout.
type CheckoutResponse struct {
	TransactionIDs []string `json:"transaction_ids"`
	InvoiceID      string   `json:"invoice_id"`
}

// TransactionResponse salida de un movimiento del historial.
type TransactionResponse struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}

// TransactionListResponse historial de movimientos.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionListResponse convierte el historial preservando el orden.
func ToTransactionListResponse(txs []entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			ID:       tx.ID,
			ItemID:   tx.ItemID,
			Type:     tx.Type,
			Quantity: tx.Quantity,
			Date:     tx.Date,
			Notes:    tx.Notes,
		})
	}
	return TransactionListResponse{Transactions: out, Total: len(out)}
}
