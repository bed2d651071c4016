package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem línea de factura con los precios vigentes al momento de la venta.
type InvoiceItem struct {
	ItemID        string          `json:"itemId"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
}

// Invoice factura generada por una salida con precio de venta.
// TransactionID contiene un ID, o varios unidos por comas cuando la factura
// cubre un checkout de carrito completo. Inmutable una vez creada.
type Invoice struct {
	ID            string          `json:"id"` // legible, ej. INV-1712345678901-001
	TransactionID string          `json:"transactionId"`
	Date          time.Time       `json:"date"`
	Items         []InvoiceItem   `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // Σ sellingPrice × quantity
	Profit        decimal.Decimal `json:"profit"`      // Σ (sellingPrice − purchasePrice) × quantity
}
