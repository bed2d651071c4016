package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// InvoiceLineResponse línea de factura.
type InvoiceLineResponse struct {
	ItemID        string          `json:"item_id"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	TransactionID string                `json:"transaction_id"`
	Date          time.Time             `json:"date"`
	Items         []InvoiceLineResponse `json:"items"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	Profit        decimal.Decimal       `json:"profit"`
}

// InvoiceListResponse historial de facturas.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// ToInvoiceResponse convierte la entidad a su DTO de salida.
func ToInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	items := make([]InvoiceLineResponse, 0, len(inv.Items))
	for _, li := range inv.Items {
		items = append(items, InvoiceLineResponse{
			ItemID:        li.ItemID,
			Quantity:      li.Quantity,
			PurchasePrice: li.PurchasePrice,
			SellingPrice:  li.SellingPrice,
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		TransactionID: inv.TransactionID,
		Date:          inv.Date,
		Items:         items,
		TotalAmount:   inv.TotalAmount,
		Profit:        inv.Profit,
	}
}

// ToInvoiceListResponse convierte el historial preservando el orden.
func ToInvoiceListResponse(invoices []entity.Invoice) InvoiceListResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, ToInvoiceResponse(inv))
	}
	return InvoiceListResponse{Invoices: out, Total: len(out)}
}
