package dto

import "github.com/shopspring/decimal"

// MonthlyProfitEntry ganancia de un mes (0 = enero ... 11 = diciembre).
type MonthlyProfitEntry struct {
	Month  int             `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// MonthlyProfitsResponse reporte de ganancias mensuales. Year 0 indica que
// todos los años colapsan en los mismos 12 buckets.
type MonthlyProfitsResponse struct {
	Year   int                  `json:"year,omitempty"`
	Months []MonthlyProfitEntry `json:"months"`
}

// SummaryResponse resumen del inventario para la pantalla de inicio/reportes.
type SummaryResponse struct {
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TotalStock        int             `json:"total_stock"`
	TotalItems        int             `json:"total_items"`
	ItemsInStock      int             `json:"items_in_stock"`
	ItemsOutOfStock   int             `json:"items_out_of_stock"`
	TotalTransactions int             `json:"total_transactions"`
	TotalInvoices     int             `json:"total_invoices"`
}
