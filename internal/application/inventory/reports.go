package inventory

import "github.com/shopspring/decimal"

// MonthlyProfit ganancia acumulada de un mes (0 = enero ... 11 = diciembre).
type MonthlyProfit struct {
	Month  int             `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// MonthlyProfits devuelve siempre 12 entradas (meses 0–11) con la ganancia
// sumada de las facturas fechadas en cada mes. Con year > 0 solo cuentan las
// facturas de ese año; con year == 0 los años colapsan en los mismos 12
// buckets (la vista "todo el histórico" de la pantalla de reportes).
func (s *Store) MonthlyProfits(year int) []MonthlyProfit {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]MonthlyProfit, 12)
	for i := range out {
		out[i] = MonthlyProfit{Month: i, Profit: decimal.Zero}
	}
	for _, inv := range s.state.Invoices {
		if year > 0 && inv.Date.Year() != year {
			continue
		}
		m := int(inv.Date.Month()) - 1
		out[m].Profit = out[m].Profit.Add(inv.Profit)
	}
	return out
}

// TotalProfit ganancia acumulada de todas las facturas.
func (s *Store) TotalProfit() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, inv := range s.state.Invoices {
		total = total.Add(inv.Profit)
	}
	return total
}

// TotalStock suma de las cantidades de todos los artículos.
func (s *Store) TotalStock() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for i := range s.state.Items {
		total += s.state.Items[i].Quantity
	}
	return total
}
