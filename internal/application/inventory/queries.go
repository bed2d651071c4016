package inventory

import (
	"sort"
	"strings"

	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// ItemByID búsqueda lineal por ID. Devuelve copia del artículo.
func (s *Store) ItemByID(id string) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOfLocked(id); idx >= 0 {
		return cloneItem(s.state.Items[idx]), true
	}
	return entity.Item{}, false
}

// ItemByCode búsqueda lineal por código legible.
func (s *Store) ItemByCode(code string) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Items {
		if s.state.Items[i].Code == code {
			return cloneItem(s.state.Items[i]), true
		}
	}
	return entity.Item{}, false
}

// Items devuelve todos los artículos en orden de inserción.
func (s *Store) Items() []entity.Item {
	return s.filterItems(func(entity.Item) bool { return true })
}

// ItemsByStatus artículos con el estado dado, orden de inserción preservado.
func (s *Store) ItemsByStatus(status entity.ItemStatus) []entity.Item {
	return s.filterItems(func(it entity.Item) bool { return it.Status == status })
}

// ItemsByCategory artículos de la categoría dada, orden de inserción preservado.
func (s *Store) ItemsByCategory(category entity.ItemCategory) []entity.Item {
	return s.filterItems(func(it entity.Item) bool { return it.Category == category })
}

// SearchItems artículos cuya descripción, código o categoría contiene la
// consulta sin distinguir mayúsculas. La consulta vacía la trata el consumidor
// (aquí coincide con todo, igual que en la app móvil).
func (s *Store) SearchItems(query string) []entity.Item {
	q := strings.ToLower(query)
	return s.filterItems(func(it entity.Item) bool {
		return strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Code), q) ||
			strings.Contains(strings.ToLower(string(it.Category)), q)
	})
}

func (s *Store) filterItems(keep func(entity.Item) bool) []entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Item{}
	for i := range s.state.Items {
		if keep(s.state.Items[i]) {
			out = append(out, cloneItem(s.state.Items[i]))
		}
	}
	return out
}

// Transactions historial completo de movimientos, el más reciente primero.
func (s *Store) Transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entity.Transaction(nil), s.state.Transactions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// Invoices historial de facturas, la más reciente primero.
func (s *Store) Invoices() []entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Invoice, len(s.state.Invoices))
	for i, inv := range s.state.Invoices {
		out[i] = inv
		out[i].Items = append([]entity.InvoiceItem(nil), inv.Items...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// InvoiceByID búsqueda lineal por ID de factura.
func (s *Store) InvoiceByID(id string) (entity.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.state.Invoices {
		if inv.ID == id {
			inv.Items = append([]entity.InvoiceItem(nil), inv.Items...)
			return inv, true
		}
	}
	return entity.Invoice{}, false
}
