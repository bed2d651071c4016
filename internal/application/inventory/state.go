package inventory

import "github.com/tu-usuario/stock-movil/internal/domain/entity"

// State documento completo del inventario: las tres colecciones que el almacén
// posee en exclusiva. Es también la forma que se serializa a la capa de
// persistencia (un solo documento JSON bajo una clave fija).
type State struct {
	Items        []entity.Item        `json:"items"`
	Transactions []entity.Transaction `json:"transactions"`
	Invoices     []entity.Invoice     `json:"invoices"`
}

// EmptyState estado inicial: tres colecciones vacías (no nil, para que el
// documento persistido serialice "[]" y el round-trip sea estable).
func EmptyState() State {
	return State{
		Items:        []entity.Item{},
		Transactions: []entity.Transaction{},
		Invoices:     []entity.Invoice{},
	}
}

// Clone copia profunda del estado. Los suscriptores y los snapshots reciben
// siempre una copia: nadie fuera del almacén toca las colecciones vivas.
func (s State) Clone() State {
	out := State{
		Items:        make([]entity.Item, len(s.Items)),
		Transactions: make([]entity.Transaction, len(s.Transactions)),
		Invoices:     make([]entity.Invoice, len(s.Invoices)),
	}
	for i, it := range s.Items {
		out.Items[i] = cloneItem(it)
	}
	copy(out.Transactions, s.Transactions)
	for i, inv := range s.Invoices {
		out.Invoices[i] = inv
		out.Invoices[i].Items = append([]entity.InvoiceItem(nil), inv.Items...)
	}
	return out
}

func cloneItem(it entity.Item) entity.Item {
	if it.SellingPrice != nil {
		sp := *it.SellingPrice
		it.SellingPrice = &sp
	}
	return it
}
