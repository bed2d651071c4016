// Package inventory contiene el almacén de inventario: el contenedor de estado
// que posee en exclusiva los artículos, las transacciones y las facturas.
//
// El almacén es la única autoridad sobre el estado: toda lectura y escritura
// pasa por él. Las transiciones son puras (sin I/O); la persistencia se cuelga
// por fuera mediante Subscribe, de modo que la lógica se prueba sin depender
// de almacenamiento alguno.
//
// El almacén no valida campos de negocio ni produce errores de dominio:
// la validación de entrada es responsabilidad del consumidor (la capa HTTP),
// y las operaciones sobre IDs inexistentes son no-ops silenciosos.
package inventory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// Store contenedor de estado del inventario con un conjunto cerrado de
// mutaciones y notificación a suscriptores tras cada cambio.
//
// Cada operación es atómica desde la perspectiva del que llama: el mutex
// interno serializa a los consumidores concurrentes de la capa HTTP. Los
// invariantes multi-paso entre llamadas (p. ej. consultar stock y luego
// vender) no están protegidos, igual que en la app móvil de un solo hilo.
type Store struct {
	mu    sync.Mutex
	state State

	invoiceSeq int // sufijo monotónico para IDs de factura dentro del proceso

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// NewStore construye el almacén. Con initial == nil arranca con las tres
// colecciones vacías; si no, adopta una copia del estado dado (rehidratación).
func NewStore(initial *State) *Store {
	st := EmptyState()
	if initial != nil {
		st = initial.Clone()
		if st.Items == nil {
			st.Items = []entity.Item{}
		}
		if st.Transactions == nil {
			st.Transactions = []entity.Transaction{}
		}
		if st.Invoices == nil {
			st.Invoices = []entity.Invoice{}
		}
	}
	return &Store{
		state: st,
		subs:  make(map[int]func(State)),
	}
}

// Snapshot devuelve una copia profunda del estado actual.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registra un observador que recibe una copia del estado tras cada
// mutación. Devuelve la función para darse de baja.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify entrega el snapshot a los suscriptores fuera del lock de estado,
// para que un suscriptor pueda volver a leer el almacén sin bloquearse.
func (s *Store) notify(snapshot State) {
	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}

// ItemInput datos para crear un artículo. Status vacío equivale a "in";
// Quantity por defecto 0.
type ItemInput struct {
	Category      entity.ItemCategory
	Description   string
	PurchasePrice decimal.Decimal
	SellingPrice  *decimal.Decimal
	ImageURI      string
	Status        entity.ItemStatus
	Quantity      int
}

// AddItem crea un artículo: asigna ID, genera un código único, fija los
// timestamps y lo añade al final de la colección. Devuelve el ID nuevo.
func (s *Store) AddItem(in ItemInput) string {
	s.mu.Lock()
	id := s.addItemLocked(in, time.Now())
	snapshot := s.state.Clone()
	s.mu.Unlock()
	s.notify(snapshot)
	return id
}

func (s *Store) addItemLocked(in ItemInput, now time.Time) string {
	status := in.Status
	if status == "" {
		status = entity.StatusIn
	}
	item := entity.Item{
		ID:            uuid.New().String(),
		Code:          uniqueItemCode(now, s.codeExistsLocked),
		Category:      in.Category,
		Description:   in.Description,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		ImageURI:      in.ImageURI,
		Quantity:      in.Quantity,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.state.Items = append(s.state.Items, item)
	return item.ID
}

func (s *Store) codeExistsLocked(code string) bool {
	for i := range s.state.Items {
		if s.state.Items[i].Code == code {
			return true
		}
	}
	return false
}

// ItemUpdate campos parciales para UpdateItem; los nil no se tocan.
type ItemUpdate struct {
	Category      *entity.ItemCategory
	Description   *string
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	ImageURI      *string
	Quantity      *int
	Status        *entity.ItemStatus
}

// UpdateItem mezcla los campos presentes sobre el artículo y refresca
// UpdatedAt. No-op silencioso si el ID no existe.
func (s *Store) UpdateItem(id string, upd ItemUpdate) {
	s.mu.Lock()
	changed := s.updateItemLocked(id, upd, time.Now())
	var snapshot State
	if changed {
		snapshot = s.state.Clone()
	}
	s.mu.Unlock()
	if changed {
		s.notify(snapshot)
	}
}

func (s *Store) updateItemLocked(id string, upd ItemUpdate, now time.Time) bool {
	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false
	}
	item := &s.state.Items[idx]
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.PurchasePrice != nil {
		item.PurchasePrice = *upd.PurchasePrice
	}
	if upd.SellingPrice != nil {
		sp := *upd.SellingPrice
		item.SellingPrice = &sp
	}
	if upd.ImageURI != nil {
		item.ImageURI = *upd.ImageURI
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if upd.Status != nil {
		item.Status = *upd.Status
	}
	item.UpdatedAt = now
	return true
}

// DeleteItem elimina el artículo de la colección viva. No borra en cascada:
// sus transacciones y facturas quedan como registros históricos válidos que
// referencian un ID posiblemente ausente.
func (s *Store) DeleteItem(id string) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	snapshot := s.state.Clone()
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// MovementInput datos de un movimiento de stock. Con ItemID vacío se crea un
// artículo nuevo; con ItemID presente se ajusta el existente.
type MovementInput struct {
	ItemID        string
	Category      entity.ItemCategory
	Description   string
	PurchasePrice decimal.Decimal
	SellingPrice  *decimal.Decimal
	ImageURI      string
	Quantity      int
}

// MovementResult IDs generados por RecordTransaction. InvoiceID vacío cuando
// el movimiento no produjo factura.
type MovementResult struct {
	ItemID        string
	TransactionID string
	InvoiceID     string
}

// RecordTransaction registra un movimiento de entrada o salida.
//
//   - Sin ItemID: crea el artículo con stock inicial = cantidad si es entrada,
//     0 si es salida.
//   - Con ItemID: entrada suma; salida resta recortando en cero. El estado se
//     recalcula y SellingPrice se actualiza si viene en la entrada.
//   - Siempre añade una Transaction con la cantidad solicitada (no el delta
//     aplicado): una salida por encima del stock disponible se registra y
//     factura completa igualmente.
//   - Salida con precio de venta: genera exactamente una factura de una línea.
func (s *Store) RecordTransaction(movType string, in MovementInput, notes string) MovementResult {
	s.mu.Lock()
	now := time.Now()
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	itemID := in.ItemID
	if itemID == "" {
		initialQty := 0
		if movType == entity.MovementIn {
			initialQty = quantity
		}
		itemID = s.addItemLocked(ItemInput{
			Category:      in.Category,
			Description:   in.Description,
			PurchasePrice: in.PurchasePrice,
			SellingPrice:  in.SellingPrice,
			ImageURI:      in.ImageURI,
			Status:        entity.ItemStatus(movType),
			Quantity:      initialQty,
		}, now)
	} else if idx := s.indexOfLocked(itemID); idx >= 0 {
		item := &s.state.Items[idx]
		newQty := item.Quantity + quantity
		if movType == entity.MovementOut {
			newQty = max(0, item.Quantity-quantity)
		}
		item.Quantity = newQty
		item.Status = entity.StatusFor(newQty)
		if in.SellingPrice != nil {
			sp := *in.SellingPrice
			item.SellingPrice = &sp
		}
		item.UpdatedAt = now
	}

	tx := entity.Transaction{
		ID:       uuid.New().String(),
		ItemID:   itemID,
		Type:     movType,
		Quantity: quantity,
		Date:     now,
		Notes:    notes,
	}
	s.state.Transactions = append(s.state.Transactions, tx)

	var invoiceID string
	if movType == entity.MovementOut && in.SellingPrice != nil {
		if idx := s.indexOfLocked(itemID); idx >= 0 {
			item := s.state.Items[idx]
			selling := *in.SellingPrice
			qty := decimal.NewFromInt(int64(quantity))
			invoice := entity.Invoice{
				ID:            s.newInvoiceIDLocked(now),
				TransactionID: tx.ID,
				Date:          now,
				Items: []entity.InvoiceItem{{
					ItemID:        itemID,
					Quantity:      quantity,
					PurchasePrice: item.PurchasePrice,
					SellingPrice:  selling,
				}},
				TotalAmount: selling.Mul(qty),
				Profit:      selling.Sub(item.PurchasePrice).Mul(qty),
			}
			s.state.Invoices = append(s.state.Invoices, invoice)
			invoiceID = invoice.ID
		}
	}

	snapshot := s.state.Clone()
	s.mu.Unlock()
	s.notify(snapshot)
	return MovementResult{ItemID: itemID, TransactionID: tx.ID, InvoiceID: invoiceID}
}

// CheckoutLine línea de un checkout de carrito: salida de un artículo
// existente con su precio de venta.
type CheckoutLine struct {
	ItemID       string
	Quantity     int
	SellingPrice decimal.Decimal
}

// CheckoutResult IDs generados por RecordMultipleTransactions.
type CheckoutResult struct {
	TransactionIDs []string
	InvoiceID      string
}

// RecordMultipleTransactions procesa un checkout de carrito: por cada línea
// recorta el stock en cero como mínimo, recalcula el estado y añade una
// Transaction; al final crea exactamente una factura que cubre todas las
// líneas, con los IDs de transacción unidos por comas. Las líneas cuyo
// artículo no existe se saltan en silencio (sin transacción ni línea de
// factura). La cantidad facturada es la solicitada, igual que en
// RecordTransaction.
func (s *Store) RecordMultipleTransactions(lines []CheckoutLine, notes string) CheckoutResult {
	s.mu.Lock()
	now := time.Now()

	transactionIDs := []string{}
	invoiceItems := []entity.InvoiceItem{}
	totalAmount := decimal.Zero
	totalProfit := decimal.Zero

	for _, line := range lines {
		idx := s.indexOfLocked(line.ItemID)
		if idx < 0 {
			continue
		}
		item := &s.state.Items[idx]
		newQty := max(0, item.Quantity-line.Quantity)
		item.Quantity = newQty
		item.Status = entity.StatusFor(newQty)
		item.UpdatedAt = now

		tx := entity.Transaction{
			ID:       uuid.New().String(),
			ItemID:   line.ItemID,
			Type:     entity.MovementOut,
			Quantity: line.Quantity,
			Date:     now,
			Notes:    notes,
		}
		s.state.Transactions = append(s.state.Transactions, tx)
		transactionIDs = append(transactionIDs, tx.ID)

		qty := decimal.NewFromInt(int64(line.Quantity))
		totalAmount = totalAmount.Add(line.SellingPrice.Mul(qty))
		totalProfit = totalProfit.Add(line.SellingPrice.Sub(item.PurchasePrice).Mul(qty))
		invoiceItems = append(invoiceItems, entity.InvoiceItem{
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			PurchasePrice: item.PurchasePrice,
			SellingPrice:  line.SellingPrice,
		})
	}

	invoice := entity.Invoice{
		ID:            s.newInvoiceIDLocked(now),
		TransactionID: strings.Join(transactionIDs, ","),
		Date:          now,
		Items:         invoiceItems,
		TotalAmount:   totalAmount,
		Profit:        totalProfit,
	}
	s.state.Invoices = append(s.state.Invoices, invoice)

	snapshot := s.state.Clone()
	s.mu.Unlock()
	s.notify(snapshot)
	return CheckoutResult{TransactionIDs: transactionIDs, InvoiceID: invoice.ID}
}

// UpdateStock ajuste directo de stock fuera del flujo de transacciones
// (correcciones): no genera Transaction ni factura. Recorta en cero y
// recalcula el estado. No-op silencioso si el ID no existe.
func (s *Store) UpdateStock(itemID string, quantity int, isAddition bool) {
	s.mu.Lock()
	idx := s.indexOfLocked(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	item := &s.state.Items[idx]
	newQty := max(0, item.Quantity-quantity)
	if isAddition {
		newQty = item.Quantity + quantity
	}
	item.Quantity = newQty
	item.Status = entity.StatusFor(newQty)
	item.UpdatedAt = time.Now()
	snapshot := s.state.Clone()
	s.mu.Unlock()
	s.notify(snapshot)
}

// newInvoiceIDLocked ID de factura legible: prefijo + timestamp + sufijo
// monotónico. El sufijo evita colisiones entre facturas del mismo milisegundo.
func (s *Store) newInvoiceIDLocked(now time.Time) string {
	s.invoiceSeq++
	return fmt.Sprintf("INV-%d-%03d", now.UnixMilli(), s.invoiceSeq)
}
