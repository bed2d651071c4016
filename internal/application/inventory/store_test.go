package inventory_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// seedItem crea un artículo vía entrada "in" y devuelve su ID.
func seedItem(t *testing.T, s *inventory.Store, desc string, purchase string, qty int) string {
	t.Helper()
	res := s.RecordTransaction(entity.MovementIn, inventory.MovementInput{
		Category:      entity.CategoryElectronics,
		Description:   desc,
		PurchasePrice: dec(purchase),
		Quantity:      qty,
	}, "")
	require.NotEmpty(t, res.ItemID, "la entrada debe crear el artículo")
	return res.ItemID
}

// requireInvariant comprueba el invariante global: cantidad nunca negativa y
// estado consistente con la cantidad en todos los artículos.
func requireInvariant(t *testing.T, s *inventory.Store) {
	t.Helper()
	for _, it := range s.Items() {
		require.GreaterOrEqual(t, it.Quantity, 0, "la cantidad nunca puede ser negativa (%s)", it.Code)
		if it.Quantity > 0 {
			require.Equal(t, entity.StatusIn, it.Status, "con stock el estado debe ser in (%s)", it.Code)
		} else {
			require.Equal(t, entity.StatusOut, it.Status, "sin stock el estado debe ser out (%s)", it.Code)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem / UpdateItem / DeleteItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_ValoresPorDefecto(t *testing.T) {
	s := inventory.NewStore(nil)

	id := s.AddItem(inventory.ItemInput{
		Category:      entity.CategoryFurniture,
		Description:   "Silla de oficina",
		PurchasePrice: dec("120"),
	})

	item, ok := s.ItemByID(id)
	require.True(t, ok)
	assert.Equal(t, entity.StatusIn, item.Status, "status por defecto debe ser in")
	assert.Equal(t, 0, item.Quantity, "quantity por defecto debe ser 0")
	assert.Regexp(t, `^ITM-`, item.Code, "el código debe llevar el prefijo ITM")
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	assert.Nil(t, item.SellingPrice, "sin venta aún no hay precio de venta")
}

func TestAddItem_CodigosUnicos(t *testing.T) {
	s := inventory.NewStore(nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.AddItem(inventory.ItemInput{
			Category:    entity.CategoryOther,
			Description: fmt.Sprintf("artículo %d", i),
		})
		item, ok := s.ItemByID(id)
		require.True(t, ok)
		require.False(t, seen[item.Code], "código repetido en creación rápida: %s", item.Code)
		seen[item.Code] = true
	}
}

func TestUpdateItem_MezclaParcialYRefrescaUpdatedAt(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Teclado", "10", 3)
	before, _ := s.ItemByID(id)

	time.Sleep(2 * time.Millisecond)
	desc := "Teclado mecánico"
	s.UpdateItem(id, inventory.ItemUpdate{Description: &desc})

	item, ok := s.ItemByID(id)
	require.True(t, ok)
	assert.Equal(t, "Teclado mecánico", item.Description)
	assert.Equal(t, 3, item.Quantity, "los campos no enviados no se tocan")
	assert.Equal(t, before.PurchasePrice.String(), item.PurchasePrice.String())
	assert.True(t, item.UpdatedAt.After(before.UpdatedAt), "UpdatedAt debe refrescarse")
}

func TestUpdateItem_IDInexistente_NoOpSilencioso(t *testing.T) {
	s := inventory.NewStore(nil)
	seedItem(t, s, "Monitor", "80", 1)

	desc := "no debería aplicarse"
	assert.NotPanics(t, func() {
		s.UpdateItem("no-existe", inventory.ItemUpdate{Description: &desc})
	})
	assert.Len(t, s.Items(), 1)
}

func TestDeleteItem_NoBorraHistorialEnCascada(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Lámpara", "15", 2)
	res := s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		ItemID:       id,
		SellingPrice: decPtr("25"),
		Quantity:     1,
	}, "")
	require.NotEmpty(t, res.InvoiceID)

	s.DeleteItem(id)

	_, ok := s.ItemByID(id)
	assert.False(t, ok, "el artículo sale de la colección viva")
	assert.Len(t, s.Transactions(), 2, "las transacciones quedan como historial huérfano")
	assert.Len(t, s.Invoices(), 1, "las facturas quedan como historial huérfano")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordTransaction
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordTransaction_EntradaEnAlmacenVacio(t *testing.T) {
	s := inventory.NewStore(nil)

	res := s.RecordTransaction(entity.MovementIn, inventory.MovementInput{
		Category:      entity.CategoryElectronics,
		Description:   "Widget",
		PurchasePrice: dec("10"),
		Quantity:      5,
	}, "")

	require.NotEmpty(t, res.ItemID)
	require.NotEmpty(t, res.TransactionID)
	assert.Empty(t, res.InvoiceID, "una entrada nunca genera factura")

	items := s.Items()
	require.Len(t, items, 1, "debe crearse exactamente un artículo")
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, entity.StatusIn, items[0].Status)

	txs := s.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, entity.MovementIn, txs[0].Type)
	assert.Equal(t, 5, txs[0].Quantity)
	assert.Equal(t, res.ItemID, txs[0].ItemID)
	assert.Empty(t, s.Invoices())
}

func TestRecordTransaction_SalidaConPrecioGeneraFactura(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Widget", "10", 5)

	res := s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		ItemID:       id,
		SellingPrice: decPtr("15"),
		Quantity:     2,
	}, "venta mostrador")

	item, _ := s.ItemByID(id)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.SellingPrice)
	assert.Equal(t, "15", item.SellingPrice.String(), "la venta fija el precio de venta en el artículo")

	require.NotEmpty(t, res.InvoiceID)
	inv, ok := s.InvoiceByID(res.InvoiceID)
	require.True(t, ok)
	assert.Equal(t, res.TransactionID, inv.TransactionID)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 2, inv.Items[0].Quantity)
	assert.Equal(t, "30", inv.TotalAmount.String(), "totalAmount = 15 × 2")
	assert.Equal(t, "10", inv.Profit.String(), "profit = (15 − 10) × 2")

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "venta mostrador", txs[0].Notes)
}

func TestRecordTransaction_SalidaSinPrecio_NoFactura(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Widget", "10", 5)

	res := s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		ItemID:   id,
		Quantity: 2,
	}, "")

	assert.Empty(t, res.InvoiceID)
	assert.Empty(t, s.Invoices())
	item, _ := s.ItemByID(id)
	assert.Equal(t, 3, item.Quantity)
	assert.Nil(t, item.SellingPrice)
}

// Sobreventa: el stock se recorta en cero pero la transacción y la factura se
// registran con la cantidad completa solicitada, igual que en la app móvil.
func TestRecordTransaction_Sobreventa_RecortaStockPeroFacturaCompleto(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Widget", "10", 5)

	res := s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		ItemID:       id,
		SellingPrice: decPtr("20"),
		Quantity:     8,
	}, "")

	item, _ := s.ItemByID(id)
	assert.Equal(t, 0, item.Quantity, "el stock se recorta en cero, nunca negativo")
	assert.Equal(t, entity.StatusOut, item.Status)

	txs := s.Transactions()
	assert.Equal(t, 8, txs[0].Quantity, "la transacción registra la cantidad solicitada")

	inv, ok := s.InvoiceByID(res.InvoiceID)
	require.True(t, ok)
	assert.Equal(t, 8, inv.Items[0].Quantity, "la factura cubre la cantidad solicitada completa")
	assert.Equal(t, "160", inv.TotalAmount.String())
	assert.Equal(t, "80", inv.Profit.String())
	requireInvariant(t, s)
}

func TestRecordTransaction_SalidaSinID_CreaArticuloConStockCero(t *testing.T) {
	s := inventory.NewStore(nil)

	res := s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		Category:      entity.CategoryFood,
		Description:   "Café en grano",
		PurchasePrice: dec("8"),
		SellingPrice:  decPtr("12"),
		Quantity:      3,
	}, "")

	item, ok := s.ItemByID(res.ItemID)
	require.True(t, ok)
	assert.Equal(t, 0, item.Quantity, "una salida sin ID crea el artículo con stock 0")
	assert.Equal(t, entity.StatusOut, item.Status)
	require.NotEmpty(t, res.InvoiceID, "la salida con precio factura igualmente")
	requireInvariant(t, s)
}

func TestRecordTransaction_CantidadCeroEquivaleAUno(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Widget", "10", 5)

	s.RecordTransaction(entity.MovementIn, inventory.MovementInput{ItemID: id}, "")

	item, _ := s.ItemByID(id)
	assert.Equal(t, 6, item.Quantity, "cantidad 0 se interpreta como 1")
}

func TestRecordTransaction_IDInexistente_RegistraTransaccionSinFactura(t *testing.T) {
	s := inventory.NewStore(nil)

	res := s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		ItemID:       "fantasma",
		SellingPrice: decPtr("10"),
		Quantity:     1,
	}, "")

	assert.Len(t, s.Transactions(), 1, "la transacción se añade aunque el artículo no exista")
	assert.Empty(t, res.InvoiceID, "sin artículo no hay factura")
	assert.Empty(t, s.Invoices())
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMultipleTransactions (checkout de carrito)
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMultipleTransactions_UnaFacturaParaTodasLasLineas(t *testing.T) {
	s := inventory.NewStore(nil)
	idA := seedItem(t, s, "Mouse", "10", 10)
	idB := seedItem(t, s, "Teclado", "20", 10)
	idC := seedItem(t, s, "Monitor", "100", 10)

	res := s.RecordMultipleTransactions([]inventory.CheckoutLine{
		{ItemID: idA, Quantity: 2, SellingPrice: dec("15")},
		{ItemID: idB, Quantity: 1, SellingPrice: dec("30")},
		{ItemID: idC, Quantity: 3, SellingPrice: dec("150")},
	}, "carrito")

	require.Len(t, res.TransactionIDs, 3, "una transacción por línea")
	inv, ok := s.InvoiceByID(res.InvoiceID)
	require.True(t, ok)
	require.Len(t, inv.Items, 3, "la factura cubre las 3 líneas")

	// profit = (15−10)×2 + (30−20)×1 + (150−100)×3 = 10 + 10 + 150
	assert.Equal(t, "170", inv.Profit.String())
	// total = 15×2 + 30×1 + 150×3 = 30 + 30 + 450
	assert.Equal(t, "510", inv.TotalAmount.String())

	// transactionId = IDs unidos por comas, en el orden de las líneas
	expected := res.TransactionIDs[0] + "," + res.TransactionIDs[1] + "," + res.TransactionIDs[2]
	assert.Equal(t, expected, inv.TransactionID)

	assert.Len(t, s.Invoices(), 1, "exactamente una factura para todo el checkout")
	requireInvariant(t, s)
}

func TestRecordMultipleTransactions_LineaConIDInexistenteSeSalta(t *testing.T) {
	s := inventory.NewStore(nil)
	idA := seedItem(t, s, "Mouse", "10", 5)

	res := s.RecordMultipleTransactions([]inventory.CheckoutLine{
		{ItemID: idA, Quantity: 1, SellingPrice: dec("15")},
		{ItemID: "fantasma", Quantity: 4, SellingPrice: dec("99")},
	}, "")

	require.Len(t, res.TransactionIDs, 1, "la línea fantasma no genera transacción")
	inv, ok := s.InvoiceByID(res.InvoiceID)
	require.True(t, ok)
	assert.Len(t, inv.Items, 1, "la línea fantasma no entra en la factura")
	assert.Equal(t, "5", inv.Profit.String())
}

func TestRecordMultipleTransactions_SobreventaPorLinea(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Mouse", "10", 2)

	res := s.RecordMultipleTransactions([]inventory.CheckoutLine{
		{ItemID: id, Quantity: 5, SellingPrice: dec("15")},
	}, "")

	item, _ := s.ItemByID(id)
	assert.Equal(t, 0, item.Quantity)
	inv, _ := s.InvoiceByID(res.InvoiceID)
	assert.Equal(t, 5, inv.Items[0].Quantity, "se factura la cantidad solicitada")
	requireInvariant(t, s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestItemByCode(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Escritorio", "200", 1)
	item, _ := s.ItemByID(id)

	found, ok := s.ItemByCode(item.Code)
	require.True(t, ok)
	assert.Equal(t, id, found.ID)

	_, ok = s.ItemByCode("ITM-000000-000")
	assert.False(t, ok)
}

func TestItemsByStatusYCategoria_PreservanOrdenDeInsercion(t *testing.T) {
	s := inventory.NewStore(nil)
	idA := seedItem(t, s, "A", "1", 1)
	idB := s.AddItem(inventory.ItemInput{Category: entity.CategoryElectronics, Description: "B"})
	s.UpdateStock(idB, 1, false) // stock 0 → out
	idC := seedItem(t, s, "C", "1", 2)

	inStock := s.ItemsByStatus(entity.StatusIn)
	require.Len(t, inStock, 2)
	assert.Equal(t, idA, inStock[0].ID, "orden de inserción preservado")
	assert.Equal(t, idC, inStock[1].ID)

	outStock := s.ItemsByStatus(entity.StatusOut)
	require.Len(t, outStock, 1)
	assert.Equal(t, idB, outStock[0].ID)

	electronics := s.ItemsByCategory(entity.CategoryElectronics)
	assert.Len(t, electronics, 3)
	assert.Empty(t, s.ItemsByCategory(entity.CategoryClothing))
}

func TestSearchItems_CoincidenciaInsensibleAMayusculas(t *testing.T) {
	s := inventory.NewStore(nil)
	idA := seedItem(t, s, "Cable HDMI", "5", 3)
	seedItem(t, s, "Silla gamer", "150", 1)

	porDescripcion := s.SearchItems("hdmi")
	require.Len(t, porDescripcion, 1)
	assert.Equal(t, idA, porDescripcion[0].ID)

	porCategoria := s.SearchItems("ELECTRO")
	assert.Len(t, porCategoria, 2, "la categoría también participa en la búsqueda")

	item, _ := s.ItemByID(idA)
	porCodigo := s.SearchItems(item.Code[:7])
	assert.NotEmpty(t, porCodigo, "el código también participa en la búsqueda")

	assert.Empty(t, s.SearchItems("zzzz"))
}

func TestSearchItems_IdempotenteYOrdenado(t *testing.T) {
	s := inventory.NewStore(nil)
	seedItem(t, s, "abc uno", "1", 1)
	seedItem(t, s, "otra cosa", "1", 1)
	seedItem(t, s, "abc dos", "1", 1)

	first := s.SearchItems("abc")
	second := s.SearchItems("abc")
	require.Equal(t, first, second, "buscar dos veces devuelve el mismo conjunto")
	require.Len(t, first, 2)
	assert.Equal(t, "abc uno", first[0].Description, "orden relativo de la colección preservado")
	assert.Equal(t, "abc dos", first[1].Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock e invariante global
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_AjusteDirectoSinTransaccion(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Widget", "10", 5)
	txsAntes := len(s.Transactions())

	s.UpdateStock(id, 3, true)
	item, _ := s.ItemByID(id)
	assert.Equal(t, 8, item.Quantity)

	s.UpdateStock(id, 20, false)
	item, _ = s.ItemByID(id)
	assert.Equal(t, 0, item.Quantity, "la resta recorta en cero")
	assert.Equal(t, entity.StatusOut, item.Status)

	assert.Len(t, s.Transactions(), txsAntes, "el ajuste directo no genera transacciones")
	assert.Empty(t, s.Invoices(), "el ajuste directo no genera facturas")

	s.UpdateStock("no-existe", 1, true) // no-op silencioso
	requireInvariant(t, s)
}

func TestInvariante_SecuenciaArbitrariaDeOperaciones(t *testing.T) {
	s := inventory.NewStore(nil)
	idA := seedItem(t, s, "A", "10", 5)
	idB := seedItem(t, s, "B", "20", 0)

	s.RecordTransaction(entity.MovementOut, inventory.MovementInput{ItemID: idA, Quantity: 7, SellingPrice: decPtr("12")}, "")
	s.UpdateStock(idB, 4, true)
	s.RecordMultipleTransactions([]inventory.CheckoutLine{
		{ItemID: idB, Quantity: 2, SellingPrice: dec("25")},
		{ItemID: idA, Quantity: 1, SellingPrice: dec("12")},
	}, "")
	s.UpdateStock(idA, 10, false)
	s.RecordTransaction(entity.MovementIn, inventory.MovementInput{ItemID: idB, Quantity: 3}, "")

	requireInvariant(t, s)

	// TotalStock siempre igual a la suma de cantidades
	sum := 0
	for _, it := range s.Items() {
		sum += it.Quantity
	}
	assert.Equal(t, sum, s.TotalStock())
}

func TestTotalStock_TrasAltasYBajas(t *testing.T) {
	s := inventory.NewStore(nil)
	assert.Equal(t, 0, s.TotalStock())

	idA := seedItem(t, s, "A", "1", 5)
	seedItem(t, s, "B", "1", 7)
	assert.Equal(t, 12, s.TotalStock())

	s.RecordTransaction(entity.MovementOut, inventory.MovementInput{ItemID: idA, Quantity: 2}, "")
	assert.Equal(t, 10, s.TotalStock())

	s.DeleteItem(idA)
	assert.Equal(t, 7, s.TotalStock(), "borrar el artículo descuenta su stock del total")
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripción y snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_NotificaCadaMutacion(t *testing.T) {
	s := inventory.NewStore(nil)
	var got []inventory.State
	unsub := s.Subscribe(func(st inventory.State) { got = append(got, st) })

	id := seedItem(t, s, "Widget", "10", 5)
	s.UpdateStock(id, 1, true)
	require.Len(t, got, 2, "una notificación por mutación")
	assert.Equal(t, 6, got[1].Items[0].Quantity, "el snapshot refleja el estado tras la mutación")

	unsub()
	s.DeleteItem(id)
	assert.Len(t, got, 2, "tras darse de baja no llegan más notificaciones")
}

func TestSubscribe_ConsultasNoNotifican(t *testing.T) {
	s := inventory.NewStore(nil)
	seedItem(t, s, "Widget", "10", 5)

	calls := 0
	unsub := s.Subscribe(func(inventory.State) { calls++ })
	defer unsub()

	s.Items()
	s.SearchItems("widget")
	s.TotalProfit()
	s.MonthlyProfits(0)
	assert.Zero(t, calls, "las lecturas no disparan notificaciones")
}

func TestSnapshot_EsCopiaProfunda(t *testing.T) {
	s := inventory.NewStore(nil)
	id := seedItem(t, s, "Widget", "10", 5)

	snap := s.Snapshot()
	snap.Items[0].Quantity = 999
	snap.Items[0].Description = "mutado"

	item, _ := s.ItemByID(id)
	assert.Equal(t, 5, item.Quantity, "mutar el snapshot no toca el estado vivo")
	assert.Equal(t, "Widget", item.Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip del documento persistido
// ──────────────────────────────────────────────────────────────────────────────

func TestState_RoundTripJSON(t *testing.T) {
	s := inventory.NewStore(nil)
	idA := seedItem(t, s, "Widget", "10.50", 5)
	s.RecordTransaction(entity.MovementOut, inventory.MovementInput{
		ItemID:       idA,
		SellingPrice: decPtr("15.75"),
		Quantity:     2,
	}, "nota de venta")
	s.RecordMultipleTransactions([]inventory.CheckoutLine{
		{ItemID: idA, Quantity: 1, SellingPrice: dec("16")},
	}, "")

	original := s.Snapshot()
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var restored inventory.State
	require.NoError(t, json.Unmarshal(raw, &restored))

	require.Len(t, restored.Items, len(original.Items))
	require.Len(t, restored.Transactions, len(original.Transactions))
	require.Len(t, restored.Invoices, len(original.Invoices))

	assert.Equal(t, original.Items[0].ID, restored.Items[0].ID)
	assert.Equal(t, original.Items[0].Code, restored.Items[0].Code)
	assert.True(t, original.Items[0].PurchasePrice.Equal(restored.Items[0].PurchasePrice))
	require.NotNil(t, restored.Items[0].SellingPrice)
	assert.True(t, original.Items[0].SellingPrice.Equal(*restored.Items[0].SellingPrice))
	assert.True(t, original.Invoices[0].Profit.Equal(restored.Invoices[0].Profit))
	assert.Equal(t, original.Invoices[0].TransactionID, restored.Invoices[0].TransactionID)

	// Un almacén rehidratado con el documento restaurado se comporta igual.
	s2 := inventory.NewStore(&restored)
	assert.Equal(t, s.TotalStock(), s2.TotalStock())
	assert.True(t, s.TotalProfit().Equal(s2.TotalProfit()))
}
