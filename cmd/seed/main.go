// Seeder de datos de demostración: crea artículos, registra movimientos y
// ventas a través del almacén real, y persiste el resultado en el archivo de
// almacenamiento configurado (STORAGE_PATH). Útil para probar la API y el
// swagger con datos realistas.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/domain/entity"
	"github.com/tu-usuario/stock-movil/internal/infrastructure/storage"
	"github.com/tu-usuario/stock-movil/pkg/config"
	"github.com/tu-usuario/stock-movil/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	st, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacenamiento local")
	}
	defer st.Close()

	store := inventory.NewStore(nil)

	seedItems := []struct {
		input    inventory.ItemInput
		sellQty  int
		sellAt   string // precio de venta; vacío = sin venta
	}{
		{
			input: inventory.ItemInput{
				Category:      entity.CategoryElectronics,
				Description:   "Audífonos inalámbricos TWS",
				PurchasePrice: dec("25.00"),
				Quantity:      20,
			},
			sellQty: 6, sellAt: "45.00",
		},
		{
			input: inventory.ItemInput{
				Category:      entity.CategoryElectronics,
				Description:   "Cargador rápido USB-C 20W",
				PurchasePrice: dec("8.50"),
				Quantity:      35,
			},
			sellQty: 12, sellAt: "15.00",
		},
		{
			input: inventory.ItemInput{
				Category:      entity.CategoryClothing,
				Description:   "Camiseta algodón talla M",
				PurchasePrice: dec("4.00"),
				Quantity:      50,
			},
			sellQty: 18, sellAt: "9.99",
		},
		{
			input: inventory.ItemInput{
				Category:      entity.CategoryFurniture,
				Description:   "Silla plegable metálica",
				PurchasePrice: dec("12.00"),
				Quantity:      10,
			},
		},
		{
			input: inventory.ItemInput{
				Category:      entity.CategoryFood,
				Description:   "Café tostado en grano 500g",
				PurchasePrice: dec("6.20"),
				Quantity:      24,
			},
			sellQty: 24, sellAt: "11.50", // se agota: queda en estado out
		},
		{
			input: inventory.ItemInput{
				Category:      entity.CategoryOffice,
				Description:   "Resma papel carta 500 hojas",
				PurchasePrice: dec("3.80"),
				Quantity:      40,
			},
			sellQty: 5, sellAt: "6.50",
		},
	}

	var cart []inventory.CheckoutLine
	for _, s := range seedItems {
		id := store.AddItem(s.input)
		log.Info().Str("item_id", id).Str("description", s.input.Description).Msg("artículo creado")
		if s.sellQty > 0 {
			cart = append(cart, inventory.CheckoutLine{
				ItemID:       id,
				Quantity:     s.sellQty,
				SellingPrice: dec(s.sellAt),
			})
		}
	}

	// Una venta de carrito (una sola factura para todas las líneas)...
	res := store.RecordMultipleTransactions(cart, "venta de demostración")
	log.Info().
		Str("invoice_id", res.InvoiceID).
		Int("lines", len(res.TransactionIDs)).
		Msg("checkout de demostración registrado")

	// ...y un par de movimientos sueltos para poblar el historial.
	items := store.Items()
	if len(items) > 0 {
		store.RecordTransaction(entity.MovementIn, inventory.MovementInput{
			ItemID:   items[0].ID,
			Quantity: 10,
		}, "reposición de proveedor")

		sell := dec("45.00")
		store.RecordTransaction(entity.MovementOut, inventory.MovementInput{
			ItemID:       items[0].ID,
			Quantity:     2,
			SellingPrice: &sell,
		}, "venta mostrador")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.Save(ctx, store.Snapshot()); err != nil {
		log.Fatal().Err(err).Msg("persistir datos de demostración")
	}

	log.Info().
		Str("path", cfg.Storage.Path).
		Int("items", len(store.Items())).
		Int("transactions", len(store.Transactions())).
		Int("invoices", len(store.Invoices())).
		Msg("datos de demostración persistidos")
}
