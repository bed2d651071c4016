package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus estado derivado de un artículo: "in" mientras quede stock, "out" al llegar a cero.
type ItemStatus string

const (
	StatusIn  ItemStatus = "in"
	StatusOut ItemStatus = "out"
)

// StatusFor devuelve el estado que corresponde a una cantidad de stock.
func StatusFor(quantity int) ItemStatus {
	if quantity > 0 {
		return StatusIn
	}
	return StatusOut
}

// ItemCategory categoría fija de un artículo.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "electronics"
	CategoryFurniture   ItemCategory = "furniture"
	CategoryClothing    ItemCategory = "clothing"
	CategoryFood        ItemCategory = "food"
	CategoryOffice      ItemCategory = "office"
	CategoryOther       ItemCategory = "other"
)

// Categories todas las categorías válidas, en orden de presentación.
var Categories = []ItemCategory{
	CategoryElectronics, CategoryFurniture, CategoryClothing,
	CategoryFood, CategoryOffice, CategoryOther,
}

// Valid indica si la categoría pertenece al conjunto fijo.
func (c ItemCategory) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Item representa un artículo del inventario (SKU).
// Quantity nunca es negativa; Status se recalcula con StatusFor tras cada mutación.
// Los tags JSON en camelCase conservan el formato del documento persistido
// por la app móvil (AsyncStorage).
type Item struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"` // código legible único, ej. ITM-483920-047
	Category      ItemCategory     `json:"category"`
	Description   string           `json:"description"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice,omitempty"` // presente tras la primera venta
	ImageURI      string           `json:"imageUri,omitempty"`
	Quantity      int              `json:"quantity"`
	Status        ItemStatus       `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
