package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-movil/internal/domain/entity"
)

// CreateItemRequest entrada para crear un artículo.
// Los precios se validan a mano en el handler (decimal no lleva tags numéricos).
type CreateItemRequest struct {
	Category      string           `json:"category" validate:"required,oneof=electronics furniture clothing food office other"`
	Description   string           `json:"description" validate:"required,min=1,max=500"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	ImageURI      string           `json:"image_uri"`
	Quantity      int              `json:"quantity" validate:"min=0"`
	Status        string           `json:"status" validate:"omitempty,oneof=in out"`
}

// UpdateItemRequest entrada parcial para actualizar un artículo; los nil no se tocan.
type UpdateItemRequest struct {
	Category      *string          `json:"category" validate:"omitempty,oneof=electronics furniture clothing food office other"`
	Description   *string          `json:"description" validate:"omitempty,min=1,max=500"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	ImageURI      *string          `json:"image_uri"`
	Quantity      *int             `json:"quantity" validate:"omitempty,min=0"`
	Status        *string          `json:"status" validate:"omitempty,oneof=in out"`
}

// UpdateStockRequest ajuste directo de stock (correcciones fuera del flujo de
// transacciones).
type UpdateStockRequest struct {
	Quantity   int  `json:"quantity" validate:"min=0"`
	IsAddition bool `json:"is_addition"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"`
	Category      string           `json:"category"`
	Description   string           `json:"description"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
	ImageURI      string           `json:"image_uri,omitempty"`
	Quantity      int              `json:"quantity"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ItemListResponse lista de artículos con su total.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// ToItemResponse convierte la entidad a su DTO de salida.
func ToItemResponse(it entity.Item) ItemResponse {
	return ItemResponse{
		ID:            it.ID,
		Code:          it.Code,
		Category:      string(it.Category),
		Description:   it.Description,
		PurchasePrice: it.PurchasePrice,
		SellingPrice:  it.SellingPrice,
		ImageURI:      it.ImageURI,
		Quantity:      it.Quantity,
		Status:        string(it.Status),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

// ToItemListResponse convierte una lista de entidades preservando el orden.
func ToItemListResponse(items []entity.Item) ItemListResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToItemResponse(it))
	}
	return ItemListResponse{Items: out, Total: len(out)}
}
