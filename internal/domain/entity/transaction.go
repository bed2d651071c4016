package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// Transaction registro inmutable de un movimiento de stock.
// Quantity guarda siempre la cantidad solicitada, no el delta aplicado al stock.
// Nunca se modifica ni se borra; borrar el artículo deja el registro huérfano por ID.
type Transaction struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"itemId"`
	Type     string    `json:"type"` // "in" | "out"
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}
