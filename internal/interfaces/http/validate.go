// Package http expone el almacén de inventario como API Fiber.
//
// Esta capa es "la pantalla" de la app: el almacén no valida entrada ni
// produce errores de dominio, así que toda la sanitización (campos requeridos,
// números negativos, enums) ocurre aquí antes de llamar a sus operaciones.
package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate instancia compartida; lee los tags `validate` de los DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// negative true si algún precio presente es negativo. Los campos decimal no
// llevan tags numéricos del validador, se comprueban a mano.
func negative(prices ...*decimal.Decimal) bool {
	for _, p := range prices {
		if p != nil && p.IsNegative() {
			return true
		}
	}
	return false
}
