package inventory

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const itemCodePrefix = "ITM"

// newItemCode genera un código legible: prefijo + últimos 6 dígitos del
// timestamp en milisegundos + 3 dígitos aleatorios. Ej: ITM-483920-047.
func newItemCode(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("%s-%s-%03d", itemCodePrefix, ms, rand.IntN(1000))
}

// uniqueItemCode regenera el código hasta que no choque con uno existente.
// El formato timestamp+aleatorio no garantiza unicidad por sí solo bajo
// creaciones rápidas sucesivas; tras varios intentos dentro del mismo
// milisegundo se recurre a un sufijo UUID, que sí la garantiza.
func uniqueItemCode(now time.Time, exists func(code string) bool) string {
	for range 10 {
		code := newItemCode(now)
		if !exists(code) {
			return code
		}
	}
	return fmt.Sprintf("%s-%s", itemCodePrefix, uuid.New().String()[:13])
}
