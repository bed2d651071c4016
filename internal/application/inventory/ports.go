package inventory

import "context"

// StateStorage puerto de persistencia del documento de estado.
// La implementación guarda el State completo bajo una clave fija y lo
// devuelve al arrancar; (nil, nil) significa que no existe documento previo.
type StateStorage interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state State) error
}
