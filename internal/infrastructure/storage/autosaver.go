package storage

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/pkg/logger"
)

const saveTimeout = 5 * time.Second

// Autosaver conecta el almacén con la persistencia: se suscribe a las
// mutaciones y vuelca el estado en segundo plano, sin que el que llama espere
// el flush (fire-and-forget). Las ráfagas de mutaciones se coalescen: el canal
// dirty solo marca "hay cambios" y cada vuelta del bucle guarda el snapshot
// más reciente, nunca uno intermedio.
//
// Un fallo de escritura se registra y nada más: la copia en memoria sigue
// siendo la fuente de verdad hasta el próximo flush que sí funcione. Un crash
// del proceso entre mutación y flush pierde las últimas escrituras; limitación
// aceptada del diseño, igual que en la app móvil.
type Autosaver struct {
	store   *inventory.Store
	storage inventory.StateStorage
	log     *logger.Logger

	mu     sync.Mutex // protege closed frente a notificaciones concurrentes con Stop
	closed bool

	dirty chan struct{}
	unsub func()
	done  chan struct{}
}

// NewAutosaver construye el adaptador; Start lo pone en marcha.
func NewAutosaver(store *inventory.Store, st inventory.StateStorage, log *logger.Logger) *Autosaver {
	return &Autosaver{
		store:   store,
		storage: st,
		log:     log,
		dirty:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start suscribe el autosaver al almacén y arranca el bucle de guardado.
func (a *Autosaver) Start() {
	a.unsub = a.store.Subscribe(func(inventory.State) {
		// El almacén copia la lista de suscriptores antes de invocarlos, así
		// que una notificación en vuelo puede llegar después de darse de baja.
		// El flag closed, bajo el mismo mutex que Stop, evita enviar sobre el
		// canal ya cerrado; el flush final de Stop cubre ese estado.
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.closed {
			return
		}
		select {
		case a.dirty <- struct{}{}:
		default: // ya hay un guardado pendiente; se coalesce
		}
	})
	go a.loop()
}

func (a *Autosaver) loop() {
	defer close(a.done)
	for range a.dirty {
		a.flush()
	}
}

func (a *Autosaver) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := a.storage.Save(ctx, a.store.Snapshot()); err != nil {
		a.log.Error().Err(err).Msg("autosave del inventario")
	}
}

// Stop se da de baja del almacén, drena el bucle y hace un último flush
// síncrono para no perder la cola de cambios en un apagado ordenado.
func (a *Autosaver) Stop(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()

	if a.unsub != nil {
		a.unsub()
	}
	// Ningún envío puede estar en curso: el callback comprueba closed bajo el
	// mismo mutex antes de tocar el canal.
	close(a.dirty)
	select {
	case <-a.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return a.storage.Save(ctx, a.store.Snapshot())
}
