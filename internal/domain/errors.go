// Package domain define los errores sentinela compartidos.
//
// El almacén de inventario no produce errores de negocio: operaciones sobre IDs
// inexistentes son no-ops silenciosos, y "no encontrado" se expresa con un bool.
// El único error sentinela es el de persistencia, que permite a las capas
// exteriores distinguir un fallo de disco de uno de serialización propia.
package domain

import "errors"

// ErrStorage fallo de la persistencia local (disco, esquema o serialización).
var ErrStorage = errors.New("fallo de persistencia")
