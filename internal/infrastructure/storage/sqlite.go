// Package storage implementa la persistencia del almacén de inventario.
//
// El estado completo (items, transactions, invoices) se serializa como un solo
// documento JSON bajo una clave fija en una tabla clave-valor de SQLite: un
// archivo local por dispositivo, el equivalente del AsyncStorage de la app
// móvil. El documento conserva su formato (campos camelCase), así que
// un estado exportado desde la app se rehidrata tal cual.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/domain"
)

// StateKey clave fija del documento de estado, compartida con la app móvil.
const StateKey = "inventory-storage"

// SQLiteStorage almacén clave-valor sobre un archivo SQLite.
// Implementa inventory.StateStorage.
type SQLiteStorage struct {
	db *sql.DB
}

// Open abre (o crea) el archivo SQLite y prepara la tabla clave-valor.
// Con path ":memory:" el almacén vive solo en memoria; útil en tests.
func Open(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: pragma %q: %w", p, err)
		}
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: crear esquema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Load lee y deserializa el documento de estado. Devuelve (nil, nil) cuando no
// existe documento previo: el almacén arranca con las colecciones vacías.
func (s *SQLiteStorage) Load(ctx context.Context) (*inventory.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = ?`, StateKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer estado: %v", domain.ErrStorage, err)
	}

	var state inventory.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("%w: deserializar estado: %v", domain.ErrStorage, err)
	}
	return &state, nil
}

// Save serializa el estado completo y lo escribe bajo la clave fija.
func (s *SQLiteStorage) Save(ctx context.Context, state inventory.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: serializar estado: %v", domain.ErrStorage, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		StateKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: escribir estado: %v", domain.ErrStorage, err)
	}
	return nil
}

// Close cierra el archivo.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
