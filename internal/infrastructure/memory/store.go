// Package memory implementa los puertos de persistencia sobre mapas en
// proceso. Es el driver de desarrollo y de tests (DB_DRIVER=memory): misma
// semántica que el driver PostgreSQL, sin dependencias externas.
package memory

import (
	"sync"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
)

type ledgerKey struct {
	category string
	item     string
	location string
}

type itemKey struct {
	category string
	name     string
}

// Store es el almacén compartido por todos los repos del driver memory.
// Guarda valores (no punteros) y los repos devuelven copias, así ningún
// caller puede mutar el estado interno por fuera de Upsert/Update.
type Store struct {
	mu         sync.RWMutex
	ledger     map[ledgerKey]entity.StockRecord
	orders     map[string]entity.OrderTicket
	locations  map[string]entity.Location
	categories map[string]entity.Category
	items      map[itemKey]entity.Item
	users      map[string]entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		ledger:     make(map[ledgerKey]entity.StockRecord),
		orders:     make(map[string]entity.OrderTicket),
		locations:  make(map[string]entity.Location),
		categories: make(map[string]entity.Category),
		items:      make(map[itemKey]entity.Item),
		users:      make(map[string]entity.User),
	}
}
