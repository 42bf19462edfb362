package repository

import "github.com/aoz-zh/supply-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// La identidad es el par (categoría, nombre). Get devuelve nil si no existe.
type ItemRepository interface {
	Upsert(item *entity.Item) error
	Get(category, name string) (*entity.Item, error)
	ListByCategory(category string) ([]*entity.Item, error)
}
