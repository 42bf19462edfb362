package repository

import "github.com/aoz-zh/supply-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
// Las ubicaciones se siembran por configuración y cambian rara vez.
type LocationRepository interface {
	Upsert(location *entity.Location) error
	GetByCode(code string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
