package repository

import "github.com/aoz-zh/supply-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID devuelve nil si no existe el usuario.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
}
