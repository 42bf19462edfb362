package usecase

import (
	"github.com/aoz-zh/supply-api/internal/application/dto"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

// LocationUseCase listados de ubicaciones para la interfaz.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// List devuelve todas las ubicaciones con el nombre mostrado actual.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, loc := range list {
		out = append(out, dto.LocationResponse{
			Name:       loc.DisplayName,
			Address:    loc.Address,
			PostalCode: loc.PostalCode,
		})
	}
	return &dto.LocationListResponse{Locations: out}, nil
}
