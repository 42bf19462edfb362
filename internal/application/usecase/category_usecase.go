package usecase

import (
	"github.com/aoz-zh/supply-api/internal/application/dto"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

// CategoryUseCase listados de categorías sembradas.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías con su nombre mostrado y descripción.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		out = append(out, dto.CategoryResponse{
			Name:        cat.DisplayName,
			Description: cat.Description,
		})
	}
	return &dto.CategoryListResponse{Categories: out}, nil
}
