package memory

import (
	"sort"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var (
	_ repository.LocationRepository = (*LocationRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ItemRepository     = (*ItemRepo)(nil)
)

// LocationRepo implementación en memoria del puerto LocationRepository.
type LocationRepo struct {
	store *Store
}

// NewLocationRepository construye el adaptador sobre el almacén compartido.
func NewLocationRepository(store *Store) *LocationRepo {
	return &LocationRepo{store: store}
}

func (r *LocationRepo) Upsert(location *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.locations[location.Code] = *location
	return nil
}

func (r *LocationRepo) GetByCode(code string) (*entity.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if loc, ok := r.store.locations[code]; ok {
		return &loc, nil
	}
	return nil, nil
}

func (r *LocationRepo) List() ([]*entity.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Location, 0, len(r.store.locations))
	for _, loc := range r.store.locations {
		cp := loc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepository construye el adaptador sobre el almacén compartido.
func NewCategoryRepository(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) Upsert(category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.categories[category.Name] = *category
	return nil
}

func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if cat, ok := r.store.categories[name]; ok {
		return &cat, nil
	}
	return nil, nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.store.categories))
	for _, cat := range r.store.categories {
		cp := cat
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// ItemRepo implementación en memoria del puerto ItemRepository.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el adaptador sobre el almacén compartido.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

func (r *ItemRepo) Upsert(item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.items[itemKey{item.Category, item.Name}] = *item
	return nil
}

func (r *ItemRepo) Get(category, name string) (*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if it, ok := r.store.items[itemKey{category, name}]; ok {
		return &it, nil
	}
	return nil, nil
}

func (r *ItemRepo) ListByCategory(category string) ([]*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.Item
	for k, it := range r.store.items {
		if k.category == category {
			cp := it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
