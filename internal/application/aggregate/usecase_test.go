package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
	"github.com/aoz-zh/supply-api/internal/infrastructure/memory"
)

func newFixture(t *testing.T) (*memory.Store, *aggregate.UseCase) {
	t.Helper()
	store := memory.NewStore()
	ledger := memory.NewLedgerRepository(store)
	items := memory.NewItemRepository(store)
	res := resolver.New(resolver.DefaultTables())
	return store, aggregate.NewUseCase(ledger, items, res, nil, nil)
}

func seedRecord(t *testing.T, store *memory.Store, item, loc string, available, reserved int) {
	t.Helper()
	require.NoError(t, memory.NewLedgerRepository(store).Upsert(&entity.StockRecord{
		Category: "bedding", ItemName: item, LocationCode: loc,
		Available: available, Reserved: reserved,
	}))
}

func seedItem(t *testing.T, store *memory.Store, name string) {
	t.Helper()
	require.NoError(t, memory.NewItemRepository(store).Upsert(&entity.Item{Category: "bedding", Name: name}))
}

func TestDetalleDeArticuloSumaPorUbicacion(t *testing.T) {
	store, uc := newFixture(t)
	seedItem(t, store, "Bett")
	seedRecord(t, store, "Bett", "loc_centrum", 5, 2)
	seedRecord(t, store, "Bett", "loc_west", 3, 0)

	detail, err := uc.ItemDetail(context.Background(), "bedding", "Bett")
	require.NoError(t, err)

	assert.Equal(t, 10, detail.Overall)
	assert.Equal(t, 8, detail.Available)
	assert.Equal(t, 2, detail.Reserved)

	require.Len(t, detail.PerLocation, 2)
	assert.Equal(t, 7, detail.PerLocation["loc_centrum"].Overall)
	assert.Equal(t, 5, detail.PerLocation["loc_centrum"].Available)
	assert.Equal(t, 2, detail.PerLocation["loc_centrum"].Reserved)
	assert.Equal(t, 3, detail.PerLocation["loc_west"].Overall)
}

func TestDetalleDeArticuloDesconocidoEsNotFound(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.ItemDetail(context.Background(), "bedding", "Hängematte")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumenIncluyeArticulosSinStock(t *testing.T) {
	store, uc := newFixture(t)
	seedItem(t, store, "Bett")
	seedItem(t, store, "Schlafsack") // sin registros de stock
	seedRecord(t, store, "Bett", "loc_centrum", 5, 2)
	seedRecord(t, store, "Bett", "loc_west", 3, 0)

	summary, degraded, err := uc.CategorySummary(context.Background(), "Bettwaren")
	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, map[string]int{"Bett": 10, "Schlafsack": 0}, summary)
}

func TestResumenDeCategoriaDesconocidaEsNotFound(t *testing.T) {
	_, uc := newFixture(t)
	_, _, err := uc.CategorySummary(context.Background(), "Möbel")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetallePorUbicacionResuelveAliasLegado(t *testing.T) {
	store, uc := newFixture(t)
	seedItem(t, store, "Bett")
	seedRecord(t, store, "Bett", "loc_centrum", 4, 1)

	detail, err := uc.LocationDetail(context.Background(), "AOZ Central Warehouse")
	require.NoError(t, err)
	assert.Equal(t, "loc_centrum", detail.Location)

	entries := detail.Categories["bedding"]
	require.Len(t, entries, 1)
	assert.Equal(t, "Bett", entries[0].Name)
	assert.Equal(t, 5, entries[0].Total)
	assert.Equal(t, 4, entries[0].Available)
	assert.Equal(t, 1, entries[0].Reserved)
}

// repos que fallan para simular el almacén caído.

type failingLedger struct{ repository.LedgerRepository }

func (failingLedger) ListByCategory(string) ([]*entity.StockRecord, error) {
	return nil, errors.New("connection refused")
}

type staticCache struct {
	summary map[string]int
}

func (c *staticCache) GetSummary(_ context.Context, _ string) (map[string]int, error) {
	return c.summary, nil
}

func (c *staticCache) SetSummary(_ context.Context, _ string, _ map[string]int) error {
	return nil
}

type staticSource struct {
	summary map[string]int
}

func (s *staticSource) CategorySummary(_ context.Context, _ string) (map[string]int, error) {
	return s.summary, nil
}

func TestResumenDegradadoDesdeCache(t *testing.T) {
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	res := resolver.New(resolver.DefaultTables())
	require.NoError(t, items.Upsert(&entity.Item{Category: "bedding", Name: "Bett"}))

	cache := &staticCache{summary: map[string]int{"Bett": 9}}
	uc := aggregate.NewUseCase(failingLedger{memory.NewLedgerRepository(store)}, items, res, cache, nil)

	summary, degraded, err := uc.CategorySummary(context.Background(), "bedding")
	require.NoError(t, err)
	assert.True(t, degraded)
	assert.Equal(t, map[string]int{"Bett": 9}, summary)
}

func TestResumenDegradadoCaeAlBackendLegado(t *testing.T) {
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	res := resolver.New(resolver.DefaultTables())
	require.NoError(t, items.Upsert(&entity.Item{Category: "bedding", Name: "Bett"}))

	legacy := &staticSource{summary: map[string]int{"Bett": 4}}
	uc := aggregate.NewUseCase(failingLedger{memory.NewLedgerRepository(store)}, items, res, nil, legacy)

	summary, degraded, err := uc.CategorySummary(context.Background(), "bedding")
	require.NoError(t, err)
	assert.True(t, degraded)
	assert.Equal(t, map[string]int{"Bett": 4}, summary)
}

func TestSinCopiaDisponibleElFalloEsReintentable(t *testing.T) {
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	res := resolver.New(resolver.DefaultTables())
	require.NoError(t, items.Upsert(&entity.Item{Category: "bedding", Name: "Bett"}))

	uc := aggregate.NewUseCase(failingLedger{memory.NewLedgerRepository(store)}, items, res, nil, nil)

	_, _, err := uc.CategorySummary(context.Background(), "bedding")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
