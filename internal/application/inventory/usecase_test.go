package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
	"github.com/aoz-zh/supply-api/internal/infrastructure/memory"
)

func newStockFixture(t *testing.T) (*memory.Store, *inventory.StockService) {
	t.Helper()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	require.NoError(t, items.Upsert(&entity.Item{Category: "bedding", Name: "Bett"}))

	res := resolver.New(resolver.DefaultTables())
	svc := inventory.NewStockService(memory.NewTxRunner(store), res, items)
	return store, svc
}

func putRecord(t *testing.T, store *memory.Store, available, reserved int) {
	t.Helper()
	require.NoError(t, memory.NewLedgerRepository(store).Upsert(&entity.StockRecord{
		Category: "bedding", ItemName: "Bett", LocationCode: "loc_centrum",
		Available: available, Reserved: reserved,
	}))
}

func getRecord(t *testing.T, store *memory.Store) *entity.StockRecord {
	t.Helper()
	rec, err := memory.NewLedgerRepository(store).Get("bedding", "Bett", "loc_centrum")
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec
}

func TestFijarTotalSubeElDisponible(t *testing.T) {
	store, svc := newStockFixture(t)
	putRecord(t, store, 5, 2)

	rec, err := svc.AdjustTotal(context.Background(), "bedding", "Bett", "loc_centrum", 10)
	require.NoError(t, err)

	assert.Equal(t, 8, rec.Available)
	assert.Equal(t, 2, rec.Reserved)
	assert.Equal(t, 10, rec.Overall())
}

func TestFijarTotalBajoElReservadoDejaDisponibleEnCero(t *testing.T) {
	store, svc := newStockFixture(t)
	putRecord(t, store, 5, 2)

	// new_overall=1 < reserved=2: available queda en 0, reserved no se toca.
	rec, err := svc.AdjustTotal(context.Background(), "bedding", "Bett", "loc_centrum", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, rec.Available)
	assert.Equal(t, 2, rec.Reserved)
	assert.Equal(t, 2, rec.Overall())
}

func TestFijarTotalSobreClaveSinRegistroCreaElRegistro(t *testing.T) {
	store, svc := newStockFixture(t)

	rec, err := svc.AdjustTotal(context.Background(), "bedding", "Bett", "loc_centrum", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, rec.Available)
	assert.Equal(t, 0, rec.Reserved)

	assert.Equal(t, 6, getRecord(t, store).Available)
}

func TestFijarTotalNegativoEsInvalido(t *testing.T) {
	_, svc := newStockFixture(t)
	_, err := svc.AdjustTotal(context.Background(), "bedding", "Bett", "loc_centrum", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFijarTotalResuelveAliasDeCategoriaYUbicacion(t *testing.T) {
	store, svc := newStockFixture(t)

	_, err := svc.AdjustTotal(context.Background(), "Bettwaren", "Bett", "AOZ Central Warehouse", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, getRecord(t, store).Available)
}

func TestFijarTotalDeArticuloDesconocidoEsNotFound(t *testing.T) {
	_, svc := newStockFixture(t)
	_, err := svc.AdjustTotal(context.Background(), "bedding", "Hängematte", "loc_centrum", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIncrementoPasoAPaso(t *testing.T) {
	store, svc := newStockFixture(t)
	putRecord(t, store, 1, 0)

	rec, err := svc.Increment(context.Background(), "bedding", "Bett", "loc_centrum", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Available)

	rec, err = svc.Increment(context.Background(), "bedding", "Bett", "loc_centrum", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Available)
}

func TestDecrementoConDisponibleEnCeroEsNoOp(t *testing.T) {
	store, svc := newStockFixture(t)
	putRecord(t, store, 0, 3)

	rec, err := svc.Increment(context.Background(), "bedding", "Bett", "loc_centrum", -1)
	require.NoError(t, err)

	assert.Equal(t, 0, rec.Available)
	assert.Equal(t, 3, rec.Reserved)
	assert.Equal(t, 0, getRecord(t, store).Available)
}

func TestPasoDistintoDeUnoEsInvalido(t *testing.T) {
	_, svc := newStockFixture(t)
	for _, step := range []int{0, 2, -2, 10} {
		_, err := svc.Increment(context.Background(), "bedding", "Bett", "loc_centrum", step)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
