package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

func setupStore(t *testing.T) (*Store, *inventory.StockService) {
	t.Helper()
	store := NewStore()
	items := NewItemRepository(store)
	require.NoError(t, items.Upsert(&entity.Item{Category: "bedding", Name: "Decke"}))

	res := resolver.New(resolver.DefaultTables())
	svc := inventory.NewStockService(NewTxRunner(store), res, items)
	return store, svc
}

func TestIncrementosConcurrentesSeSerializan(t *testing.T) {
	store, svc := setupStore(t)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Increment(context.Background(), "bedding", "Decke", "loc_centrum", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := NewLedgerRepository(store).Get("bedding", "Decke", "loc_centrum")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, writers, rec.Available)
	assert.Equal(t, writers, rec.Overall())
}

func TestTransaccionFallidaNoDejaEscrituras(t *testing.T) {
	store, _ := setupStore(t)
	runner := NewTxRunner(store)

	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(ledger repository.LedgerRepository, _ repository.OrderRepository) error {
		if err := ledger.Upsert(&entity.StockRecord{
			Category: "bedding", ItemName: "Decke", LocationCode: "loc_centrum", Available: 7,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	rec, err := NewLedgerRepository(store).Get("bedding", "Decke", "loc_centrum")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLecturaEnTransaccionVeSusEscrituras(t *testing.T) {
	store, _ := setupStore(t)
	runner := NewTxRunner(store)

	err := runner.Run(context.Background(), func(ledger repository.LedgerRepository, _ repository.OrderRepository) error {
		if err := ledger.Upsert(&entity.StockRecord{
			Category: "bedding", ItemName: "Decke", LocationCode: "loc_centrum", Available: 3, Reserved: 1,
		}); err != nil {
			return err
		}
		rec, err := ledger.GetForUpdate("bedding", "Decke", "loc_centrum")
		if err != nil {
			return err
		}
		if rec == nil || rec.Overall() != 4 {
			return errors.New("la transacción no ve su propia escritura")
		}
		list, err := ledger.ListByItem("bedding", "Decke")
		if err != nil {
			return err
		}
		if len(list) != 1 {
			return errors.New("ListByItem no fusiona el overlay")
		}
		return nil
	})
	require.NoError(t, err)

	rec, err := NewLedgerRepository(store).Get("bedding", "Decke", "loc_centrum")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 4, rec.Overall())
}
