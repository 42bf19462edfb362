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

type recordingEvents struct {
	requested, fulfilled, cancelled int
}

func (e *recordingEvents) OrderRequested(*entity.OrderTicket) { e.requested++ }
func (e *recordingEvents) OrderFulfilled(*entity.OrderTicket) { e.fulfilled++ }
func (e *recordingEvents) OrderCancelled(*entity.OrderTicket) { e.cancelled++ }

func newOrderFixture(t *testing.T) (*memory.Store, *inventory.OrderService, *recordingEvents) {
	t.Helper()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	require.NoError(t, items.Upsert(&entity.Item{Category: "bedding", Name: "Bett"}))

	events := &recordingEvents{}
	res := resolver.New(resolver.DefaultTables())
	svc := inventory.NewOrderService(memory.NewTxRunner(store), res, items, events)
	return store, svc, events
}

func ledgerRecord(t *testing.T, store *memory.Store) *entity.StockRecord {
	t.Helper()
	rec, err := memory.NewLedgerRepository(store).Get("bedding", "Bett", "loc_centrum")
	require.NoError(t, err)
	return rec
}

func TestSolicitarPedidoNoMutaElLedger(t *testing.T) {
	store, svc, events := newOrderFixture(t)
	require.NoError(t, memory.NewLedgerRepository(store).Upsert(&entity.StockRecord{
		Category: "bedding", ItemName: "Bett", LocationCode: "loc_centrum", Available: 5, Reserved: 2,
	}))

	ticket, err := svc.Request(context.Background(), "bedding", "Bett", "loc_centrum", 4)
	require.NoError(t, err)

	assert.Equal(t, entity.TicketRequested, ticket.Status)
	assert.Equal(t, 4, ticket.Quantity)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, 1, events.requested)

	// El stock queda intacto hasta el cumplimiento.
	rec := ledgerRecord(t, store)
	assert.Equal(t, 5, rec.Available)
	assert.Equal(t, 2, rec.Reserved)
}

func TestCantidadInvalidaAlSolicitar(t *testing.T) {
	_, svc, _ := newOrderFixture(t)
	for _, q := range []int{0, -3} {
		_, err := svc.Request(context.Background(), "bedding", "Bett", "loc_centrum", q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCumplirPedidoIngresaEnElDestino(t *testing.T) {
	store, svc, events := newOrderFixture(t)

	ticket, err := svc.Request(context.Background(), "bedding", "Bett", "loc_centrum", 4)
	require.NoError(t, err)

	done, err := svc.Fulfill(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketFulfilled, done.Status)
	assert.Equal(t, 1, events.fulfilled)

	rec := ledgerRecord(t, store)
	require.NotNil(t, rec)
	assert.Equal(t, 4, rec.Available)
	assert.Equal(t, 0, rec.Reserved)
}

func TestCancelarPedidoNoTocaElStock(t *testing.T) {
	store, svc, events := newOrderFixture(t)

	ticket, err := svc.Request(context.Background(), "bedding", "Bett", "loc_centrum", 4)
	require.NoError(t, err)

	done, err := svc.Cancel(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketCancelled, done.Status)
	assert.Equal(t, 1, events.cancelled)

	assert.Nil(t, ledgerRecord(t, store))
}

func TestTransicionDesdeEstadoTerminalEsConflicto(t *testing.T) {
	_, svc, _ := newOrderFixture(t)

	ticket, err := svc.Request(context.Background(), "bedding", "Bett", "loc_centrum", 2)
	require.NoError(t, err)
	_, err = svc.Cancel(context.Background(), ticket.ID)
	require.NoError(t, err)

	_, err = svc.Fulfill(context.Background(), ticket.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = svc.Cancel(context.Background(), ticket.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConsultarPedidoInexistenteEsNotFound(t *testing.T) {
	_, svc, _ := newOrderFixture(t)
	_, err := svc.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Fulfill(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
