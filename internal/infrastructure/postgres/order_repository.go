package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, category, item_name, location_code, quantity, status, created_at, updated_at`

// Create persiste un ticket nuevo.
func (r *OrderRepo) Create(ticket *entity.OrderTicket) error {
	query := `
		INSERT INTO order_tickets (id, category, item_name, location_code, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.Category, ticket.ItemName, ticket.LocationCode,
		ticket.Quantity, ticket.Status, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por id; nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.OrderTicket, error) {
	query := `SELECT ` + orderColumns + ` FROM order_tickets WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene un ticket y bloquea la fila (SELECT FOR UPDATE) para
// que la transición de estado sea atómica con la mutación del ledger.
func (r *OrderRepo) GetForUpdate(id string) (*entity.OrderTicket, error) {
	query := `SELECT ` + orderColumns + ` FROM order_tickets WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update actualiza el estado del ticket.
func (r *OrderRepo) Update(ticket *entity.OrderTicket) error {
	query := `
		UPDATE order_tickets SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, ticket.ID, ticket.Status, ticket.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order ticket: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanOne(query string, args ...any) (*entity.OrderTicket, error) {
	var t entity.OrderTicket
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&t.ID, &t.Category, &t.ItemName, &t.LocationCode,
		&t.Quantity, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order ticket: %w", err)
	}
	return &t, nil
}
