package inventory

import (
	"context"

	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción del almacén. Los repos
// que recibe fn están atados a la transacción: GetForUpdate bloquea la clave
// hasta Commit/Rollback, serializando a los escritores concurrentes de la
// misma clave sin frenar a los de claves distintas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledger repository.LedgerRepository,
		orders repository.OrderRepository,
	) error) error
}

// OrderEvents notificaciones que emite el núcleo sobre tickets de pedido.
// La solicitud de un pedido es un evento, no una mutación del ledger: el
// cumplimiento lo decide un proceso logístico externo.
type OrderEvents interface {
	OrderRequested(ticket *entity.OrderTicket)
	OrderFulfilled(ticket *entity.OrderTicket)
	OrderCancelled(ticket *entity.OrderTicket)
}
