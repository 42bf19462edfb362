package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

// StockService aplica mutaciones acotadas al ledger: fijar el total de un
// par (artículo, ubicación) y el paso +1/−1 de los controles interactivos.
// Cada mutación corre en una transacción con bloqueo de la clave
// (GetForUpdate) para que overall = available + reserved se mantenga siempre.
type StockService struct {
	tx    TxRunner
	res   *resolver.Resolver
	items repository.ItemRepository
}

// NewStockService construye el servicio de mutaciones.
func NewStockService(tx TxRunner, res *resolver.Resolver, items repository.ItemRepository) *StockService {
	return &StockService{tx: tx, res: res, items: items}
}

// AdjustTotal fija el total (overall) del par. Como available y reserved se
// ajustan por separado, el delta se asigna entero a available, con piso en 0:
// una bajada mayor que el available actual deja available en 0 y reserved
// intacto (semántica de fallo parcial, no error duro).
func (s *StockService) AdjustTotal(ctx context.Context, category, itemName, location string, newOverall int) (*entity.StockRecord, error) {
	if newOverall < 0 {
		return nil, domain.ErrInvalidInput
	}
	key, err := s.resolveKey(category, itemName, location)
	if err != nil {
		return nil, err
	}

	var updated *entity.StockRecord
	err = s.runWithRetry(ctx, func(ledger repository.LedgerRepository, _ repository.OrderRepository) error {
		rec, err := s.lockRecord(ledger, key)
		if err != nil {
			return err
		}
		delta := newOverall - rec.Overall()
		rec.Available += delta
		if rec.Available < 0 {
			rec.Available = 0
		}
		rec.UpdatedAt = time.Now()
		if err := ledger.Upsert(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Increment aplica el paso acotado de los controles "+ / −". step debe ser
// +1 o −1; el −1 con available en 0 es un no-op (piso, nunca negativo).
func (s *StockService) Increment(ctx context.Context, category, itemName, location string, step int) (*entity.StockRecord, error) {
	if step != 1 && step != -1 {
		return nil, domain.ErrInvalidInput
	}
	key, err := s.resolveKey(category, itemName, location)
	if err != nil {
		return nil, err
	}

	var updated *entity.StockRecord
	err = s.runWithRetry(ctx, func(ledger repository.LedgerRepository, _ repository.OrderRepository) error {
		rec, err := s.lockRecord(ledger, key)
		if err != nil {
			return err
		}
		rec.Available += step
		if rec.Available < 0 {
			rec.Available = 0
		}
		rec.UpdatedAt = time.Now()
		if err := ledger.Upsert(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ledgerKey clave canónica ya resuelta de un registro.
type ledgerKey struct {
	category string
	item     string
	location string
}

// resolveKey normaliza los nombres de entrada y valida que el artículo exista.
func (s *StockService) resolveKey(category, itemName, location string) (ledgerKey, error) {
	canonical, err := s.res.ResolveCategory(category)
	if err != nil {
		return ledgerKey{}, err
	}
	code, err := s.res.ResolveLocation(location)
	if err != nil {
		return ledgerKey{}, err
	}
	item, err := s.items.Get(canonical, itemName)
	if err != nil {
		return ledgerKey{}, err
	}
	if item == nil {
		return ledgerKey{}, domain.ErrNotFound
	}
	return ledgerKey{category: canonical, item: itemName, location: code}, nil
}

// lockRecord bloquea el registro de la clave; si no existe, arranca de cero
// (la ausencia de registro significa stock cero, el primer stock lo crea).
func (s *StockService) lockRecord(ledger repository.LedgerRepository, key ledgerKey) (*entity.StockRecord, error) {
	rec, err := ledger.GetForUpdate(key.category, key.item, key.location)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &entity.StockRecord{
			Category:     key.category,
			ItemName:     key.item,
			LocationCode: key.location,
		}
	}
	return rec, nil
}

// runWithRetry ejecuta la transacción; si la disciplina de bloqueo detecta un
// conflicto, el escritor perdedor reintenta una sola vez con el snapshot más
// reciente y recién entonces reporta el fallo.
func (s *StockService) runWithRetry(ctx context.Context, fn func(
	ledger repository.LedgerRepository,
	orders repository.OrderRepository,
) error) error {
	err := s.tx.Run(ctx, fn)
	if errors.Is(err, domain.ErrConflict) {
		err = s.tx.Run(ctx, fn)
	}
	return err
}
