package seed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

// LegacyImporter importa inventario del backend legado. Por artículo conocido
// del resumen remoto crea el artículo si falta y fija el total importado como
// stock disponible en la ubicación destino.
type LegacyImporter struct {
	source   aggregate.SummarySource
	items    repository.ItemRepository
	ledger   repository.LedgerRepository
	destCode string
}

// NewLegacyImporter construye el importador.
func NewLegacyImporter(
	source aggregate.SummarySource,
	items repository.ItemRepository,
	ledger repository.LedgerRepository,
	destCode string,
) *LegacyImporter {
	return &LegacyImporter{source: source, items: items, ledger: ledger, destCode: destCode}
}

// ImportCategory importa el resumen de una categoría y devuelve cuántos
// artículos se escribieron.
func (imp *LegacyImporter) ImportCategory(ctx context.Context, category string) (int, error) {
	summary, err := imp.source.CategorySummary(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("resumen legado de %s: %w", category, err)
	}

	// Orden estable para que los reintentos produzcan la misma secuencia.
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now()
	for _, name := range names {
		if err := imp.items.Upsert(&entity.Item{Category: category, Name: name}); err != nil {
			return 0, fmt.Errorf("importar artículo %s/%s: %w", category, name, err)
		}
		rec := &entity.StockRecord{
			Category:     category,
			ItemName:     name,
			LocationCode: imp.destCode,
			Available:    summary[name],
			UpdatedAt:    now,
		}
		if err := imp.ledger.Upsert(rec); err != nil {
			return 0, fmt.Errorf("importar stock %s/%s: %w", category, name, err)
		}
	}
	return len(names), nil
}
