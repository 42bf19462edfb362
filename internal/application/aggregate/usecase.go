package aggregate

import (
	"context"
	"fmt"
	"sort"

	"github.com/aoz-zh/supply-api/internal/application/dto"
	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

// SummaryCache puerto del caché last-known-good de resúmenes por categoría.
// GetSummary devuelve (nil, nil) en miss.
type SummaryCache interface {
	GetSummary(ctx context.Context, category string) (map[string]int, error)
	SetSummary(ctx context.Context, category string, summary map[string]int) error
}

// SummarySource puerto de una fuente externa de resúmenes (backend legado).
type SummarySource interface {
	CategorySummary(ctx context.Context, category string) (map[string]int, error)
}

// UseCase deriva las vistas agregadas del ledger: resumen por categoría,
// detalle por artículo y desglose por ubicación. Cada llamada lee un snapshot
// consistente del ledger (los adaptadores garantizan que ningún registro se
// observa a medio escribir).
type UseCase struct {
	ledger repository.LedgerRepository
	items  repository.ItemRepository
	res    *resolver.Resolver

	// cache y legacy son opcionales (nil = deshabilitado). Cuando el ledger
	// no responde, el resumen se sirve del caché o del backend legado y la
	// respuesta se marca explícitamente como degradada.
	cache  SummaryCache
	legacy SummarySource
}

// NewUseCase construye el agregador. cache y legacy pueden ser nil.
func NewUseCase(
	ledger repository.LedgerRepository,
	items repository.ItemRepository,
	res *resolver.Resolver,
	cache SummaryCache,
	legacy SummarySource,
) *UseCase {
	return &UseCase{ledger: ledger, items: items, res: res, cache: cache, legacy: legacy}
}

// CategorySummary devuelve el total (overall) por artículo de la categoría,
// sumado sobre todas las ubicaciones. Todo artículo de la categoría aparece,
// también con total 0 (stock en ninguna parte es un estado válido y visible,
// distinto de "artículo desconocido"). El booleano indica respuesta degradada
// (servida desde caché o backend legado).
func (uc *UseCase) CategorySummary(ctx context.Context, category string) (map[string]int, bool, error) {
	canonical, err := uc.res.ResolveCategory(category)
	if err != nil {
		return nil, false, err
	}

	items, err := uc.items.ListByCategory(canonical)
	if err != nil {
		return uc.degradedSummary(ctx, canonical, err)
	}
	records, err := uc.ledger.ListByCategory(canonical)
	if err != nil {
		return uc.degradedSummary(ctx, canonical, err)
	}

	summary := make(map[string]int, len(items))
	for _, it := range items {
		summary[it.Name] = 0
	}
	for _, rec := range records {
		summary[rec.ItemName] += rec.Overall()
	}

	if uc.cache != nil {
		// Best effort: un caché caído no debe afectar la respuesta.
		_ = uc.cache.SetSummary(ctx, canonical, summary)
	}
	return summary, false, nil
}

// degradedSummary sirve el último resumen conocido (caché, luego backend
// legado) cuando el ledger no responde. Sin copia disponible, la falla se
// reporta como reintentable.
func (uc *UseCase) degradedSummary(ctx context.Context, canonical string, cause error) (map[string]int, bool, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetSummary(ctx, canonical); err == nil && cached != nil {
			return cached, true, nil
		}
	}
	if uc.legacy != nil {
		if remote, err := uc.legacy.CategorySummary(ctx, canonical); err == nil {
			return remote, true, nil
		}
	}
	return nil, false, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, cause)
}

// ItemDetail devuelve los totales del artículo y el desglose por ubicación.
// Los tres números de cabecera son sumas de los números por ubicación.
// per_location incluye solo ubicaciones con registro (política documentada:
// sin zero-fill, consistente con CategorySummary que sí lista artículos a 0).
func (uc *UseCase) ItemDetail(ctx context.Context, category, itemName string) (*dto.ItemDetailResponse, error) {
	canonical, err := uc.res.ResolveCategory(category)
	if err != nil {
		return nil, err
	}

	item, err := uc.items.Get(canonical, itemName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	records, err := uc.ledger.ListByItem(canonical, itemName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	detail := &dto.ItemDetailResponse{
		Name:        item.Name,
		Description: item.Description,
		PerLocation: make(map[string]dto.LocationStock, len(records)),
	}
	for _, rec := range records {
		detail.Overall += rec.Overall()
		detail.Available += rec.Available
		detail.Reserved += rec.Reserved
		detail.PerLocation[rec.LocationCode] = dto.LocationStock{
			Overall:   rec.Overall(),
			Available: rec.Available,
			Reserved:  rec.Reserved,
		}
	}
	return detail, nil
}

// LocationDetail devuelve todos los registros de la ubicación agrupados por
// categoría. Acepta nombre mostrado, alias legado o código loc_*.
func (uc *UseCase) LocationDetail(ctx context.Context, location string) (*dto.LocationDetailResponse, error) {
	code, err := uc.res.ResolveLocation(location)
	if err != nil {
		return nil, err
	}

	records, err := uc.ledger.ListByLocation(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	categories := make(map[string][]dto.StockEntry)
	for _, rec := range records {
		categories[rec.Category] = append(categories[rec.Category], dto.StockEntry{
			Name:      rec.ItemName,
			Available: rec.Available,
			Reserved:  rec.Reserved,
			Total:     rec.Overall(),
		})
	}
	// Orden estable por nombre de artículo dentro de cada categoría.
	for _, entries := range categories {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}

	return &dto.LocationDetailResponse{Location: code, Categories: categories}, nil
}
