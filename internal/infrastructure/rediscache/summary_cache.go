// Package rediscache guarda en Redis el último resumen bueno conocido por
// categoría. No es un caché de lectura caliente: solo se consulta cuando el
// almacén primario no responde, para degradar con datos en vez de con un 503
// vacío.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
)

var _ aggregate.SummaryCache = (*SummaryCache)(nil)

// SummaryCache adaptador Redis del puerto aggregate.SummaryCache.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache construye el adaptador. ttl 0 significa sin expiración.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

func summaryKey(category string) string {
	return "summary:" + category
}

// GetSummary devuelve el último resumen guardado; (nil, nil) en miss.
func (c *SummaryCache) GetSummary(ctx context.Context, category string) (map[string]int, error) {
	raw, err := c.client.Get(ctx, summaryKey(category)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get summary: %w", err)
	}
	var summary map[string]int
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("decode cached summary: %w", err)
	}
	return summary, nil
}

// SetSummary reemplaza el resumen guardado de la categoría.
func (c *SummaryCache) SetSummary(ctx context.Context, category string, summary map[string]int) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey(category), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set summary: %w", err)
	}
	return nil
}
