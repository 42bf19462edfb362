// Package upstream habla con el backend legado de inventario. Sus respuestas
// llegan en formatos heterogéneos según la versión desplegada, así que el
// payload crudo pasa por la extracción de resúmenes en vez de decodificarse
// contra un esquema fijo.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
)

var _ aggregate.SummarySource = (*LegacyClient)(nil)

// LegacyClient cliente HTTP del backend legado.
type LegacyClient struct {
	baseURL string
	http    *http.Client
}

// NewLegacyClient construye el cliente. timeout 0 usa 10s.
func NewLegacyClient(baseURL string, timeout time.Duration) *LegacyClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LegacyClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CategorySummary pide los artículos de una categoría y extrae el resumen
// nombre -> total del payload, cualquiera sea su forma.
func (c *LegacyClient) CategorySummary(ctx context.Context, category string) (map[string]int, error) {
	payload, err := c.fetch(ctx, "/items/"+url.PathEscape(category))
	if err != nil {
		return nil, err
	}
	return aggregate.ExtractSummary(payload), nil
}

func (c *LegacyClient) fetch(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build legacy request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("legacy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("legacy backend: status %d", resp.StatusCode)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode legacy payload: %w", err)
	}
	return payload, nil
}
