package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtraccionPorClaveConSufijo(t *testing.T) {
	payload := map[string]any{
		"bedding_summary": map[string]any{"Bett": float64(12), "Decke": float64(5)},
	}
	assert.Equal(t, map[string]int{"Bett": 12, "Decke": 5}, ExtractSummary(payload))
}

func TestExtraccionPlanaSinClaveDeEnvoltura(t *testing.T) {
	payload := map[string]any{"Bett": float64(12), "Decke": float64(5)}
	assert.Equal(t, map[string]int{"Bett": 12, "Decke": 5}, ExtractSummary(payload))
}

func TestLaClaveConSufijoGanaSobreLasClavesLegadas(t *testing.T) {
	// Ambas estrategias aplican; debe ganar la primera de la lista.
	payload := map[string]any{
		"bedding_summary": map[string]any{"Bett": float64(3)},
		"summary":         map[string]any{"Kissen": float64(9)},
	}
	assert.Equal(t, map[string]int{"Bett": 3}, ExtractSummary(payload))
}

func TestVariasClavesConSufijoSeEligenEnOrdenAlfabetico(t *testing.T) {
	payload := map[string]any{
		"z_summary": map[string]any{"Z": float64(1)},
		"a_summary": map[string]any{"A": float64(2)},
	}
	assert.Equal(t, map[string]int{"A": 2}, ExtractSummary(payload))
}

func TestClavesDeEnvolturaLegadas(t *testing.T) {
	payload := map[string]any{
		"status": "ok",
		"items":  map[string]any{"Seife": float64(7)},
	}
	assert.Equal(t, map[string]int{"Seife": 7}, ExtractSummary(payload))
}

func TestPrecedenciaEntreClavesLegadas(t *testing.T) {
	payload := map[string]any{
		"data":    map[string]any{"B": float64(2)},
		"summary": map[string]any{"A": float64(1)},
		"extra":   "x",
	}
	// summary va antes que data en la lista de claves legadas.
	assert.Equal(t, map[string]int{"A": 1}, ExtractSummary(payload))
}

func TestPayloadNoNumericoCaeALasClavesLegadas(t *testing.T) {
	payload := map[string]any{
		"status":  "ok",
		"summary": map[string]any{"Bett": float64(4)},
	}
	assert.Equal(t, map[string]int{"Bett": 4}, ExtractSummary(payload))
}

func TestSinMatchDevuelveMapaVacioNoNil(t *testing.T) {
	got := ExtractSummary(map[string]any{"status": "ok"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ExtractSummary(map[string]any{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestValoresNumericosDeDistintosTipos(t *testing.T) {
	payload := map[string]any{"a": 1, "b": int64(2), "c": float64(3)}
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, ExtractSummary(payload))
}
