package aggregate

import (
	"encoding/json"
	"sort"
	"strings"
)

// Extracción de resúmenes desde payloads de forma ambigua: el backend legado
// devuelve a veces {"bedding_summary": {...}}, a veces el mapa nombre→cantidad
// directamente, y versiones anteriores usaban otras claves de envoltura.
//
// En lugar del fallthrough implícito del cliente original, la decisión es una
// lista ordenada y fija de estrategias con nombre; gana la primera que
// produce un resultado. El orden está testeado, no es incidental.

const summaryKeySuffix = "_summary"

// legacyEnvelopeKeys claves de envoltura conocidas de versiones anteriores,
// en orden de precedencia.
var legacyEnvelopeKeys = []string{"summary", "items", "data"}

type extractStrategy struct {
	name    string
	extract func(payload map[string]any) (map[string]int, bool)
}

// extractStrategies orden fijo: (1) clave con sufijo _summary cuyo valor sea
// un mapa string→número, (2) payload plano todo numérico, (3) claves de
// envoltura legadas. Si ninguna aplica, el resumen es vacío, no un error.
var extractStrategies = []extractStrategy{
	{name: "suffix_key", extract: bySuffixKey},
	{name: "flat_numeric", extract: byFlatNumeric},
	{name: "legacy_keys", extract: byLegacyKeys},
}

// ExtractSummary normaliza un payload ambiguo a un mapa nombre→cantidad.
// Nunca devuelve nil: sin match el resultado es un mapa vacío.
func ExtractSummary(payload map[string]any) map[string]int {
	for _, s := range extractStrategies {
		if summary, ok := s.extract(payload); ok {
			return summary
		}
	}
	return map[string]int{}
}

// bySuffixKey busca una clave que termine en _summary cuyo valor sea un mapa
// string→número. Las claves se recorren ordenadas para que el resultado sea
// determinista aunque haya más de una candidata.
func bySuffixKey(payload map[string]any) (map[string]int, bool) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !strings.HasSuffix(k, summaryKeySuffix) {
			continue
		}
		if summary, ok := asCountMap(payload[k]); ok {
			return summary, true
		}
	}
	return nil, false
}

// byFlatNumeric trata el payload entero como resumen si todos sus valores
// de primer nivel son numéricos.
func byFlatNumeric(payload map[string]any) (map[string]int, bool) {
	if len(payload) == 0 {
		return nil, false
	}
	summary := make(map[string]int, len(payload))
	for k, v := range payload {
		n, ok := asCount(v)
		if !ok {
			return nil, false
		}
		summary[k] = n
	}
	return summary, true
}

// byLegacyKeys prueba las claves de envoltura históricas en orden fijo.
func byLegacyKeys(payload map[string]any) (map[string]int, bool) {
	for _, k := range legacyEnvelopeKeys {
		if summary, ok := asCountMap(payload[k]); ok {
			return summary, true
		}
	}
	return nil, false
}

// asCountMap convierte un valor a mapa string→int si todos los valores son numéricos.
func asCountMap(v any) (map[string]int, bool) {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	summary := make(map[string]int, len(m))
	for k, raw := range m {
		n, ok := asCount(raw)
		if !ok {
			return nil, false
		}
		summary[k] = n
	}
	return summary, true
}

// asCount acepta los tipos numéricos que produce encoding/json.
func asCount(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}
