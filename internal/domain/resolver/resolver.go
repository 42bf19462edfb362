package resolver

import (
	"strings"

	"github.com/aoz-zh/supply-api/internal/domain"
)

// Tables son las tablas de resolución de nombres. Se cargan una sola vez al
// arrancar y se pasan explícitamente al Resolver (nada de estado global
// mutable); re-sembrar alias es una recarga de configuración, no un cambio de
// código.
//
// Los matches son sensibles a mayúsculas y acentos (comparación exacta de
// strings, sin fuzzy matching). El único fallback es la transformación
// determinista a minúsculas antes de fallar.
type Tables struct {
	// LocationAliases: nombre mostrado (actual o legado) -> nombre canónico.
	LocationAliases map[string]string
	// LocationCodes: nombre canónico -> código estable (loc_*).
	LocationCodes map[string]string
	// CategoryAliases: nombre mostrado -> categoría canónica.
	CategoryAliases map[string]string
	// Categories: conjunto de categorías canónicas conocidas.
	Categories map[string]bool
}

// Resolver resuelve nombres libres o legados al identificador canónico.
// Es inmutable después de construirse y seguro para uso concurrente.
type Resolver struct {
	locationAliases map[string]string
	locationCodes   map[string]string
	knownCodes      map[string]bool
	categoryAliases map[string]string
	categories      map[string]bool
}

// New construye un Resolver copiando las tablas (el caller puede descartar
// o reutilizar las suyas sin afectar al resolver).
func New(t Tables) *Resolver {
	r := &Resolver{
		locationAliases: make(map[string]string, len(t.LocationAliases)),
		locationCodes:   make(map[string]string, len(t.LocationCodes)),
		knownCodes:      make(map[string]bool, len(t.LocationCodes)),
		categoryAliases: make(map[string]string, len(t.CategoryAliases)),
		categories:      make(map[string]bool, len(t.Categories)),
	}
	for k, v := range t.LocationAliases {
		r.locationAliases[k] = v
	}
	for k, v := range t.LocationCodes {
		r.locationCodes[k] = v
		r.knownCodes[v] = true
	}
	for k, v := range t.CategoryAliases {
		r.categoryAliases[k] = v
	}
	for k := range t.Categories {
		r.categories[k] = true
	}
	return r
}

// ResolveLocation resuelve un nombre de ubicación (mostrado, legado o ya
// canónico) a su código estable. Lookup en dos etapas: alias -> nombre
// canónico -> código. Idempotente: un código conocido se devuelve tal cual.
// Devuelve domain.ErrNotFound si ninguna etapa ni el fallback a minúsculas
// produce un código conocido; el caller debe tratarlo como "sin datos".
func (r *Resolver) ResolveLocation(input string) (string, error) {
	if r.knownCodes[input] {
		return input, nil
	}

	canonical := input
	if alias, ok := r.locationAliases[input]; ok {
		canonical = alias
	}
	if code, ok := r.locationCodes[canonical]; ok {
		return code, nil
	}

	// Fallback determinista: minúsculas (cubre p.ej. "LOC_CENTRUM").
	lowered := strings.ToLower(input)
	if r.knownCodes[lowered] {
		return lowered, nil
	}
	return "", domain.ErrNotFound
}

// ResolveCategory resuelve un nombre de categoría al nombre canónico.
// Idempotente: una categoría canónica se devuelve tal cual. El fallback
// reproduce el comportamiento observado de derivar el endpoint de una
// categoría desconocida pasándola a minúsculas.
func (r *Resolver) ResolveCategory(input string) (string, error) {
	if r.categories[input] {
		return input, nil
	}
	if canonical, ok := r.categoryAliases[input]; ok {
		return canonical, nil
	}
	lowered := strings.ToLower(input)
	if r.categories[lowered] {
		return lowered, nil
	}
	return "", domain.ErrNotFound
}

// KnownLocationCodes devuelve los códigos conocidos (para validaciones y seeds).
func (r *Resolver) KnownLocationCodes() []string {
	codes := make([]string, 0, len(r.knownCodes))
	for c := range r.knownCodes {
		codes = append(codes, c)
	}
	return codes
}
