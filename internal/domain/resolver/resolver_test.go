package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
)

func newResolver() *resolver.Resolver {
	return resolver.New(resolver.DefaultTables())
}

// Los tres formatos de entrada (nombre legado, nombre canónico, código)
// deben converger al mismo código estable.
func TestResolveLocation_AliasCanonicoYCodigoConvergen(t *testing.T) {
	r := newResolver()

	for _, input := range []string{"AOZ Central Warehouse", "Zentrales Warenhaus", "loc_centrum"} {
		code, err := r.ResolveLocation(input)
		require.NoError(t, err, "input %q debe resolver", input)
		assert.Equal(t, "loc_centrum", code, "input %q debe converger a loc_centrum", input)
	}
}

// Resolver un nombre ya canónico es un punto fijo: resolve(resolve(x)) = resolve(x).
func TestResolveLocation_PuntoFijo(t *testing.T) {
	r := newResolver()

	code, err := r.ResolveLocation("AOZ Hygiene Depot")
	require.NoError(t, err)

	again, err := r.ResolveLocation(code)
	require.NoError(t, err)
	assert.Equal(t, code, again, "resolver el resultado debe devolver el mismo código")
}

func TestResolveLocation_TodosLosLegados(t *testing.T) {
	r := newResolver()

	cases := map[string]string{
		"AOZ Central Warehouse":  "loc_centrum",
		"AOZ Food Hub":           "loc_west",
		"AOZ Bedding Center":     "loc_altstetten",
		"AOZ Hygiene Depot":      "loc_oerlikon",
		"AOZ Outlet Zürich West": "loc_zuerichwest",
	}
	for input, want := range cases {
		code, err := r.ResolveLocation(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, code)
	}
}

// El fallback a minúsculas aplica antes de fallar.
func TestResolveLocation_FallbackMinusculas(t *testing.T) {
	r := newResolver()

	code, err := r.ResolveLocation("LOC_CENTRUM")
	require.NoError(t, err)
	assert.Equal(t, "loc_centrum", code)
}

// Un nombre desconocido devuelve ErrNotFound, que el caller trata como
// "sin datos", nunca como error fatal.
func TestResolveLocation_DesconocidoRetornaNotFound(t *testing.T) {
	r := newResolver()

	_, err := r.ResolveLocation("Depósito Fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La comparación es exacta: sensible a mayúsculas y acentos, sin fuzzy match.
func TestResolveLocation_SensibleAAcentos(t *testing.T) {
	r := newResolver()

	// Sin diéresis no hay match de alias ni fallback válido.
	_, err := r.ResolveLocation("AOZ Outlet Zurich West")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveCategory_AliasYCanonica(t *testing.T) {
	r := newResolver()

	got, err := r.ResolveCategory("Bettwaren")
	require.NoError(t, err)
	assert.Equal(t, "bedding", got)

	// Idempotente: la canónica se devuelve tal cual.
	again, err := r.ResolveCategory(got)
	require.NoError(t, err)
	assert.Equal(t, "bedding", again)
}

// El fallback deriva la categoría pasando la entrada a minúsculas.
func TestResolveCategory_FallbackMinusculas(t *testing.T) {
	r := newResolver()

	got, err := r.ResolveCategory("BEDDING")
	require.NoError(t, err)
	assert.Equal(t, "bedding", got)
}

func TestResolveCategory_DesconocidaRetornaNotFound(t *testing.T) {
	r := newResolver()

	_, err := r.ResolveCategory("Elektronik")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveCategory_TodasLasMostradas(t *testing.T) {
	r := newResolver()

	cases := map[string]string{
		"Lebensmittel":           "food",
		"Hygiene":                "hygiene",
		"Kleidung":               "clothing",
		"Kinder & Familie":       "family",
		"Medizin & Erste Hilfe":  "medical",
		"Werkzeuge & Ausrüstung": "tools",
	}
	for input, want := range cases {
		got, err := r.ResolveCategory(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}
}
