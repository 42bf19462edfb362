// Siembra la base PostgreSQL con el dataset de ejemplo de los depósitos AOZ.
// Con --from-legacy importa además los totales actuales del backend legado
// (UPSTREAM_BASE_URL): cada total importado entra como stock disponible en el
// depósito central.
package main

import (
	"context"
	"flag"

	"github.com/aoz-zh/supply-api/internal/infrastructure/postgres"
	"github.com/aoz-zh/supply-api/internal/infrastructure/upstream"
	"github.com/aoz-zh/supply-api/internal/seed"
	"github.com/aoz-zh/supply-api/pkg/config"
	"github.com/aoz-zh/supply-api/pkg/logger"
)

func main() {
	fromLegacy := flag.Bool("from-legacy", false, "importar totales del backend legado")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.DB.Driver != "postgres" {
		log.Fatal().Msg("la siembra requiere DB_DRIVER=postgres (memory se siembra solo al arrancar)")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ledgerRepo := postgres.NewLedgerRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	repos := seed.Repos{
		Locations:  postgres.NewLocationRepository(pool),
		Categories: postgres.NewCategoryRepository(pool),
		Items:      itemRepo,
		Ledger:     ledgerRepo,
		Users:      postgres.NewUserRepository(pool),
	}
	if err := seed.Apply(repos); err != nil {
		log.Fatal().Err(err).Msg("siembra del dataset de ejemplo")
	}
	log.Info().Msg("dataset de ejemplo sembrado")

	if !*fromLegacy {
		return
	}
	if cfg.Upstream.BaseURL == "" {
		log.Fatal().Msg("--from-legacy requiere UPSTREAM_BASE_URL")
	}

	client := upstream.NewLegacyClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	importer := seed.NewLegacyImporter(client, itemRepo, ledgerRepo, importDestination)
	for _, cat := range seed.Categories() {
		n, err := importer.ImportCategory(ctx, cat.Name)
		if err != nil {
			log.Warn().Err(err).Str("category", cat.Name).Msg("importación legada fallida, categoría omitida")
			continue
		}
		log.Info().Str("category", cat.Name).Int("items", n).Msg("categoría importada del backend legado")
	}
}

// Los totales importados entran como disponible en el depósito central.
const importDestination = "loc_centrum"
