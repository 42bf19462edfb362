package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/aoz-zh/supply-api/internal/application/aggregate"
	"github.com/aoz-zh/supply-api/internal/application/inventory"
	"github.com/aoz-zh/supply-api/internal/application/usecase"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
	"github.com/aoz-zh/supply-api/internal/domain/resolver"
	"github.com/aoz-zh/supply-api/internal/infrastructure/events"
	"github.com/aoz-zh/supply-api/internal/infrastructure/memory"
	"github.com/aoz-zh/supply-api/internal/infrastructure/postgres"
	"github.com/aoz-zh/supply-api/internal/infrastructure/rediscache"
	"github.com/aoz-zh/supply-api/internal/infrastructure/upstream"
	httpRouter "github.com/aoz-zh/supply-api/internal/interfaces/http"
	"github.com/aoz-zh/supply-api/internal/seed"
	"github.com/aoz-zh/supply-api/pkg/config"
	"github.com/aoz-zh/supply-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		ledgerRepo   repository.LedgerRepository
		locationRepo repository.LocationRepository
		categoryRepo repository.CategoryRepository
		itemRepo     repository.ItemRepository
		userRepo     repository.UserRepository
		txRunner     inventory.TxRunner
	)

	switch cfg.DB.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		ledgerRepo = postgres.NewLedgerRepository(pool)
		locationRepo = postgres.NewLocationRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		itemRepo = postgres.NewItemRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	case "memory":
		store := memory.NewStore()
		ledgerRepo = memory.NewLedgerRepository(store)
		locationRepo = memory.NewLocationRepository(store)
		categoryRepo = memory.NewCategoryRepository(store)
		itemRepo = memory.NewItemRepository(store)
		userRepo = memory.NewUserRepository(store)
		txRunner = memory.NewTxRunner(store)

		// El almacén en memoria arranca vacío: se siembra con el dataset de
		// ejemplo para que la interfaz tenga datos desde el primer arranque.
		if err := seed.Apply(seed.Repos{
			Locations:  locationRepo,
			Categories: categoryRepo,
			Items:      itemRepo,
			Ledger:     ledgerRepo,
			Users:      userRepo,
		}); err != nil {
			log.Fatal().Err(err).Msg("siembra del almacén en memoria")
		}
		log.Info().Msg("almacén en memoria sembrado con el dataset de ejemplo")
	}

	res := resolver.New(resolver.DefaultTables())

	var summaryCache aggregate.SummaryCache
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no responde, caché de resúmenes deshabilitado")
		} else {
			summaryCache = rediscache.NewSummaryCache(client, cfg.Redis.TTL)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de resúmenes habilitado")
		}
	}

	var legacySource aggregate.SummarySource
	if cfg.Upstream.BaseURL != "" {
		legacySource = upstream.NewLegacyClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
		log.Info().Str("base_url", cfg.Upstream.BaseURL).Msg("backend legado configurado")
	}

	aggregateUC := aggregate.NewUseCase(ledgerRepo, itemRepo, res, summaryCache, legacySource)
	orderEvents := events.NewLogPublisher(log.Component("orders"))
	stockSvc := inventory.NewStockService(txRunner, res, itemRepo)
	orderSvc := inventory.NewOrderService(txRunner, res, itemRepo, orderEvents)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AOZ Supply API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationUC: locationUC,
		CategoryUC: categoryUC,
		UserUC:     userUC,
		Aggregate:  aggregateUC,
		Stock:      stockSvc,
		Orders:     orderSvc,
		Resolver:   res,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
