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

	"github.com/jdrios/almacenes-api/internal/application/inventory"
	"github.com/jdrios/almacenes-api/internal/application/usecase"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
	"github.com/jdrios/almacenes-api/internal/infrastructure/memory"
	"github.com/jdrios/almacenes-api/internal/infrastructure/postgres"
	httpAPI "github.com/jdrios/almacenes-api/internal/interfaces/http"
	"github.com/jdrios/almacenes-api/pkg/config"
	"github.com/jdrios/almacenes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner        inventory.TxRunner
		movementRepo    repository.MovementRepository
		stockRepo       repository.StockRepository
		productRepo     repository.ProductRepository
		requirementRepo repository.RequirementRepository
	)

	switch cfg.App.StoreDriver {
	case "memory":
		// Almacén en memoria: datos efímeros, útil para demos y desarrollo
		// sin PostgreSQL.
		store := memory.NewStore()
		txRunner = store
		movementRepo = store.Movements()
		stockRepo = store.Stocks()
		productRepo = store.Products()
		requirementRepo = store.Requirements()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		txRunner = postgres.NewTxRunner(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		stockRepo = postgres.NewStockRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		requirementRepo = postgres.NewRequirementRepository(pool)
	}

	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, stockRepo, productRepo, log)
	requirementUC := usecase.NewRequirementUseCase(requirementRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacenes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpAPI.RegisterRoutes(app, httpAPI.RouterDeps{
		JWTSecret:    cfg.JWT.Secret,
		Movements:    httpAPI.NewMovementHandler(movementUC),
		Stock:        httpAPI.NewStockHandler(movementUC),
		Requirements: httpAPI.NewRequirementHandler(requirementUC),
		Products:     httpAPI.NewProductHandler(productUC),
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
