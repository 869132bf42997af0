package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/fluxbill-api/internal/application/assistant"
	"github.com/jhoicas/fluxbill-api/internal/application/billing"
	infraai "github.com/jhoicas/fluxbill-api/internal/infrastructure/ai"
	"github.com/jhoicas/fluxbill-api/internal/infrastructure/postgres"
	infrastt "github.com/jhoicas/fluxbill-api/internal/infrastructure/stt"
	httpRouter "github.com/jhoicas/fluxbill-api/internal/interfaces/http"
	"github.com/jhoicas/fluxbill-api/pkg/config"
	"github.com/jhoicas/fluxbill-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Esquema al arranque: sin sistema de migraciones, idempotente.
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, txRunner)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	subscriptionUC := billing.NewSubscriptionUseCase(subscriptionRepo)
	seedUC := billing.NewSeedUseCase(invoiceRepo, customerRepo, subscriptionRepo)

	llmSvc := infraai.NewOpenRouterService(cfg.AI.OpenRouterAPIKey, cfg.AI.OpenRouterModel)
	sttSvc := infrastt.NewGroqWhisperService(cfg.STT.GroqAPIKey, cfg.STT.WhisperModel, log.Component("stt"))
	planner := assistant.NewPlanner(llmSvc, sttSvc)

	if cfg.AI.OpenRouterAPIKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY vacío: el asistente responderá error de configuración")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 90, // la llamada al LLM puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.Origins, ","),
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FluxBill API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":               true,
			"whisper_model":    cfg.STT.WhisperModel,
			"openrouter_model": cfg.AI.OpenRouterModel,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:      invoiceUC,
		CustomerUC:     customerUC,
		SubscriptionUC: subscriptionUC,
		SeedUC:         seedUC,
		Planner:        planner,
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
