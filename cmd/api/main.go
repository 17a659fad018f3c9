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

	"github.com/jhoicas/almox-api/internal/application/auth"
	"github.com/jhoicas/almox-api/internal/application/inventory"
	"github.com/jhoicas/almox-api/internal/application/report"
	"github.com/jhoicas/almox-api/internal/infrastructure/bolt"
	httpRouter "github.com/jhoicas/almox-api/internal/interfaces/http"
	"github.com/jhoicas/almox-api/internal/store"
	"github.com/jhoicas/almox-api/pkg/config"
	"github.com/jhoicas/almox-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data", cfg.Store.Path).
		Msg("iniciando aplicación")

	persister, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia local")
	}
	defer persister.Close()

	st, err := store.Open(persister)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar documento")
	}

	authUC := auth.New(st, persister, log)
	inventoryUC := inventory.New(st, authUC, log)
	reportUC := report.New(st)

	// Restaura la sesión del último usuario logueado, si sigue existiendo.
	if session := authUC.Resume(); session != nil {
		log.Info().Str("user", session.Name).Msg("auto-login")
	}

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
		Title:    "Almox API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		ReportUC:    reportUC,
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
