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

	"github.com/tu-usuario/stock-movil/internal/application/inventory"
	"github.com/tu-usuario/stock-movil/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-movil/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/stock-movil/internal/interfaces/http"
	"github.com/tu-usuario/stock-movil/pkg/config"
	"github.com/tu-usuario/stock-movil/pkg/logger"
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
		Msg("iniciando aplicación")

	st, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacenamiento local")
	}
	defer st.Close()

	// Hidratar el inventario desde el documento persistido (si existe).
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	initial, err := st.Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar inventario persistido")
	}
	if initial == nil {
		log.Info().Msg("sin inventario previo, arrancando vacío")
	}

	store := inventory.NewStore(initial)

	autosaver := storage.NewAutosaver(store, st, log)
	autosaver.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New hace panic si el archivo no existe, así que la UI solo se
	// monta cuando el spec está presente; la API funciona igual sin ella.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "Stock Móvil API",
		}))
	} else {
		log.Warn().Str("path", swaggerSpec).Msg("swagger.json no encontrado; UI de documentación deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      store,
		InvoicePDF: pdf.NewGenerator(cfg.App.Name),
		Log:        log,
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

	// Último flush síncrono para no perder mutaciones recientes.
	if err := autosaver.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("flush final del inventario")
	}

	log.Info().Msg("aplicación detenida")
}
