package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/levantapedidos/levantapedidos-api/internal/application/usecase"
	"github.com/levantapedidos/levantapedidos-api/internal/infrastructure/dominiodz"
	httpRouter "github.com/levantapedidos/levantapedidos-api/internal/interfaces/http"
	"github.com/levantapedidos/levantapedidos-api/pkg/config"
	"github.com/levantapedidos/levantapedidos-api/pkg/logger"
)

const apiVersion = "1.0.0"

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

	if cfg.Dominio.Token == "" {
		// No es fatal al arrancar: los endpoints de datos responden 500
		// descriptivo hasta que se configure DOMINIO_TOKEN.
		log.Warn().Msg("DOMINIO_TOKEN no configurado, los endpoints de datos devolverán error")
	}

	dominioClient := dominiodz.NewClient(dominiodz.Config{
		Endpoint: cfg.Dominio.Endpoint,
		Empresa:  cfg.Dominio.Empresa,
		Usuario:  cfg.Dominio.Usuario,
		GUser:    cfg.Dominio.GUser,
		Token:    cfg.Dominio.Token,
		Timeout:  cfg.Dominio.Timeout,
	}, log)

	summaryUC := usecase.NewSalesSummaryUseCase(dominioClient, log)
	suggestedUC := usecase.NewSuggestedOrderUseCase(summaryUC)
	clientUC := usecase.NewClientUseCase(dominioClient)
	searchUC := usecase.NewProductSearchUseCase(dominioClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Levantapedidos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesSummary:   summaryUC,
		SuggestedOrder: suggestedUC,
		Client:         clientUC,
		ProductSearch:  searchUC,
		Version:        apiVersion,
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
