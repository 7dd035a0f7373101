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

	"github.com/sgp-sistemas/sgp-api/internal/application/auth"
	appdocument "github.com/sgp-sistemas/sgp-api/internal/application/document"
	appprocess "github.com/sgp-sistemas/sgp-api/internal/application/process"
	"github.com/sgp-sistemas/sgp-api/internal/application/tracking"
	"github.com/sgp-sistemas/sgp-api/internal/application/usecase"
	"github.com/sgp-sistemas/sgp-api/internal/infrastructure/mail"
	infrapdf "github.com/sgp-sistemas/sgp-api/internal/infrastructure/pdf"
	"github.com/sgp-sistemas/sgp-api/internal/infrastructure/postgres"
	"github.com/sgp-sistemas/sgp-api/internal/infrastructure/storage"
	httpRouter "github.com/sgp-sistemas/sgp-api/internal/interfaces/http"
	"github.com/sgp-sistemas/sgp-api/pkg/config"
	"github.com/sgp-sistemas/sgp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	processRepo := postgres.NewProcessRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStore := storage.NewDiskStore(cfg.Storage.Dir)
	reportGen := infrapdf.NewMarotoReportGenerator()

	// Mailer só entra no fluxo quando o SMTP está configurado; sem ele a
	// criação de processo segue normal e as credenciais saem só na resposta.
	var mailer appprocess.CredentialsMailer
	if cfg.SMTP.Enabled() {
		mailer = mail.NewMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP não configurado, credenciais não serão enviadas por e-mail")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(txRunner, clientRepo, docRepo, fileStore)
	processUC := appprocess.NewUseCase(txRunner, processRepo, clientRepo, historyRepo, docRepo, mailer, reportGen)
	documentUC := appdocument.NewUseCase(txRunner, processRepo, docRepo, fileStore)
	trackingUC := tracking.NewUseCase(processRepo, historyRepo, docRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 * 1024 * 1024, // uploads de documentos
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SGP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   clientUC,
		ProcessUC:  processUC,
		DocumentUC: documentUC,
		TrackingUC: trackingUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
