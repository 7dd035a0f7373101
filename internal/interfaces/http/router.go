package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sgp-sistemas/sgp-api/internal/application/auth"
	appdocument "github.com/sgp-sistemas/sgp-api/internal/application/document"
	appprocess "github.com/sgp-sistemas/sgp-api/internal/application/process"
	"github.com/sgp-sistemas/sgp-api/internal/application/tracking"
	"github.com/sgp-sistemas/sgp-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ClientUC   *usecase.ClientUseCase
	ProcessUC  *appprocess.UseCase
	DocumentUC *appdocument.UseCase
	TrackingUC *tracking.UseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Acompanhamento externo (público: modo token e visão pública)
	trackingHandler := NewTrackingHandler(deps.TrackingUC)
	api.Post("/processes/track", trackingHandler.Track)
	api.Get("/processes/:id/public", trackingHandler.Public)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Processos (protegido)
	processes := protected.Group("/processes")
	processHandler := NewProcessHandler(deps.ProcessUC, deps.DocumentUC)
	processes.Post("/", processHandler.Create)
	processes.Get("/", processHandler.List)
	processes.Post("/upload", processHandler.Upload)
	processes.Get("/:id", processHandler.Get)
	processes.Put("/:id", processHandler.Update)
	processes.Post("/:id/status", processHandler.UpdateStatus)
	processes.Get("/:id/documents/:documentId", processHandler.Download)
	processes.Get("/:id/report", processHandler.Report)
}
