package server

import (
	"log/slog"
	"net/http"

	elementHandlers "alchemist-server/internal/element/handlers"
	"alchemist-server/internal/generator"
	generatorHandlers "alchemist-server/internal/generator/handlers"
	serverHandlers "alchemist-server/internal/server/handlers"
)

type Routes struct {
	generatorService *generator.Service
	logger           *slog.Logger
}

func NewRoutes(generatorService *generator.Service, logger *slog.Logger) *Routes {
	return &Routes{
		generatorService: generatorService,
		logger:           logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.generatorService.ArtifactPath())
	elementsHandler := elementHandlers.NewElementsHandler()
	worldsHandler := generatorHandlers.NewWorldsHandler(r.generatorService)

	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/elements", elementsHandler)
	mux.HandleFunc("/api/worlds/generate", worldsHandler.Generate)
	mux.HandleFunc("/api/worlds/artifact", worldsHandler.Artifact)
	mux.HandleFunc("/api/worlds/examples", worldsHandler.Examples)

	logger.Info("Routes configured successfully",
		"endpoints", []string{
			"/api/server/health",
			"/api/elements",
			"/api/worlds/generate",
			"/api/worlds/artifact",
			"/api/worlds/examples",
		},
	)

	return mux
}
