package main

import (
	"log"
	"log/slog"
	"net/http"

	"alchemist-server/internal/generator"
	"alchemist-server/internal/middleware"
	"alchemist-server/internal/server"
	"alchemist-server/internal/shared/config"
	"alchemist-server/internal/shared/logger"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Init()

	cfg := config.GlobalConfig
	mainLogger := slog.With("component", "main")

	generatorService := generator.NewService(cfg.World, slog.Default())
	mainLogger.Debug("Services initialized")

	routes := server.NewRoutes(generatorService, slog.Default())
	mux := routes.Setup()

	corsMiddleware := middleware.NewCORS()
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	handler := middleware.RequestID(mux)
	handler = rateLimiter.Middleware(handler)
	handler = corsMiddleware.Middleware(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	mainLogger.Info("World Alchemist server starting",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
		"default_seed", cfg.World.DefaultSeed,
		"artifact_path", cfg.World.ArtifactPath,
	)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
