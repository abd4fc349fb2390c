package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"

	"alchemist-server/internal/generator"
	appconfig "alchemist-server/internal/shared/config"
	"alchemist-server/internal/shared/errors"
	"alchemist-server/internal/shared/response"
	"alchemist-server/internal/world"
)

type WorldsHandler struct {
	service *generator.Service
}

func NewWorldsHandler(service *generator.Service) *WorldsHandler {
	return &WorldsHandler{service: service}
}

type GenerateRequest struct {
	Seed *int64 `json:"seed"`
}

type GenerateResponse struct {
	Snapshot    world.Snapshot `json:"snapshot"`
	Report      string         `json:"report"`
	ArtifactURL string         `json:"artifact_url"`
}

// Generate runs one generation for the requested seed, falling back to the
// configured default when the body omits one.
func (h *WorldsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_world")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	seed := appconfig.GlobalConfig.World.DefaultSeed

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}
	if req.Seed != nil {
		seed = *req.Seed
	}

	result, err := h.service.Generate(seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, GenerateResponse{
		Snapshot:    result.Snapshot,
		Report:      result.Report,
		ArtifactURL: "/api/worlds/artifact",
	})
}

// Artifact serves the most recently rendered slice image.
func (h *WorldsHandler) Artifact(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "world_artifact")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	path := h.service.ArtifactPath()
	if _, err := os.Stat(path); err != nil {
		response.Error(w, r, logger, errors.NotFoundf("no world has been generated yet"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

// Examples lists the known resonant seeds surfaced as presets.
func (h *WorldsHandler) Examples(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "world_examples")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, generator.Examples())
}
