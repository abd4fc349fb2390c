package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"alchemist-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Artifacts string `json:"artifacts"`
}

// HealthHandler reports liveness plus whether the artifact directory is
// writable, the only external resource this service depends on.
type HealthHandler struct {
	artifactPath string
}

func NewHealthHandler(artifactPath string) *HealthHandler {
	return &HealthHandler{artifactPath: artifactPath}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	artifactStatus := "writable"
	dir := filepath.Dir(h.artifactPath)
	probe, err := os.CreateTemp(dir, ".healthcheck")
	if err != nil {
		artifactStatus = "unwritable"
		logger.Warn("Artifact directory probe failed", "dir", dir, "error", err)
	} else {
		probe.Close()
		os.Remove(probe.Name())
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Artifacts: artifactStatus,
	}

	response.Success(w, http.StatusOK, resp)
}
