package handlers

import (
	"log/slog"
	"net/http"

	"alchemist-server/internal/element"
	"alchemist-server/internal/shared/errors"
	"alchemist-server/internal/shared/response"
)

// ElementsHandler exposes the elemental prime table, the legend the
// front-end shows next to a generated slice.
type ElementsHandler struct{}

func NewElementsHandler() *ElementsHandler {
	return &ElementsHandler{}
}

func (h *ElementsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "elements")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, element.Table)
}
