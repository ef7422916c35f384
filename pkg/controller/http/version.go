package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildver/pkg/domain/interfaces"
	"github.com/m-mizutani/buildver/pkg/domain/model"
	"github.com/m-mizutani/buildver/pkg/domain/types"
)

// VersionHandler serves build version calculation requests
type VersionHandler struct {
	versionUC interfaces.VersionUseCase
}

// NewVersionHandler creates a new VersionHandler
func NewVersionHandler(versionUC interfaces.VersionUseCase) *VersionHandler {
	return &VersionHandler{
		versionUC: versionUC,
	}
}

// Handle computes a version for the posted build context
func (h *VersionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	var build model.BuildContext
	if err := json.NewDecoder(r.Body).Decode(&build); err != nil {
		logger.Error("Failed to decode build context", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	version, err := h.versionUC.Calculate(ctx, &build)
	if err != nil {
		logger.Error("Failed to calculate version", "error", err)
		writeError(ctx, w, err, statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"version": version,
	}); err != nil {
		logger.Error("Failed to encode version response", "error", err)
	}
}

// statusForError maps calculation failures to HTTP statuses: malformed build
// contexts are the caller's fault, everything else is an upstream lookup
// failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidVersion),
		errors.Is(err, types.ErrUnsupportedEvent),
		errors.Is(err, types.ErrInvalidCommitDate),
		errors.Is(err, types.ErrInvalidMajorVersion):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
