package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pathwise/internal/discovery"
	"pathwise/pkg/platform/httputil"
	"pathwise/pkg/requestcontext"
)

// Service defines the interface for discovery operations.
type Service interface {
	Discover(ctx context.Context, p discovery.Profile) (*discovery.Result, error)
}

// Handler wires the recommendation endpoint to the discovery service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a discovery handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts discovery endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/recommend", h.HandleRecommend)
}

// HandleRecommend handles POST /api/recommend requests.
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RecommendRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Discover(ctx, req.Profile())
	if err != nil {
		h.logger.ErrorContext(ctx, "discovery evaluation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "recommendation served",
		"request_id", requestID,
		"total_options", result.Meta.TotalOptions,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
