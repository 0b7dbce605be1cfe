package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"pathwise/internal/catalog"
	dErrors "pathwise/pkg/domain-errors"
	"pathwise/pkg/platform/audit"
	"pathwise/pkg/platform/httputil"
	"pathwise/pkg/platform/sentinel"
	"pathwise/pkg/requestcontext"
)

// Handler serves read-only catalog endpoints.
type Handler struct {
	catalog *catalog.Catalog
	auditor *audit.Publisher
	logger  *slog.Logger
}

// New constructs a catalog handler. The auditor may be nil.
func New(cat *catalog.Catalog, auditor *audit.Publisher, logger *slog.Logger) *Handler {
	return &Handler{catalog: cat, auditor: auditor, logger: logger}
}

// Register mounts catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/countries", h.HandleList)
	r.Get("/api/countries/{name}", h.HandleGet)
}

// HandleList handles GET /api/countries with a summary per destination.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	countries := h.catalog.All()

	summaries := make([]CountrySummary, 0, len(countries))
	for _, c := range countries {
		summaries = append(summaries, SummaryFromCountry(c))
	}

	httputil.WriteJSON(w, http.StatusOK, ListResponse{
		Status:    "success",
		Countries: summaries,
	})
}

// HandleGet handles GET /api/countries/{name} with the full record.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "country name is required"))
		return
	}

	country, err := h.catalog.Lookup(name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown country: "+name))
			return
		}
		h.logger.ErrorContext(ctx, "catalog lookup failed", "country", name, "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		RequestID: requestcontext.RequestID(ctx),
		Action:    audit.ActionCatalogViewed,
		Subject:   country.Name,
	})

	httputil.WriteJSON(w, http.StatusOK, GetResponse{
		Status:  "success",
		Country: country,
	})
}
