package trends

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/drinkchain/pkg/handlers"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

// Handler provides HTTP endpoints for the trend view.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "trends"),
	}
}

// Routes returns the route group definition for trend endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/trends",
		Tags:        []string{"Trends"},
		Description: "Market trend analysis under the active lens",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Refresh, OpenAPI: Spec.Refresh},
			{Method: "GET", Pattern: "/current", Handler: h.Current, OpenAPI: Spec.Current},
		},
	}
}

// Refresh synthesizes a new analysis under the active lens.
// Always responds 200 with either the analysis or the recovery value.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Refresh(r.Context()))
}

// Current returns the latest accepted analysis.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	result, ok := h.sys.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
