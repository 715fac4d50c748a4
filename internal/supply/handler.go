package supply

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/drinkchain/pkg/handlers"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

// Handler provides HTTP endpoints for the supply board.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "supply"),
	}
}

// Routes returns the route group definition for supply endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/supply",
		Tags:        []string{"Supply"},
		Description: "Supply and demand listing board",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Publish, OpenAPI: Spec.Publish},
			{Method: "POST", Pattern: "/refresh", Handler: h.Refresh, OpenAPI: Spec.Refresh},
		},
	}
}

// List returns visible listings, filtered by the optional type query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseTypeFilter(r.URL.Query().Get("type"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.sys.List(filter))
}

// Refresh synthesizes a batch for the optional category query parameter.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Refresh(r.Context(), r.URL.Query().Get("category")))
}

// Publish adds a user listing from a JSON body.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[PublishCommand](w, r, 16<<10)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	item, err := h.sys.Publish(cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, item)
}
