package strategies

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/drinkchain/pkg/handlers"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

const maxBodyBytes = 64 << 10

// Handler provides HTTP endpoints for strategy operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// SavedResponse is returned after a strategy is created and promoted.
type SavedResponse struct {
	Strategy CustomStrategy `json:"strategy"`
	Active   Active         `json:"active"`
}

// DirectiveResponse carries the directive text of the active selection.
type DirectiveResponse struct {
	Directive string `json:"directive"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "strategies"),
	}
}

// Routes returns the route group definition for strategy endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/strategies",
		Tags:        []string{"Strategies"},
		Description: "Saved strategies and the active analytical lens",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/types", Handler: h.Types, OpenAPI: Spec.Types},
			{Method: "GET", Pattern: "/active", Handler: h.Active, OpenAPI: Spec.Active},
			{Method: "POST", Pattern: "/select", Handler: h.Select, OpenAPI: Spec.Select},
			{Method: "GET", Pattern: "/directive", Handler: h.Directive, OpenAPI: Spec.Directive},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

// List returns saved strategies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List())
}

// Types returns every strategy with its directive.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Types())
}

// Find returns a saved strategy by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	c, err := h.sys.Find(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, c)
}

// Create saves a strategy from a JSON body and makes it active.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[CreateCommand](w, r, maxBodyBytes)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, active, err := h.sys.Save(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, SavedResponse{Strategy: c, Active: active})
}

// Delete removes a saved strategy and returns the resulting active selection.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	active, err := h.sys.Remove(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, active)
}

// Active returns the resolved active selection.
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Active())
}

// Select applies a selection event from a JSON body.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[SelectCommand](w, r, maxBodyBytes)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, h.sys.Select(cmd))
}

// Directive returns the directive text of the active selection.
func (h *Handler) Directive(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, DirectiveResponse{Directive: h.sys.Directive()})
}
