package chat

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/drinkchain/pkg/handlers"
	"github.com/JaimeStill/drinkchain/pkg/routes"
)

// Handler provides HTTP endpoints for advisor sessions.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// SendCommand is the body of a message post.
type SendCommand struct {
	Text string `json:"text"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "chat"),
	}
}

// Routes returns the route group definition for chat endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/chat/sessions",
		Tags:        []string{"Chat"},
		Description: "Advisor conversations",
		Schemas:     Spec.Schemas,
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Open, OpenAPI: Spec.Open},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "/{id}/messages", Handler: h.Send, OpenAPI: Spec.Send},
		},
	}
}

// Open starts a new session.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusCreated, h.sys.Open())
}

// Find returns the transcript of a session.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sys.Find(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, snap)
}

// Send posts a user message and returns the model reply.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[SendCommand](w, r, 16<<10)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	msg, err := h.sys.Send(r.Context(), r.PathValue("id"), cmd.Text)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, msg)
}
