package feedback

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridian-legal/counsel/pkg/handlers"
	"github.com/meridian-legal/counsel/pkg/routes"
)

// Handler provides HTTP endpoints for feedback operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// SubmitResponse pairs a stored feedback report with its blob key.
type SubmitResponse struct {
	Feedback   Feedback `json:"feedback"`
	StorageKey string   `json:"storage_key"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "feedback"),
	}
}

// Routes returns the route group definition for feedback endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/feedback",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{key}", Handler: h.Get},
			{Method: "POST", Pattern: "", Handler: h.Submit},
		},
	}
}

// Submit stores a feedback report.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var cmd SubmitCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	fb, key, err := h.sys.Submit(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{
		Feedback:   *fb,
		StorageKey: key,
	})
}

// List returns the blob keys of stored feedback reports.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, keys)
}

// Get loads a feedback report by its blob key path parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	fb, err := h.sys.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fb)
}
