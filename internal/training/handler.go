package training

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/pkg/handlers"
	"github.com/meridian-legal/counsel/pkg/routes"
)

// Handler provides HTTP endpoints for training corpus operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// SubmitResponse pairs a stored example with its blob key.
type SubmitResponse struct {
	Example    Example `json:"example"`
	StorageKey string  `json:"storage_key"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "training"),
	}
}

// Routes returns the route group definition for training endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/training",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{key}", Handler: h.Get},
			{Method: "GET", Pattern: "/accuracy/{task}", Handler: h.Accuracy},
			{Method: "POST", Pattern: "", Handler: h.Submit},
		},
	}
}

// Submit stores a reviewed analysis as a training example.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var cmd SubmitCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	example, key, err := h.sys.Submit(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{
		Example:    *example,
		StorageKey: key,
	})
}

// List returns the blob keys of stored examples.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, keys)
}

// Get loads an example by its blob key path parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	example, err := h.sys.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, example)
}

// Accuracy reports the validated-correct share for a task, optionally
// bounded by start and end query parameters (YYYY-MM-DD).
func (h *Handler) Accuracy(w http.ResponseWriter, r *http.Request) {
	task, err := classify.ParseTask(r.PathValue("task"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	report, err := h.sys.Accuracy(
		r.Context(),
		task,
		r.URL.Query().Get("start"),
		r.URL.Query().Get("end"),
	)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
