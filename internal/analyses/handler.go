package analyses

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridian-legal/counsel/pkg/handlers"
	"github.com/meridian-legal/counsel/pkg/routes"
)

// maxUploadSize bounds multipart document uploads at 32 MiB.
const maxUploadSize = 32 << 20

// Handler provides HTTP endpoints for analysis operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// ValidateRequest carries an analysis back from the reviewing client
// together with its verdict. The analysis travels in the request rather
// than being looked up server-side, so review needs no session state.
type ValidateRequest struct {
	Analysis Analysis `json:"analysis"`
	ValidateCommand
}

// UploadResponse lists the blob keys of uploaded source documents.
type UploadResponse struct {
	Keys []string `json:"keys"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analyses"),
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyses",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{key}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Analyze},
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
			{Method: "POST", Pattern: "/documents", Handler: h.UploadDocuments},
		},
	}
}

// Analyze runs the classification workflow for a JSON analyze command.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var cmd AnalyzeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Analyze(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Validate applies a human review verdict to a submitted analysis and
// returns the updated analysis.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Validate(&req.Analysis, req.ValidateCommand); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, req.Analysis)
}

// List returns the blob keys of stored analyses.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, keys)
}

// Find loads a stored analysis by its blob key path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.sys.Find(r.Context(), r.PathValue("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, analysis)
}

// UploadDocuments stores multipart source documents and returns their
// blob keys for inclusion in a later analyze command.
func (h *Handler) UploadDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	userName := r.FormValue("user_name")
	companyName := r.FormValue("company_name")

	var resp UploadResponse
	for _, header := range r.MultipartForm.File["documents"] {
		file, err := header.Open()
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}

		key, err := h.sys.UploadDocument(r.Context(), userName, companyName, header.Filename, file)
		file.Close()
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}

		resp.Keys = append(resp.Keys, key)
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}
