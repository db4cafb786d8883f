package parsing

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/pkg/formatting"
	"github.com/meridian-legal/counsel/pkg/handlers"
	"github.com/meridian-legal/counsel/pkg/routes"
)

const maxUploadSize = 32 << 20

// Handler provides HTTP endpoints for parsing operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// ParseResponse carries the combined text extracted from uploaded documents.
type ParseResponse struct {
	Text string `json:"text"`
}

// TableResponse carries the code catalog parsed from an uploaded table.
type TableResponse struct {
	Codes *classify.CodeCatalog `json:"codes"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "parsing"),
	}
}

// Routes returns the route group definition for parsing endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/parsing",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/formats", Handler: h.Formats},
			{Method: "POST", Pattern: "/documents", Handler: h.Documents},
			{Method: "POST", Pattern: "/table", Handler: h.Table},
		},
	}
}

func uploadLimitError(err error) error {
	return fmt.Errorf("multipart upload exceeds %s limit: %w",
		formatting.FormatBytes(maxUploadSize, 0), err)
}

// Formats returns the file extensions the parser accepts.
func (h *Handler) Formats(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, SupportedFormats())
}

// Documents extracts and combines text from multipart file uploads under the
// "documents" field.
func (h *Handler) Documents(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, uploadLimitError(err))
		return
	}

	headers := r.MultipartForm.File["documents"]
	if len(headers) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyFile)
		return
	}

	files := make([]File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		defer f.Close()
		files = append(files, File{Name: header.Filename, Body: f})
	}

	handlers.RespondJSON(w, http.StatusOK, ParseResponse{
		Text: h.sys.ParseMany(r.Context(), files),
	})
}

// Table parses a single delimited code table uploaded under the "table" field.
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, uploadLimitError(err))
		return
	}

	f, header, err := r.FormFile("table")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	catalog, err := h.sys.ParseTable(r.Context(), File{Name: header.Filename, Body: f})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TableResponse{Codes: catalog})
}
