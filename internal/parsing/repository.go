package parsing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/meridian-legal/counsel/internal/classify"
)

type system struct {
	logger *slog.Logger
}

// New creates a parsing system.
func New(logger *slog.Logger) System {
	return &system{
		logger: logger.With("system", "parsing"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Parse(ctx context.Context, file File) (string, error) {
	switch strings.ToLower(filepath.Ext(file.Name)) {
	case ".txt":
		return parseText(file.Body)
	case ".pdf":
		return s.parsePDF(file)
	case ".docx", ".doc":
		// No Word extraction backend is wired; surface a placeholder so
		// batch parsing still produces a usable combined document.
		return fmt.Sprintf(
			"[Word Document: %s]\nNote: Word document text extraction is not available.",
			file.Name,
		), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(file.Name))
	}
}

func (s *system) ParseMany(ctx context.Context, files []File) string {
	sections := make([]string, 0, len(files))

	for _, file := range files {
		text, err := s.Parse(ctx, file)
		if err != nil {
			s.logger.Warn("failed to parse document", "file", file.Name, "error", err)
			sections = append(sections, fmt.Sprintf("=== %s ===\n[Parse Error: %s]\n", file.Name, err))
			continue
		}
		sections = append(sections, fmt.Sprintf("=== %s ===\n%s\n", file.Name, text))
	}

	return strings.Join(sections, "\n")
}

func (s *system) ParseTable(ctx context.Context, file File) (*classify.CodeCatalog, error) {
	reader := csv.NewReader(file.Body)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if strings.EqualFold(filepath.Ext(file.Name), ".tsv") {
		reader.Comma = '\t'
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read code table %s: %w", file.Name, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	codeCol, descCol := detectColumns(records[0])
	if codeCol < 0 || descCol < 0 {
		if len(records[0]) < 2 {
			return nil, fmt.Errorf("%w: code table needs at least two columns", ErrNoCodes)
		}
		codeCol, descCol = 0, 1
	}

	catalog := classify.NewCodeCatalog()
	for _, row := range records[1:] {
		if len(row) <= codeCol || len(row) <= descCol {
			continue
		}
		code := strings.TrimSpace(row[codeCol])
		desc := strings.TrimSpace(row[descCol])
		if code == "" || desc == "" {
			continue
		}
		catalog.Set(code, desc)
	}

	if catalog.Len() == 0 {
		return nil, ErrNoCodes
	}

	return catalog, nil
}

func parseText(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

func (s *system) parsePDF(file File) (string, error) {
	data, err := io.ReadAll(file.Body)
	if err != nil {
		return "", fmt.Errorf("read PDF %s: %w", file.Name, err)
	}

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("invalid PDF %s: %w", file.Name, err)
	}

	text, err := extractPDFText(data)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			s.logger.Warn("PDF text extraction failed", "file", file.Name, "error", err)
		}
		return fmt.Sprintf(
			"[PDF Document: %s, %d pages]\nNote: no extractable text found.",
			file.Name, pages,
		), nil
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	body, err := doc.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// detectColumns finds the code and description columns in a header row by
// keyword match, returning -1 for columns it cannot identify.
func detectColumns(header []string) (codeCol, descCol int) {
	codeCol, descCol = -1, -1

	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		switch {
		case codeCol < 0 && containsAny(name, "code", "id", "key"):
			codeCol = i
		case descCol < 0 && containsAny(name, "description", "desc", "name", "title"):
			descCol = i
		}
	}

	return codeCol, descCol
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
