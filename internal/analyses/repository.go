package analyses

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/workflow"
	"github.com/meridian-legal/counsel/pkg/storage"
)

type system struct {
	rt      *workflow.Runtime
	storage storage.System
	logger  *slog.Logger
}

// New creates an analysis system backed by the workflow runtime and blob
// storage.
func New(
	rt *workflow.Runtime,
	store storage.System,
	logger *slog.Logger,
) System {
	return &system{
		rt:      rt,
		storage: store,
		logger:  logger.With("system", "analyses"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Analyze(ctx context.Context, cmd AnalyzeCommand) (*AnalyzeResult, error) {
	if strings.TrimSpace(cmd.UserName) == "" ||
		strings.TrimSpace(cmd.CompanyName) == "" ||
		strings.TrimSpace(cmd.DocumentText) == "" {
		return nil, ErrInvalidInput
	}

	outcome, err := workflow.Execute(ctx, s.rt, classify.Request{
		DocumentText: cmd.DocumentText,
		CompanyName:  cmd.CompanyName,
		Codes:        cmd.Codes,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis workflow: %w", err)
	}

	analysis := Analysis{
		ID:            uuid.New(),
		UserName:      cmd.UserName,
		CompanyName:   cmd.CompanyName,
		Timestamp:     time.Now(),
		Jurisdiction:  outcome.Jurisdiction,
		Counterparty:  outcome.Counterparty,
		DocumentNames: cmd.DocumentNames,
		CatalogName:   cmd.CatalogName,
		StorageRefs:   cmd.StorageRefs,
	}

	result := &AnalyzeResult{Analysis: analysis}

	// Storage is best-effort: a failed upload degrades to Saved=false
	// rather than aborting the user-facing flow.
	key := resultKey(analysis.Timestamp, analysis.UserName, analysis.CompanyName)
	if err := storage.UploadJSON(ctx, s.storage, key, analysis); err != nil {
		s.logger.Warn("analysis result upload failed", "key", key, "error", err)
		return result, nil
	}

	result.StorageKey = key
	result.Saved = true

	s.logger.Info(
		"analysis complete",
		"id", analysis.ID,
		"company", analysis.CompanyName,
		"jurisdiction", analysis.Jurisdiction.Label,
		"counterparty", analysis.Counterparty.Label,
	)

	return result, nil
}

func (s *system) Validate(a *Analysis, cmd ValidateCommand) error {
	if cmd.JurisdictionCorrect != nil && a.JurisdictionCorrect != nil {
		return ErrAlreadyValidated
	}
	if cmd.CounterpartyCorrect != nil && a.CounterpartyCorrect != nil {
		return ErrAlreadyValidated
	}

	if cmd.JurisdictionCorrect != nil {
		a.JurisdictionCorrect = cmd.JurisdictionCorrect
	}
	if cmd.CounterpartyCorrect != nil {
		a.CounterpartyCorrect = cmd.CounterpartyCorrect
	}

	return nil
}

// List returns keys relative to the results prefix so they round-trip
// through Find and single-segment URL paths.
func (s *system) List(ctx context.Context) ([]string, error) {
	keys, err := s.storage.List(ctx, ResultsPrefix)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, ResultsPrefix)
	}
	return keys, nil
}

// Find accepts both relative and fully-prefixed keys.
func (s *system) Find(ctx context.Context, key string) (*Analysis, error) {
	analysis, err := storage.DownloadJSON[Analysis](ctx, s.storage, ResultsPrefix+strings.TrimPrefix(key, ResultsPrefix))
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *system) UploadDocument(
	ctx context.Context,
	userName, companyName, fileName string,
	r io.Reader,
) (string, error) {
	if strings.TrimSpace(fileName) == "" {
		return "", ErrInvalidInput
	}

	key := documentKey(time.Now(), userName, companyName, fileName)
	if err := s.storage.Upload(ctx, key, r, "application/octet-stream"); err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}

	s.logger.Info("document uploaded", "key", key)
	return key, nil
}
