package training

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/pkg/storage"
)

// Prefix namespaces training example blobs.
const Prefix = "training_data/"

type system struct {
	storage storage.System
	logger  *slog.Logger
}

// New creates a training corpus system backed by blob storage.
func New(store storage.System, logger *slog.Logger) System {
	return &system{
		storage: store,
		logger:  logger.With("system", "training"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Submit(ctx context.Context, cmd SubmitCommand) (*Example, string, error) {
	if cmd.Analysis.JurisdictionCorrect == nil && cmd.Analysis.CounterpartyCorrect == nil {
		return nil, "", ErrNotValidated
	}
	if strings.TrimSpace(cmd.DocumentText) == "" {
		return nil, "", ErrEmptyText
	}

	example := Example{
		ID:           uuid.New(),
		Analysis:     cmd.Analysis,
		DocumentText: cmd.DocumentText,
		Codes:        cmd.Codes,
		CreatedAt:    time.Now(),
	}

	key := fmt.Sprintf("%s%s.json", Prefix, example.ID)
	if err := storage.UploadJSON(ctx, s.storage, key, example); err != nil {
		return nil, "", fmt.Errorf("store training example: %w", err)
	}

	s.logger.Info(
		"training example stored",
		"id", example.ID,
		"company", example.Analysis.CompanyName,
	)

	return &example, key, nil
}

// List returns keys relative to the training prefix so they round-trip
// through Get and single-segment URL paths.
func (s *system) List(ctx context.Context) ([]string, error) {
	keys, err := s.storage.List(ctx, Prefix)
	if err != nil {
		return nil, fmt.Errorf("list training examples: %w", err)
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, Prefix)
	}
	return keys, nil
}

// Get accepts both relative and fully-prefixed keys.
func (s *system) Get(ctx context.Context, key string) (*Example, error) {
	example, err := storage.DownloadJSON[Example](ctx, s.storage, Prefix+strings.TrimPrefix(key, Prefix))
	if err != nil {
		return nil, err
	}
	return &example, nil
}

func (s *system) Load(ctx context.Context, startDate, endDate string) ([]Example, error) {
	keys, err := s.storage.List(ctx, Prefix)
	if err != nil {
		return nil, fmt.Errorf("list training examples: %w", err)
	}

	examples := make([]Example, 0, len(keys))
	for _, key := range keys {
		example, err := storage.DownloadJSON[Example](ctx, s.storage, key)
		if err != nil {
			s.logger.Warn("skipping unreadable training example", "key", key, "error", err)
			continue
		}

		if !inDateRange(example.CreatedAt, startDate, endDate) {
			continue
		}

		examples = append(examples, example)
	}

	return examples, nil
}

func (s *system) Accuracy(
	ctx context.Context,
	task classify.Task,
	startDate, endDate string,
) (*AccuracyReport, error) {
	examples, err := s.Load(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := Accuracy(task, examples)
	return &report, nil
}

func inDateRange(createdAt time.Time, startDate, endDate string) bool {
	date := createdAt.Format("2006-01-02")
	if startDate != "" && date < startDate {
		return false
	}
	if endDate != "" && date > endDate {
		return false
	}
	return true
}
