package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/meridian-legal/counsel/pkg/storage"
)

// Prefix namespaces feedback blobs.
const Prefix = "feedback/"

const keyTimeLayout = "20060102_150405.000000"

type system struct {
	storage storage.System
	logger  *slog.Logger
}

// New creates a feedback system backed by blob storage.
func New(store storage.System, logger *slog.Logger) System {
	return &system{
		storage: store,
		logger:  logger.With("system", "feedback"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Submit(ctx context.Context, cmd SubmitCommand) (*Feedback, string, error) {
	if strings.TrimSpace(cmd.Category) == "" || strings.TrimSpace(cmd.Message) == "" {
		return nil, "", ErrEmptyMessage
	}

	fb := Feedback{
		Category:  cmd.Category,
		Message:   cmd.Message,
		Timestamp: time.Now(),
		UserName:  cmd.UserName,
	}

	// Sub-second precision keeps rapid submissions distinctly keyed.
	key := fmt.Sprintf(
		"%sfeedback_%s.json",
		Prefix,
		strings.ReplaceAll(fb.Timestamp.Format(keyTimeLayout), ".", "_"),
	)

	if err := storage.UploadJSON(ctx, s.storage, key, fb); err != nil {
		return nil, "", fmt.Errorf("store feedback: %w", err)
	}

	s.logger.Info("feedback stored", "category", fb.Category, "key", key)
	return &fb, key, nil
}

// List returns keys relative to the feedback prefix so they round-trip
// through Get and single-segment URL paths.
func (s *system) List(ctx context.Context) ([]string, error) {
	keys, err := s.storage.List(ctx, Prefix)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, Prefix)
	}
	return keys, nil
}

// Get accepts both relative and fully-prefixed keys.
func (s *system) Get(ctx context.Context, key string) (*Feedback, error) {
	fb, err := storage.DownloadJSON[Feedback](ctx, s.storage, Prefix+strings.TrimPrefix(key, Prefix))
	if err != nil {
		return nil, err
	}
	return &fb, nil
}
