package feedback_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/meridian-legal/counsel/internal/feedback"
	"github.com/meridian-legal/counsel/pkg/lifecycle"
	"github.com/meridian-legal/counsel/pkg/storage"
)

type memStorage struct {
	blobs map[string][]byte
	fail  bool
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (m *memStorage) Start(lc *lifecycle.Coordinator) error { return nil }

func (m *memStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if m.fail {
		return errors.New("upload failed")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	return nil
}

func (m *memStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

func (m *memStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range m.blobs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestSubmitStoresFeedback(t *testing.T) {
	store := newMemStorage()
	sys := feedback.New(store, testLogger())

	fb, key, err := sys.Submit(context.Background(), feedback.SubmitCommand{
		Category: "bug",
		Message:  "jurisdiction result missing citation",
		UserName: "jdoe",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !strings.HasPrefix(key, feedback.Prefix+"feedback_") {
		t.Errorf("key = %q, want prefix %q", key, feedback.Prefix+"feedback_")
	}
	if !strings.HasSuffix(key, ".json") {
		t.Errorf("key = %q, want .json suffix", key)
	}
	if fb.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
	if _, ok := store.blobs[key]; !ok {
		t.Errorf("expected blob stored at %q", key)
	}
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	sys := feedback.New(newMemStorage(), testLogger())

	tests := []struct {
		name string
		cmd  feedback.SubmitCommand
	}{
		{"empty category", feedback.SubmitCommand{Message: "something broke"}},
		{"empty message", feedback.SubmitCommand{Category: "bug"}},
		{"whitespace only", feedback.SubmitCommand{Category: "  ", Message: "\t"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := sys.Submit(context.Background(), tc.cmd); !errors.Is(err, feedback.ErrEmptyMessage) {
				t.Errorf("Submit error = %v, want ErrEmptyMessage", err)
			}
		})
	}
}

func TestSubmitPropagatesStorageFailure(t *testing.T) {
	store := newMemStorage()
	store.fail = true
	sys := feedback.New(store, testLogger())

	if _, _, err := sys.Submit(context.Background(), feedback.SubmitCommand{
		Category: "general",
		Message:  "works great",
	}); err == nil {
		t.Fatal("expected error when storage upload fails")
	}
}

func TestGetRoundTrip(t *testing.T) {
	store := newMemStorage()
	sys := feedback.New(store, testLogger())

	submitted, key, err := sys.Submit(context.Background(), feedback.SubmitCommand{
		Category: "feature",
		Message:  "batch uploads would help",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Get tolerates the fully-prefixed storage key returned by Submit.
	loaded, err := sys.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if loaded.Category != submitted.Category || loaded.Message != submitted.Message {
		t.Errorf("Get = %+v, want %+v", loaded, submitted)
	}
}

func TestGetMissingKey(t *testing.T) {
	sys := feedback.New(newMemStorage(), testLogger())

	if _, err := sys.Get(context.Background(), "feedback_20260101_000000_000000.json"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get error = %v, want storage.ErrNotFound", err)
	}
}

func TestListReturnsOnlyFeedbackKeys(t *testing.T) {
	store := newMemStorage()
	store.blobs["analysis_results/other.json"] = []byte("{}")
	sys := feedback.New(store, testLogger())

	for _, msg := range []string{"first", "second"} {
		if _, _, err := sys.Submit(context.Background(), feedback.SubmitCommand{
			Category: "general",
			Message:  msg,
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	keys, err := sys.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("List returned %d keys, want 2", len(keys))
	}
	for _, k := range keys {
		if strings.HasPrefix(k, feedback.Prefix) {
			t.Errorf("key %q should be relative, not carry prefix %q", k, feedback.Prefix)
		}
		if !strings.HasPrefix(k, "feedback_") {
			t.Errorf("key %q, want feedback_ name", k)
		}
	}
}

func TestListedKeysRoundTripThroughGet(t *testing.T) {
	store := newMemStorage()
	sys := feedback.New(store, testLogger())

	submitted, _, err := sys.Submit(context.Background(), feedback.SubmitCommand{
		Category: "general",
		Message:  "counterparty codes load slowly",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	keys, err := sys.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("List returned %d keys, want 1", len(keys))
	}

	loaded, err := sys.Get(context.Background(), keys[0])
	if err != nil {
		t.Fatalf("Get(%q): %v", keys[0], err)
	}
	if loaded.Message != submitted.Message {
		t.Errorf("Message = %q, want %q", loaded.Message, submitted.Message)
	}
}
