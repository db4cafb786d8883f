package training_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/meridian-legal/counsel/internal/analyses"
	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/training"
	"github.com/meridian-legal/counsel/pkg/lifecycle"
	"github.com/meridian-legal/counsel/pkg/storage"
)

type memStorage struct {
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (m *memStorage) Start(lc *lifecycle.Coordinator) error { return nil }

func (m *memStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
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
	keys := make([]string, 0)
	for key := range m.blobs {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func boolPtr(v bool) *bool { return &v }

func validatedAnalysis(jurisdiction, counterparty *bool) analyses.Analysis {
	return analyses.Analysis{
		UserName:            "Jane Doe",
		CompanyName:         "Acme Corp",
		Timestamp:           time.Now(),
		Jurisdiction:        classify.Result{Label: "Delaware", Confidence: classify.SuccessConfidence},
		Counterparty:        classify.Result{Label: "A001", Confidence: classify.SuccessConfidence},
		JurisdictionCorrect: jurisdiction,
		CounterpartyCorrect: counterparty,
	}
}

func testSystem() training.System {
	return training.New(newMemStorage(), slog.New(slog.DiscardHandler))
}

func TestSubmitStoresExample(t *testing.T) {
	sys := testSystem()

	example, key, err := sys.Submit(context.Background(), training.SubmitCommand{
		Analysis:     validatedAnalysis(boolPtr(true), boolPtr(false)),
		DocumentText: "incorporated in Delaware",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if !strings.HasPrefix(key, training.Prefix) {
		t.Errorf("key = %q, want %s prefix", key, training.Prefix)
	}
	if !strings.Contains(key, example.ID.String()) {
		t.Errorf("key = %q, want example id", key)
	}

	loaded, err := sys.Get(context.Background(), example.ID.String()+".json")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.DocumentText != "incorporated in Delaware" {
		t.Errorf("DocumentText = %q", loaded.DocumentText)
	}
}

func TestSubmitRejectsUnvalidated(t *testing.T) {
	sys := testSystem()

	_, _, err := sys.Submit(context.Background(), training.SubmitCommand{
		Analysis:     validatedAnalysis(nil, nil),
		DocumentText: "text",
	})
	if !errors.Is(err, training.ErrNotValidated) {
		t.Errorf("error = %v, want ErrNotValidated", err)
	}
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	sys := testSystem()

	_, _, err := sys.Submit(context.Background(), training.SubmitCommand{
		Analysis: validatedAnalysis(boolPtr(true), nil),
	})
	if !errors.Is(err, training.ErrEmptyText) {
		t.Errorf("error = %v, want ErrEmptyText", err)
	}
}

func TestLoadReturnsStoredExamples(t *testing.T) {
	sys := testSystem()

	for range 3 {
		if _, _, err := sys.Submit(context.Background(), training.SubmitCommand{
			Analysis:     validatedAnalysis(boolPtr(true), nil),
			DocumentText: "text",
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	examples, err := sys.Load(context.Background(), "", "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(examples) != 3 {
		t.Errorf("len = %d, want 3", len(examples))
	}

	future := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	examples, err = sys.Load(context.Background(), future, "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(examples) != 0 {
		t.Errorf("len = %d, want 0 for future start date", len(examples))
	}
}

func TestListedKeysRoundTripThroughGet(t *testing.T) {
	sys := testSystem()

	example, _, err := sys.Submit(context.Background(), training.SubmitCommand{
		Analysis:     validatedAnalysis(boolPtr(true), nil),
		DocumentText: "governed by the laws of England",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	keys, err := sys.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("len = %d, want 1", len(keys))
	}
	if strings.HasPrefix(keys[0], training.Prefix) {
		t.Errorf("key %q should be relative, not carry prefix %q", keys[0], training.Prefix)
	}

	loaded, err := sys.Get(context.Background(), keys[0])
	if err != nil {
		t.Fatalf("get(%q) failed: %v", keys[0], err)
	}
	if loaded.ID != example.ID {
		t.Errorf("ID = %s, want %s", loaded.ID, example.ID)
	}
}

func TestValidatedFor(t *testing.T) {
	tests := []struct {
		name string
		ex   training.Example
		task classify.Task
		want bool
	}{
		{
			name: "jurisdiction correct",
			ex:   training.Example{Analysis: validatedAnalysis(boolPtr(true), nil)},
			task: classify.TaskJurisdiction,
			want: true,
		},
		{
			name: "jurisdiction incorrect",
			ex:   training.Example{Analysis: validatedAnalysis(boolPtr(false), nil)},
			task: classify.TaskJurisdiction,
			want: false,
		},
		{
			name: "jurisdiction unset",
			ex:   training.Example{Analysis: validatedAnalysis(nil, boolPtr(true))},
			task: classify.TaskJurisdiction,
			want: false,
		},
		{
			name: "counterparty correct",
			ex:   training.Example{Analysis: validatedAnalysis(nil, boolPtr(true))},
			task: classify.TaskCounterparty,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ex.ValidatedFor(tt.task); got != tt.want {
				t.Errorf("ValidatedFor(%s) = %v, want %v", tt.task, got, tt.want)
			}
		})
	}
}

func TestAccuracyMetric(t *testing.T) {
	examples := make([]training.Example, 0, 10)
	for i := range 10 {
		flag := boolPtr(i < 7)
		examples = append(examples, training.Example{
			Analysis: validatedAnalysis(flag, nil),
		})
	}

	report := training.Accuracy(classify.TaskJurisdiction, examples)
	if report.Accuracy != 0.7 {
		t.Errorf("Accuracy = %v, want 0.7", report.Accuracy)
	}
	if report.Correct != 7 || report.Total != 10 {
		t.Errorf("Correct/Total = %d/%d, want 7/10", report.Correct, report.Total)
	}
}

func TestAccuracyEmptyDenominator(t *testing.T) {
	report := training.Accuracy(classify.TaskCounterparty, nil)
	if report.Accuracy != 0.0 {
		t.Errorf("Accuracy = %v, want 0.0", report.Accuracy)
	}
}
