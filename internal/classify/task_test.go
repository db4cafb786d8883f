package classify_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/meridian-legal/counsel/internal/classify"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		input   string
		want    classify.Task
		wantErr bool
	}{
		{"jurisdiction", classify.TaskJurisdiction, false},
		{"counterparty", classify.TaskCounterparty, false},
		{"sentiment", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			task, err := classify.ParseTask(tt.input)
			if tt.wantErr {
				if !errors.Is(err, classify.ErrInvalidTask) {
					t.Errorf("error = %v, want ErrInvalidTask", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task != tt.want {
				t.Errorf("task = %q, want %q", task, tt.want)
			}
		})
	}
}

func TestTaskUnmarshalJSON(t *testing.T) {
	var task classify.Task
	if err := json.Unmarshal([]byte(`"jurisdiction"`), &task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task != classify.TaskJurisdiction {
		t.Errorf("task = %q, want jurisdiction", task)
	}

	if err := json.Unmarshal([]byte(`"invalid"`), &task); !errors.Is(err, classify.ErrInvalidTask) {
		t.Errorf("error = %v, want ErrInvalidTask", err)
	}
}
