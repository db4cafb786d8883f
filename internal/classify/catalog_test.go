package classify_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/meridian-legal/counsel/internal/classify"
)

func TestCatalogInsertionOrder(t *testing.T) {
	catalog := classify.NewCodeCatalog()
	catalog.Set("C003", "Custodian")
	catalog.Set("A001", "Commercial bank")
	catalog.Set("B002", "Insurance carrier")

	want := []string{"C003", "A001", "B002"}
	if !slices.Equal(catalog.Codes(), want) {
		t.Errorf("Codes() = %v, want %v", catalog.Codes(), want)
	}
	if catalog.First() != "C003" {
		t.Errorf("First() = %q, want C003", catalog.First())
	}
}

func TestCatalogSetExistingKeepsPosition(t *testing.T) {
	catalog := classify.NewCodeCatalog()
	catalog.Set("A001", "old")
	catalog.Set("B002", "other")
	catalog.Set("A001", "new")

	if catalog.First() != "A001" {
		t.Errorf("First() = %q, want A001", catalog.First())
	}
	if desc, _ := catalog.Get("A001"); desc != "new" {
		t.Errorf("Get(A001) = %q, want new", desc)
	}
	if catalog.Len() != 2 {
		t.Errorf("Len() = %d, want 2", catalog.Len())
	}
}

func TestCatalogEmptyFirst(t *testing.T) {
	catalog := classify.NewCodeCatalog()
	if catalog.First() != classify.UnknownCode {
		t.Errorf("First() = %q, want %q", catalog.First(), classify.UnknownCode)
	}
}

func TestCatalogRender(t *testing.T) {
	catalog := classify.NewCodeCatalog()
	catalog.Set("A001", "Commercial bank")
	catalog.Set("B002", "Insurance carrier")

	want := "A001: Commercial bank\nB002: Insurance carrier"
	if catalog.Render() != want {
		t.Errorf("Render() = %q, want %q", catalog.Render(), want)
	}
}

func TestCatalogJSONRoundTripPreservesOrder(t *testing.T) {
	catalog := classify.NewCodeCatalog()
	catalog.Set("Z900", "Last alphabetically, first supplied")
	catalog.Set("A001", "Commercial bank")

	data, err := json.Marshal(catalog)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	decoded := classify.NewCodeCatalog()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !slices.Equal(decoded.Codes(), catalog.Codes()) {
		t.Errorf("Codes() = %v, want %v", decoded.Codes(), catalog.Codes())
	}
	if decoded.First() != "Z900" {
		t.Errorf("First() = %q, want Z900", decoded.First())
	}
}

func TestCatalogUnmarshalRejectsNonObject(t *testing.T) {
	decoded := classify.NewCodeCatalog()
	if err := json.Unmarshal([]byte(`["A001"]`), decoded); err == nil {
		t.Fatal("expected error for non-object input")
	}
}
