package parsing_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/meridian-legal/counsel/internal/parsing"
)

func testSystem() parsing.System {
	return parsing.New(slog.New(slog.DiscardHandler))
}

func TestParseTextFile(t *testing.T) {
	sys := testSystem()

	text, err := sys.Parse(context.Background(), parsing.File{
		Name: "contract.txt",
		Body: strings.NewReader("This agreement is governed by Delaware law."),
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if text != "This agreement is governed by Delaware law." {
		t.Errorf("Parse = %q", text)
	}
}

func TestParseWordPlaceholder(t *testing.T) {
	sys := testSystem()

	text, err := sys.Parse(context.Background(), parsing.File{
		Name: "msa.docx",
		Body: strings.NewReader("ignored"),
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(text, "[Word Document: msa.docx]") {
		t.Errorf("Parse = %q, want placeholder block", text)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	sys := testSystem()

	if _, err := sys.Parse(context.Background(), parsing.File{
		Name: "image.png",
		Body: strings.NewReader(""),
	}); !errors.Is(err, parsing.ErrUnsupportedFormat) {
		t.Errorf("Parse error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseManyCombinesWithDelimiters(t *testing.T) {
	sys := testSystem()

	combined := sys.ParseMany(context.Background(), []parsing.File{
		{Name: "first.txt", Body: strings.NewReader("alpha")},
		{Name: "second.txt", Body: strings.NewReader("beta")},
	})

	for _, want := range []string{
		"=== first.txt ===\nalpha\n",
		"=== second.txt ===\nbeta\n",
	} {
		if !strings.Contains(combined, want) {
			t.Errorf("combined output missing %q:\n%s", want, combined)
		}
	}
}

func TestParseManyInlinesFailures(t *testing.T) {
	sys := testSystem()

	combined := sys.ParseMany(context.Background(), []parsing.File{
		{Name: "good.txt", Body: strings.NewReader("fine")},
		{Name: "bad.xyz", Body: strings.NewReader("")},
	})

	if !strings.Contains(combined, "=== good.txt ===\nfine\n") {
		t.Errorf("combined output missing parsed document:\n%s", combined)
	}
	if !strings.Contains(combined, "=== bad.xyz ===\n[Parse Error: ") {
		t.Errorf("combined output missing error block:\n%s", combined)
	}
}

func TestParseTableDetectsColumnsByHeader(t *testing.T) {
	sys := testSystem()

	catalog, err := sys.ParseTable(context.Background(), parsing.File{
		Name: "codes.csv",
		Body: strings.NewReader(
			"Notes,Counterparty Code,Description\n" +
				"x,A001,Domestic bank\n" +
				"y,B002,Foreign broker\n",
		),
	})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	if catalog.Len() != 2 {
		t.Fatalf("catalog has %d codes, want 2", catalog.Len())
	}
	if desc, ok := catalog.Get("A001"); !ok || desc != "Domestic bank" {
		t.Errorf("Get(A001) = %q, %v", desc, ok)
	}
	if catalog.First() != "A001" {
		t.Errorf("First = %q, want A001", catalog.First())
	}
}

func TestParseTableFallsBackToFirstTwoColumns(t *testing.T) {
	sys := testSystem()

	catalog, err := sys.ParseTable(context.Background(), parsing.File{
		Name: "codes.csv",
		Body: strings.NewReader(
			"Alpha,Beta\n" +
				"C003,Clearing house\n",
		),
	})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	if desc, ok := catalog.Get("C003"); !ok || desc != "Clearing house" {
		t.Errorf("Get(C003) = %q, %v", desc, ok)
	}
}

func TestParseTableTSV(t *testing.T) {
	sys := testSystem()

	catalog, err := sys.ParseTable(context.Background(), parsing.File{
		Name: "codes.tsv",
		Body: strings.NewReader("code\tdescription\nD004\tSovereign fund\n"),
	})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	if desc, ok := catalog.Get("D004"); !ok || desc != "Sovereign fund" {
		t.Errorf("Get(D004) = %q, %v", desc, ok)
	}
}

func TestParseTableSkipsBlankPairs(t *testing.T) {
	sys := testSystem()

	catalog, err := sys.ParseTable(context.Background(), parsing.File{
		Name: "codes.csv",
		Body: strings.NewReader(
			"code,description\n" +
				"E005,Exchange\n" +
				",Missing code\n" +
				"F006,\n",
		),
	})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	if catalog.Len() != 1 {
		t.Errorf("catalog has %d codes, want 1", catalog.Len())
	}
}

func TestParseTableRejectsEmptyResults(t *testing.T) {
	sys := testSystem()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty file", "", parsing.ErrEmptyFile},
		{"header only", "code,description\n", parsing.ErrNoCodes},
		{"single column", "code\nA001\n", parsing.ErrNoCodes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sys.ParseTable(context.Background(), parsing.File{
				Name: "codes.csv",
				Body: strings.NewReader(tc.content),
			}); !errors.Is(err, tc.want) {
				t.Errorf("ParseTable error = %v, want %v", err, tc.want)
			}
		})
	}
}
