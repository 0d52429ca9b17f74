package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"prakriti-api/internal/domain"
)

const sampleTablesYAML = `
vectors:
  warm: {vata: 1, pitta: 2}
  heavy: {kapha: 3}
characteristics:
  vata: ["Quick"]
  pitta: ["Sharp"]
  kapha: ["Steady"]
recommendations:
  vata: ["Stay warm"]
  pitta: ["Cool down"]
  kapha: ["Move more"]
feeding_habits:
  vata: ["Eat warm"]
  pitta: ["Eat cool"]
  kapha: ["Eat light"]
`

func TestLoadDoshaTables(t *testing.T) {
	tables, err := LoadDoshaTables(strings.NewReader(sampleTablesYAML))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	wantVectors := map[domain.AnswerKey]domain.DoshaVector{
		"warm":  {Vata: 1, Pitta: 2},
		"heavy": {Kapha: 3},
	}
	if diff := cmp.Diff(wantVectors, tables.Vectors); diff != "" {
		t.Fatalf("vectors mismatch (-want +got):\n%s", diff)
	}

	got, err := NewDoshaClassifier(tables).Classify(map[string]string{"a": "warm", "b": "heavy"})
	if err != nil {
		t.Fatalf("classify with loaded tables: %v", err)
	}
	if got.Scores != (domain.DoshaScore{Vata: 17, Pitta: 33, Kapha: 50}) {
		t.Fatalf("unexpected scores %+v", got.Scores)
	}
	if diff := cmp.Diff([]string{"Steady"}, got.Characteristics); diff != "" {
		t.Fatalf("characteristics mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Move more"}, got.Recommendations); diff != "" {
		t.Fatalf("recommendations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Eat light"}, got.FeedingHabits); diff != "" {
		t.Fatalf("feeding habits mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDoshaTables_EveryDoshaHasTexts(t *testing.T) {
	tables, err := LoadDoshaTables(strings.NewReader(sampleTablesYAML))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	c := NewDoshaClassifier(tables)
	for _, answers := range []map[string]string{
		{"q": "warm"},
		{"q": "heavy"},
		{"a": "warm", "b": "heavy"},
	} {
		got, err := c.Classify(answers)
		if err != nil {
			t.Fatalf("answers %v: %v", answers, err)
		}
		if len(got.Characteristics) == 0 || len(got.Recommendations) == 0 || len(got.FeedingHabits) == 0 {
			t.Fatalf("answers %v: expected non-empty text lists for %s, got %+v", answers, got.PrimaryDosha, got)
		}
	}
}

func TestLoadDoshaTables_Invalid(t *testing.T) {
	withoutLine := func(line string) string {
		return strings.Replace(sampleTablesYAML, line+"\n", "", 1)
	}
	cases := map[string]string{
		"empty document":         "",
		"empty vectors":          strings.Replace(sampleTablesYAML, "  warm: {vata: 1, pitta: 2}\n  heavy: {kapha: 3}\n", "", 1),
		"vectors only":           "vectors:\n  x: {vata: 1}\n",
		"unknown dosha":          strings.Replace(sampleTablesYAML, `  vata: ["Quick"]`, `  ether: ["Quick"]`, 1),
		"missing characteristic": withoutLine(`  pitta: ["Sharp"]`),
		"missing recommendation": withoutLine(`  kapha: ["Move more"]`),
		"empty feeding habits":   strings.Replace(sampleTablesYAML, `  vata: ["Eat warm"]`, `  vata: []`, 1),
	}
	for name, in := range cases {
		if _, err := LoadDoshaTables(strings.NewReader(in)); !errors.Is(err, ErrInvalidDoshaTables) {
			t.Fatalf("%s: expected ErrInvalidDoshaTables, got %v", name, err)
		}
	}

	if _, err := LoadDoshaTables(strings.NewReader(sampleTablesYAML + "extra: true\n")); err == nil || errors.Is(err, ErrInvalidDoshaTables) {
		t.Fatalf("expected a decode error for unknown top-level field, got %v", err)
	}
}

func TestLoadDoshaTablesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(sampleTablesYAML), 0o600); err != nil {
		t.Fatalf("write tables: %v", err)
	}
	tables, err := LoadDoshaTablesFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tables.Vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(tables.Vectors))
	}

	if _, err := LoadDoshaTablesFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
