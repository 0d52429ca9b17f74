package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"prakriti-api/internal/domain"
	"prakriti-api/internal/service"
)

func TestParseChoice(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"2\n", 2, true},
		{"  3 ", 3, true},
		{"\n", 0, true},
		{"0", 0, false},
		{"4", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseChoice(tc.in, 3)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("parseChoice(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestCollectAnswers_RetriesAndSkips(t *testing.T) {
	questions := service.Questionnaire()[:3]
	input := "9\n1\n\n3\n"
	var out bytes.Buffer

	answers := collectAnswers(bufio.NewReader(strings.NewReader(input)), &out, questions)

	want := map[string]string{
		"body_frame": "lightSlim",
		"hair_type":  "thickCurlyOily",
	}
	if len(answers) != len(want) {
		t.Fatalf("expected %v, got %v", want, answers)
	}
	for k, v := range want {
		if answers[k] != v {
			t.Fatalf("expected %s=%s, got %v", k, v, answers)
		}
	}
	if !strings.Contains(out.String(), "Opcion invalida.") {
		t.Fatalf("expected retry message in output")
	}
}

func TestCollectAnswers_StopsAtEOF(t *testing.T) {
	questions := service.Questionnaire()
	var out bytes.Buffer
	answers := collectAnswers(bufio.NewReader(strings.NewReader("2\n")), &out, questions)
	if len(answers) != 1 || answers["body_frame"] != "mediumMusclular" {
		t.Fatalf("unexpected answers %v", answers)
	}
	if strings.Contains(out.String(), questions[2].Label) {
		t.Fatalf("expected no questions after end of input:\n%s", out.String())
	}

	out.Reset()
	answers = collectAnswers(bufio.NewReader(strings.NewReader("3")), &out, questions)
	if len(answers) != 1 || answers["body_frame"] != "heavyRobust" {
		t.Fatalf("expected last line without newline to count, got %v", answers)
	}
	if strings.Contains(out.String(), questions[1].Label) {
		t.Fatalf("expected no questions after end of input:\n%s", out.String())
	}
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, domain.ClassificationResult{
		PrimaryDosha:    domain.DoshaPitta,
		SecondaryDosha:  domain.DoshaVata,
		Scores:          domain.DoshaScore{Vata: 40, Pitta: 60},
		Characteristics: []string{"Sharp intellect and focus"},
	})
	got := out.String()
	for _, s := range []string{"Dosha primario: pitta", "Vata 40% | Pitta 60% | Kapha 0%", "  - Sharp intellect and focus"} {
		if !strings.Contains(got, s) {
			t.Fatalf("expected %q in output:\n%s", s, got)
		}
	}
}

func TestRunAssessment_JSON(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("3\n3\n")
	classifier := service.NewDoshaClassifier(service.DefaultDoshaTables())

	if err := runAssessment(in, &out, classifier, true, zap.NewNop()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	raw := out.String()
	var got domain.ClassificationResult
	if err := json.Unmarshal([]byte(raw[strings.Index(raw, "{"):]), &got); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, raw)
	}
	if got.PrimaryDosha != domain.DoshaKapha || got.Scores.Kapha != 100 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestRunAssessment_NoAnswers(t *testing.T) {
	var out bytes.Buffer
	classifier := service.NewDoshaClassifier(service.DefaultDoshaTables())

	err := runAssessment(strings.NewReader(""), &out, classifier, false, zap.NewNop())
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(out.String(), "No hay respuestas suficientes") {
		t.Fatalf("expected message about missing answers")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := rootCmd()
	for _, name := range []string{"tables", "json"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("expected flag --%s", name)
		}
	}
	cmd.SetArgs([]string{"--tables", "/does/not/exist.yaml"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for missing tables file")
	}
}
