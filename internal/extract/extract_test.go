// ABOUTME: Tests for JSON extraction and candidate validation.
// ABOUTME: Covers fence stripping, the substring heuristic, and zero-fill.
package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/harperreed/coach/internal/models"
)

func TestExtractJSONCleanInput(t *testing.T) {
	in := `{"calories": 100}`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	if got != in {
		t.Errorf("ExtractJSON(%q) = %q, want unchanged", in, got)
	}
}

func TestExtractJSONWithProse(t *testing.T) {
	in := "Sure! Here is the estimate:\n{\"calories\": 450, \"protein_g\": 20}\nHope that helps."
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	want := `{"calories": 450, "protein_g": 20}`
	if got != want {
		t.Errorf("ExtractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSONFenced(t *testing.T) {
	in := "Here you go:\n```json\n{\"calories_burned\": 250}\n```\nEnjoy!"
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}

	var decoded map[string]float64
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("extracted candidate does not decode: %v", err)
	}
	if decoded["calories_burned"] != 250 {
		t.Errorf("calories_burned = %f, want 250", decoded["calories_burned"])
	}
}

func TestExtractJSONFenceSharesLine(t *testing.T) {
	// Some models put the fence markers on the same line as the JSON.
	tests := []struct {
		name string
		in   string
	}{
		{"single line", "```json {\"calories\": 300}```"},
		{"no language tag", "``` {\"calories\": 300} ```"},
		{"opening fence attached", "```json\n{\"calories\": 300}\n```"},
		{"unbalanced", "```json {\"calories\": 300}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if err != nil {
				t.Fatalf("ExtractJSON(%q) error: %v", tt.in, err)
			}
			var decoded map[string]float64
			if err := json.Unmarshal([]byte(got), &decoded); err != nil {
				t.Fatalf("extracted candidate does not decode: %v", err)
			}
			if decoded["calories"] != 300 {
				t.Errorf("calories = %f, want 300", decoded["calories"])
			}
		})
	}
}

func TestExtractJSONMultiLine(t *testing.T) {
	in := "{\n  \"calories\": 600,\n  \"fats_g\": 22\n}"
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	if got != in {
		t.Errorf("multi-line object should pass through unchanged, got %q", got)
	}
}

func TestExtractJSONNoBraces(t *testing.T) {
	_, err := ExtractJSON("no braces here")
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON, got %v", err)
	}

	_, err = ExtractJSON("only an open { and nothing closing")
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON for unclosed brace, got %v", err)
	}
}

func TestExtractJSONGreedySpan(t *testing.T) {
	// Two fragments: the heuristic spans first open to last close.
	in := `{"a": 1} and then {"b": 2}`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	if got != in {
		t.Errorf("ExtractJSON = %q, want the full greedy span", got)
	}
}

func TestParseNutrition(t *testing.T) {
	got, err := ParseNutrition(`{"calories": 450, "protein_g": 20, "carbs_g": 60, "fats_g": 10}`)
	if err != nil {
		t.Fatalf("ParseNutrition error: %v", err)
	}
	want := models.Nutrition{Calories: 450, ProteinG: 20, CarbsG: 60, FatsG: 10}
	if got != want {
		t.Errorf("ParseNutrition = %+v, want %+v", got, want)
	}
}

func TestParseNutritionZeroFill(t *testing.T) {
	got, err := ParseNutrition(`{"calories": 300}`)
	if err != nil {
		t.Fatalf("ParseNutrition error: %v", err)
	}
	want := models.Nutrition{Calories: 300}
	if got != want {
		t.Errorf("ParseNutrition = %+v, want zero-filled %+v", got, want)
	}
}

func TestParseNutritionNonNumericField(t *testing.T) {
	got, err := ParseNutrition(`{"calories": "lots", "protein_g": 15}`)
	if err != nil {
		t.Fatalf("ParseNutrition error: %v", err)
	}
	if got.Calories != 0 {
		t.Errorf("non-numeric calories should default to 0, got %f", got.Calories)
	}
	if got.ProteinG != 15 {
		t.Errorf("ProteinG = %f, want 15", got.ProteinG)
	}
}

func TestParseNutritionMalformed(t *testing.T) {
	_, err := ParseNutrition(`{"calories": 300`)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != KindMalformed {
		t.Errorf("Kind = %s, want malformed", pe.Kind)
	}
}

func TestParseWorkoutResult(t *testing.T) {
	got, err := ParseWorkoutResult(`{"calories_burned": 300}`)
	if err != nil {
		t.Fatalf("ParseWorkoutResult error: %v", err)
	}
	if got != 300 {
		t.Errorf("ParseWorkoutResult = %f, want 300", got)
	}

	// Missing key defaults to zero, not an error.
	got, err = ParseWorkoutResult(`{"note": "great run"}`)
	if err != nil {
		t.Fatalf("ParseWorkoutResult error: %v", err)
	}
	if got != 0 {
		t.Errorf("missing calories_burned should default to 0, got %f", got)
	}
}
