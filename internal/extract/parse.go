// ABOUTME: Validation of extracted JSON candidates into typed entries.
// ABOUTME: Individual fields default to zero; only decode failures reject.
package extract

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/coach/internal/models"
)

// ParseErrorKind classifies why a candidate was rejected.
type ParseErrorKind string

const (
	// KindMalformed means the candidate was not valid JSON.
	KindMalformed ParseErrorKind = "malformed"
)

// ParseError describes a rejected JSON candidate.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s response: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseNutrition decodes a JSON candidate into a Nutrition record. Missing
// or non-numeric fields are zero-filled rather than rejected: partial
// information from the analyzer beats discarding the whole entry. Values are
// passed through unchecked, including negative or implausibly large ones.
func ParseNutrition(candidate string) (models.Nutrition, error) {
	fields, err := decodeObject(candidate)
	if err != nil {
		return models.Nutrition{}, err
	}
	return models.Nutrition{
		Calories: numericField(fields, "calories"),
		ProteinG: numericField(fields, "protein_g"),
		CarbsG:   numericField(fields, "carbs_g"),
		FatsG:    numericField(fields, "fats_g"),
	}, nil
}

// ParseWorkoutResult decodes a JSON candidate into a calories-burned figure,
// zero when absent or non-numeric.
func ParseWorkoutResult(candidate string) (float64, error) {
	fields, err := decodeObject(candidate)
	if err != nil {
		return 0, err
	}
	return numericField(fields, "calories_burned"), nil
}

func decodeObject(candidate string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return nil, &ParseError{Kind: KindMalformed, Err: err}
	}
	return fields, nil
}

func numericField(fields map[string]any, key string) float64 {
	v, ok := fields[key]
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return f
}
