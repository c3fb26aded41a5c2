// ABOUTME: Analysis pipeline: generate, extract, validate.
// ABOUTME: The single place where unreliable model text becomes typed data.
package llm

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/cache"
	"github.com/harperreed/coach/internal/extract"
	"github.com/harperreed/coach/internal/models"
)

// Analyzer turns free-text descriptions into validated numeric estimates by
// way of the generator. Either the whole pipeline succeeds or the caller
// gets an error and nothing to append.
type Analyzer struct {
	gen   Generator
	cache *cache.Cache
}

// NewAnalyzer creates an Analyzer. The cache may be nil.
func NewAnalyzer(gen Generator, c *cache.Cache) *Analyzer {
	return &Analyzer{gen: gen, cache: c}
}

// AnalyzeMeal estimates the nutritional content of a meal description.
func (a *Analyzer) AnalyzeMeal(ctx context.Context, description string) (models.Nutrition, error) {
	raw, err := a.generate(ctx, "meal", description, mealSystemPrompt, MealPrompt(description))
	if err != nil {
		return models.Nutrition{}, err
	}

	candidate, err := extract.ExtractJSON(raw)
	if err != nil {
		return models.Nutrition{}, fmt.Errorf("could not understand that meal: %w", err)
	}

	n, err := extract.ParseNutrition(candidate)
	if err != nil {
		return models.Nutrition{}, fmt.Errorf("could not understand that meal: %w", err)
	}
	return n, nil
}

// AnalyzeWorkout estimates calories burned for a workout description, using
// the profile to scale the estimate.
func (a *Analyzer) AnalyzeWorkout(ctx context.Context, description string, profile models.Profile) (float64, error) {
	user := WorkoutPrompt(description, profile.WorkoutSummary())
	cacheKey := profile.WorkoutSummary() + "|" + description

	raw, err := a.generate(ctx, "workout", cacheKey, workoutSystemPrompt, user)
	if err != nil {
		return 0, err
	}

	candidate, err := extract.ExtractJSON(raw)
	if err != nil {
		return 0, fmt.Errorf("could not analyze workout: %w", err)
	}

	burned, err := extract.ParseWorkoutResult(candidate)
	if err != nil {
		return 0, fmt.Errorf("could not analyze workout: %w", err)
	}
	return burned, nil
}

// generate returns the raw model response, consulting the cache first.
// Responses are cached once generation succeeds; transport failures are not,
// so a failed request can be retried by resubmitting.
func (a *Analyzer) generate(ctx context.Context, kind, cacheKey, system, user string) (string, error) {
	if a.cache != nil {
		if raw, ok := a.cache.Get(kind, cacheKey); ok {
			return raw, nil
		}
	}

	raw, err := a.gen.Complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}

	if a.cache != nil {
		a.cache.Put(kind, cacheKey, raw)
	}
	return raw, nil
}
