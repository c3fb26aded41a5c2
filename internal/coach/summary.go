// ABOUTME: Builds the flat textual summary handed to the advice generator.
// ABOUTME: Pure formatting: no business logic beyond joining and rounding.
package coach

import (
	"fmt"
	"strings"

	"github.com/harperreed/coach/internal/energy"
	"github.com/harperreed/coach/internal/ledger"
	"github.com/harperreed/coach/internal/models"
)

// Summary is the fixed-shape payload interpolated into the coach prompt.
// Every field is a display string; numbers are pre-formatted.
type Summary struct {
	UserProfile      string
	Goal             string
	BMICategory      string
	CalorieTarget    string
	AdjustedTarget   string
	CaloriesBurned   string
	TotalConsumption string
	LoggedMeals      string
	LoggedWorkouts   string
	WaterIntake      string
}

// BuildSummary assembles a deterministic snapshot of profile, energy
// outputs, and ledger state. Meal lines are "Category: description" joined
// with semicolons in category display order; empty lists render as "None".
func BuildSummary(profile models.Profile, out energy.Outputs, view ledger.View) Summary {
	var meals []string
	for _, mc := range models.AllMealCategories {
		for _, m := range view.Meals[mc] {
			meals = append(meals, fmt.Sprintf("%s: %s", mc, m.Description))
		}
	}

	var workouts []string
	for _, w := range view.Workouts {
		workouts = append(workouts, w.Description)
	}

	return Summary{
		UserProfile:      profile.Summary(),
		Goal:             string(profile.Goal),
		BMICategory:      out.BMICategory,
		CalorieTarget:    fmt.Sprintf("%.0f", out.CalorieTarget),
		AdjustedTarget:   fmt.Sprintf("%.0f", view.AdjustedTarget),
		CaloriesBurned:   fmt.Sprintf("%.0f", view.CaloriesBurned),
		TotalConsumption: fmt.Sprintf("%.0f kcal consumed", view.Totals.Calories),
		LoggedMeals:      joinOrNone(meals),
		LoggedWorkouts:   joinOrNone(workouts),
		WaterIntake:      fmt.Sprintf("%d ml", view.WaterMl),
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, "; ")
}
