// ABOUTME: In-memory session ledger owning all logged entries and totals.
// ABOUTME: Append-only; totals always equal the sum of their entries.
package ledger

import (
	"fmt"
	"strings"

	"github.com/harperreed/coach/internal/models"
)

// Ledger accumulates one session's meals, workouts, and water. It is created
// empty, mutated append-only, and discarded with the session. Preconditions
// are checked before any state is touched, so a failed append leaves the
// ledger exactly as it was.
type Ledger struct {
	meals        map[models.MealCategory][]*models.MealEntry
	totals       models.Nutrition
	workouts     []*models.WorkoutEntry
	burnedTotal  float64
	water        []*models.WaterEntry
	waterMlTotal int
}

// New creates an empty ledger with all six meal categories present.
func New() *Ledger {
	meals := make(map[models.MealCategory][]*models.MealEntry, len(models.AllMealCategories))
	for _, mc := range models.AllMealCategories {
		meals[mc] = []*models.MealEntry{}
	}
	return &Ledger{meals: meals}
}

// AppendMeal records a meal in its category slot and folds its nutrition
// into the running totals.
func (l *Ledger) AppendMeal(category models.MealCategory, description string, n models.Nutrition) (*models.MealEntry, error) {
	if !models.IsValidMealCategory(category) {
		return nil, fmt.Errorf("unknown meal category: %s", category)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("meal description is empty")
	}

	entry := models.NewMealEntry(category, description, n)
	l.meals[category] = append(l.meals[category], entry)
	l.totals = l.totals.Add(n)
	return entry, nil
}

// AppendWorkout records a workout and adds its burn to the running total.
func (l *Ledger) AppendWorkout(description string, caloriesBurned float64) (*models.WorkoutEntry, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("workout description is empty")
	}

	entry := models.NewWorkoutEntry(description, caloriesBurned)
	l.workouts = append(l.workouts, entry)
	l.burnedTotal += caloriesBurned
	return entry, nil
}

// AppendWater records a water intake and adds it to the running total.
func (l *Ledger) AppendWater(source models.WaterSource, milliliters int) (*models.WaterEntry, error) {
	if source != models.WaterGlass && source != models.WaterBulk {
		return nil, fmt.Errorf("unknown water source: %s", source)
	}
	if milliliters <= 0 {
		return nil, fmt.Errorf("water amount must be positive, got %d ml", milliliters)
	}

	entry := models.NewWaterEntry(source, milliliters)
	l.water = append(l.water, entry)
	l.waterMlTotal += milliliters
	return entry, nil
}

// View is a read-only projection of ledger state plus derived figures for
// a given base calorie target.
type View struct {
	Meals          map[models.MealCategory][]*models.MealEntry
	Totals         models.Nutrition
	Workouts       []*models.WorkoutEntry
	CaloriesBurned float64
	WaterMl        int

	BaseTarget        float64
	AdjustedTarget    float64
	CaloriesRemaining float64
	ProgressFraction  float64
}

// Snapshot projects the current state against a base calorie target supplied
// by the energy model. The adjusted target credits calories burned; progress
// is consumed over adjusted, clamped to [0, 1], and 0 when the adjusted
// target is not positive.
func (l *Ledger) Snapshot(baseTarget float64) View {
	meals := make(map[models.MealCategory][]*models.MealEntry, len(l.meals))
	for mc, entries := range l.meals {
		meals[mc] = append([]*models.MealEntry(nil), entries...)
	}

	adjusted := baseTarget + l.burnedTotal
	progress := 0.0
	if adjusted > 0 {
		progress = l.totals.Calories / adjusted
		if progress > 1 {
			progress = 1
		}
		if progress < 0 {
			progress = 0
		}
	}

	return View{
		Meals:             meals,
		Totals:            l.totals,
		Workouts:          append([]*models.WorkoutEntry(nil), l.workouts...),
		CaloriesBurned:    l.burnedTotal,
		WaterMl:           l.waterMlTotal,
		BaseTarget:        baseTarget,
		AdjustedTarget:    adjusted,
		CaloriesRemaining: adjusted - l.totals.Calories,
		ProgressFraction:  progress,
	}
}

// MealCount returns the number of meals logged across all categories.
func (l *Ledger) MealCount() int {
	n := 0
	for _, entries := range l.meals {
		n += len(entries)
	}
	return n
}

// Empty reports whether nothing has been logged yet.
func (l *Ledger) Empty() bool {
	return l.MealCount() == 0 && len(l.workouts) == 0 && len(l.water) == 0
}
