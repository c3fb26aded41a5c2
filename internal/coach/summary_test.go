// ABOUTME: Tests for summary building and the advice prompt.
// ABOUTME: Verifies formatting, ordering, and None placeholders.
package coach

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/coach/internal/energy"
	"github.com/harperreed/coach/internal/ledger"
	"github.com/harperreed/coach/internal/models"
)

func testProfile() models.Profile {
	return models.Profile{
		Age: 30, Gender: models.GenderMale, WeightKg: 70, HeightCm: 175,
		ActivityLevel: models.ActivitySedentary, Goal: models.GoalMaintenance,
	}
}

func TestBuildSummary(t *testing.T) {
	p := testProfile()
	out := energy.Compute(p)

	l := ledger.New()
	if _, err := l.AppendMeal(models.CategoryLunch, "chicken wrap", models.Nutrition{Calories: 520}); err != nil {
		t.Fatalf("AppendMeal error: %v", err)
	}
	if _, err := l.AppendMeal(models.CategoryBreakfast, "oatmeal", models.Nutrition{Calories: 350}); err != nil {
		t.Fatalf("AppendMeal error: %v", err)
	}
	if _, err := l.AppendWorkout("30 minutes of jogging", 300); err != nil {
		t.Fatalf("AppendWorkout error: %v", err)
	}
	if _, err := l.AppendWater(models.WaterGlass, 250); err != nil {
		t.Fatalf("AppendWater error: %v", err)
	}

	s := BuildSummary(p, out, l.Snapshot(out.CalorieTarget))

	if s.UserProfile != "Age: 30, Gender: Male, Weight: 70.0kg" {
		t.Errorf("UserProfile = %q", s.UserProfile)
	}
	if s.Goal != "Maintenance" {
		t.Errorf("Goal = %q", s.Goal)
	}
	if s.BMICategory != "Normal weight" {
		t.Errorf("BMICategory = %q", s.BMICategory)
	}
	// 1978.5 renders as 1978: %.0f rounds ties to even.
	if s.CalorieTarget != "1978" {
		t.Errorf("CalorieTarget = %q, want 1978", s.CalorieTarget)
	}
	if s.AdjustedTarget != "2278" {
		t.Errorf("AdjustedTarget = %q, want 2278", s.AdjustedTarget)
	}
	// Meals are listed in category display order, not insertion order.
	if s.LoggedMeals != "Breakfast: oatmeal; Lunch: chicken wrap" {
		t.Errorf("LoggedMeals = %q", s.LoggedMeals)
	}
	if s.LoggedWorkouts != "30 minutes of jogging" {
		t.Errorf("LoggedWorkouts = %q", s.LoggedWorkouts)
	}
	if s.TotalConsumption != "870 kcal consumed" {
		t.Errorf("TotalConsumption = %q", s.TotalConsumption)
	}
	if s.WaterIntake != "250 ml" {
		t.Errorf("WaterIntake = %q", s.WaterIntake)
	}
}

func TestBuildSummaryEmptyLedger(t *testing.T) {
	p := testProfile()
	out := energy.Compute(p)
	s := BuildSummary(p, out, ledger.New().Snapshot(out.CalorieTarget))

	if s.LoggedMeals != "None" {
		t.Errorf("LoggedMeals = %q, want None", s.LoggedMeals)
	}
	if s.LoggedWorkouts != "None" {
		t.Errorf("LoggedWorkouts = %q, want None", s.LoggedWorkouts)
	}
	if s.TotalConsumption != "0 kcal consumed" {
		t.Errorf("TotalConsumption = %q", s.TotalConsumption)
	}
}

func TestAdvicePromptInterpolation(t *testing.T) {
	p := testProfile()
	out := energy.Compute(p)

	l := ledger.New()
	if _, err := l.AppendMeal(models.CategoryDinner, "grilled salmon", models.Nutrition{Calories: 600}); err != nil {
		t.Fatalf("AppendMeal error: %v", err)
	}

	s := BuildSummary(p, out, l.Snapshot(out.CalorieTarget))
	prompt := AdvicePrompt(s)

	for _, want := range []string{
		"Age: 30, Gender: Male, Weight: 70.0kg",
		"Primary Goal: Maintenance",
		"Dinner: grilled salmon",
		"Workouts Logged Today: None",
		"600 kcal consumed",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

type echoGenerator struct {
	lastUser string
}

func (e *echoGenerator) Complete(ctx context.Context, system, user string) (string, error) {
	e.lastUser = user
	return "Keep it up! Try a light snack next.", nil
}

func TestAdvisor(t *testing.T) {
	p := testProfile()
	out := energy.Compute(p)
	s := BuildSummary(p, out, ledger.New().Snapshot(out.CalorieTarget))

	gen := &echoGenerator{}
	got, err := NewAdvisor(gen).Advice(context.Background(), s)
	if err != nil {
		t.Fatalf("Advice error: %v", err)
	}
	if got != "Keep it up! Try a light snack next." {
		t.Errorf("Advice = %q, want generator output verbatim", got)
	}
	if !strings.Contains(gen.lastUser, "Primary Goal: Maintenance") {
		t.Error("advisor did not interpolate the summary into the prompt")
	}
}
