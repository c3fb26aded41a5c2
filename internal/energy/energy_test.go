// ABOUTME: Tests for the energy-model formulas.
// ABOUTME: Covers BMR/TDEE/target scenarios and BMI bucket edges.
package energy

import (
	"math"
	"testing"

	"github.com/harperreed/coach/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBMR(t *testing.T) {
	// Male, 70kg, 175cm, age 30: 700 + 1093.75 - 150 + 5
	got := BMR(models.GenderMale, 70, 175, 30)
	if !almostEqual(got, 1648.75) {
		t.Errorf("BMR male = %f, want 1648.75", got)
	}

	// Female subtracts 161 instead of adding 5
	got = BMR(models.GenderFemale, 70, 175, 30)
	if !almostEqual(got, 1482.75) {
		t.Errorf("BMR female = %f, want 1482.75", got)
	}
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		level models.ActivityLevel
		want  float64
	}{
		{models.ActivitySedentary, 1200},
		{models.ActivityLightlyActive, 1375},
		{models.ActivityModeratelyActive, 1550},
		{models.ActivityVeryActive, 1725},
		{models.ActivityLevel("Couch Potato"), 1200}, // unknown falls back to sedentary
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got := TDEE(1000, tt.level)
			if !almostEqual(got, tt.want) {
				t.Errorf("TDEE(1000, %s) = %f, want %f", tt.level, got, tt.want)
			}
		})
	}
}

func TestCalorieTarget(t *testing.T) {
	if got := CalorieTarget(2000, models.GoalWeightLoss); !almostEqual(got, 1500) {
		t.Errorf("loss target = %f, want 1500", got)
	}
	if got := CalorieTarget(2000, models.GoalMaintenance); !almostEqual(got, 2000) {
		t.Errorf("maintenance target = %f, want 2000", got)
	}
	if got := CalorieTarget(2000, models.GoalWeightGain); !almostEqual(got, 2500) {
		t.Errorf("gain target = %f, want 2500", got)
	}
}

func TestBMI(t *testing.T) {
	got := BMI(70, 175)
	want := 70.0 / (1.75 * 1.75)
	if !almostEqual(got, want) {
		t.Errorf("BMI = %f, want %f", got, want)
	}

	if got := BMI(70, 0); got != 0 {
		t.Errorf("BMI with zero height = %f, want 0", got)
	}
	if got := BMI(70, -10); got != 0 {
		t.Errorf("BMI with negative height = %f, want 0", got)
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal weight"},
		{22.857, "Normal weight"},
		{24.9, "Overweight"},
		{29.8, "Overweight"},
		{29.9, "Obesity"},
		{40, "Obesity"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%.1f) = %s, want %s", tt.bmi, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	p := models.Profile{
		Age: 30, Gender: models.GenderMale, WeightKg: 70, HeightCm: 175,
		ActivityLevel: models.ActivitySedentary, Goal: models.GoalMaintenance,
	}
	out := Compute(p)

	if !almostEqual(out.BMR, 1648.75) {
		t.Errorf("BMR = %f, want 1648.75", out.BMR)
	}
	if !almostEqual(out.TDEE, 1978.5) {
		t.Errorf("TDEE = %f, want 1978.5", out.TDEE)
	}
	if !almostEqual(out.CalorieTarget, 1978.5) {
		t.Errorf("CalorieTarget = %f, want 1978.5", out.CalorieTarget)
	}
	if out.BMICategory != "Normal weight" {
		t.Errorf("BMICategory = %s, want Normal weight", out.BMICategory)
	}
}
