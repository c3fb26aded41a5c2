// ABOUTME: Stateless energy-model formulas: BMR, TDEE, calorie target, BMI.
// ABOUTME: BMR uses Mifflin-St Jeor; TDEE applies activity multipliers.
package energy

import (
	"github.com/harperreed/coach/internal/models"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
}

// BMR computes basal metabolic rate via Mifflin-St Jeor.
func BMR(gender models.Gender, weightKg, heightCm float64, age int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity multiplier. Unknown levels fall back to
// sedentary rather than failing.
func TDEE(bmr float64, level models.ActivityLevel) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

// CalorieTarget shifts TDEE by the goal: -500 for loss, +500 for gain.
func CalorieTarget(tdee float64, goal models.Goal) float64 {
	switch goal {
	case models.GoalWeightLoss:
		return tdee - 500
	case models.GoalWeightGain:
		return tdee + 500
	default:
		return tdee
	}
}

// BMI computes weight / height², height in meters. Returns 0 when height
// is non-positive instead of dividing by zero.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// BMICategory buckets a BMI value. Bucket edges are 18.5, 24.9, and 29.9.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal weight"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// Outputs bundles the derived energy figures for one profile.
type Outputs struct {
	BMR           float64
	TDEE          float64
	CalorieTarget float64
	BMI           float64
	BMICategory   string
}

// Compute derives all energy-model outputs from a profile.
func Compute(p models.Profile) Outputs {
	bmr := BMR(p.Gender, p.WeightKg, p.HeightCm, p.Age)
	tdee := TDEE(bmr, p.ActivityLevel)
	bmi := BMI(p.WeightKg, p.HeightCm)
	return Outputs{
		BMR:           bmr,
		TDEE:          tdee,
		CalorieTarget: CalorieTarget(tdee, p.Goal),
		BMI:           bmi,
		BMICategory:   BMICategory(bmi),
	}
}
