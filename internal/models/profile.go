// ABOUTME: User profile model with gender, activity level, and goal enums.
// ABOUTME: Profiles are replaced wholesale on update and never persisted.
package models

import (
	"fmt"
	"strings"
)

// Gender selects the BMR formula variant.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
)

// Goal shifts the daily calorie target relative to TDEE.
type Goal string

const (
	GoalWeightLoss  Goal = "Weight Loss"
	GoalMaintenance Goal = "Maintenance"
	GoalWeightGain  Goal = "Weight Gain"
)

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLightlyActive,
	ActivityModeratelyActive, ActivityVeryActive,
}

// AllGoals returns all valid goals.
var AllGoals = []Goal{GoalWeightLoss, GoalMaintenance, GoalWeightGain}

// Profile holds the user's physical stats and goal for one session.
type Profile struct {
	Age           int
	Gender        Gender
	WeightKg      float64
	HeightCm      float64
	ActivityLevel ActivityLevel
	Goal          Goal
}

// ParseGender matches a gender string case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	}
	return "", fmt.Errorf("unknown gender: %s (use male or female)", s)
}

// ParseActivityLevel matches an activity level, tolerating underscores and
// hyphens in place of spaces.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	key := normalize(s)
	for _, a := range AllActivityLevels {
		if normalize(string(a)) == key {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown activity level: %s (use sedentary, lightly-active, moderately-active, or very-active)", s)
}

// ParseGoal matches a goal, tolerating underscores and hyphens.
func ParseGoal(s string) (Goal, error) {
	key := normalize(s)
	switch key {
	case "weightloss", "loss", "lose":
		return GoalWeightLoss, nil
	case "maintenance", "maintain":
		return GoalMaintenance, nil
	case "weightgain", "gain":
		return GoalWeightGain, nil
	}
	return "", fmt.Errorf("unknown goal: %s (use weight-loss, maintenance, or weight-gain)", s)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// Validate checks that all profile fields carry usable values.
func (p Profile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("age must be positive, got %d", p.Age)
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return fmt.Errorf("unknown gender: %s", p.Gender)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive, got %.1f", p.WeightKg)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("height must be positive, got %.1f", p.HeightCm)
	}
	if p.Goal != GoalWeightLoss && p.Goal != GoalMaintenance && p.Goal != GoalWeightGain {
		return fmt.Errorf("unknown goal: %s", p.Goal)
	}
	return nil
}

// Summary renders the short profile line interpolated into coach prompts.
func (p Profile) Summary() string {
	return fmt.Sprintf("Age: %d, Gender: %s, Weight: %.1fkg", p.Age, p.Gender, p.WeightKg)
}

// WorkoutSummary renders the profile line used by the workout analyzer,
// which wants weight first.
func (p Profile) WorkoutSummary() string {
	return fmt.Sprintf("Weight: %.1fkg, Age: %d, Gender: %s", p.WeightKg, p.Age, p.Gender)
}
