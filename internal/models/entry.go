// ABOUTME: Logged entry models: meals, workouts, and water.
// ABOUTME: Entries are immutable once created; the ledger owns them.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MealCategory is one of the six fixed meal slots.
type MealCategory string

const (
	CategoryBreakfast      MealCategory = "Breakfast"
	CategoryBreakfastSnack MealCategory = "Breakfast Snack"
	CategoryLunch          MealCategory = "Lunch"
	CategoryEveningSnack   MealCategory = "Evening Snack"
	CategoryDinner         MealCategory = "Dinner"
	CategoryDessert        MealCategory = "Dessert"
)

// AllMealCategories lists the six slots in display order.
var AllMealCategories = []MealCategory{
	CategoryBreakfast, CategoryBreakfastSnack, CategoryLunch,
	CategoryEveningSnack, CategoryDinner, CategoryDessert,
}

// IsValidMealCategory checks membership in the fixed category set.
func IsValidMealCategory(c MealCategory) bool {
	for _, mc := range AllMealCategories {
		if mc == c {
			return true
		}
	}
	return false
}

// ParseMealCategory matches a category name, tolerating case and
// underscore/hyphen separators.
func ParseMealCategory(s string) (MealCategory, error) {
	key := normalize(s)
	for _, mc := range AllMealCategories {
		if normalize(string(mc)) == key {
			return mc, nil
		}
	}
	return "", fmt.Errorf("unknown meal category: %s\nValid categories: breakfast, breakfast-snack, lunch, evening-snack, dinner, dessert", s)
}

// Nutrition is the per-meal nutrient estimate and the running-total shape.
type Nutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// Add returns the element-wise sum of two nutrition records.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		ProteinG: n.ProteinG + o.ProteinG,
		CarbsG:   n.CarbsG + o.CarbsG,
		FatsG:    n.FatsG + o.FatsG,
	}
}

// MealEntry is one logged meal in a category slot.
type MealEntry struct {
	ID          uuid.UUID
	Category    MealCategory
	Description string
	Nutrition   Nutrition
	CreatedAt   time.Time
}

// NewMealEntry creates a MealEntry with generated UUID and current timestamp.
func NewMealEntry(category MealCategory, description string, n Nutrition) *MealEntry {
	return &MealEntry{
		ID:          uuid.New(),
		Category:    category,
		Description: strings.TrimSpace(description),
		Nutrition:   n,
		CreatedAt:   time.Now(),
	}
}

// WorkoutEntry is one logged workout with its estimated burn.
type WorkoutEntry struct {
	ID             uuid.UUID
	Description    string
	CaloriesBurned float64
	CreatedAt      time.Time
}

// NewWorkoutEntry creates a WorkoutEntry with generated UUID and current timestamp.
func NewWorkoutEntry(description string, caloriesBurned float64) *WorkoutEntry {
	return &WorkoutEntry{
		ID:             uuid.New(),
		Description:    strings.TrimSpace(description),
		CaloriesBurned: caloriesBurned,
		CreatedAt:      time.Now(),
	}
}

// WaterSource distinguishes a standard glass from a bulk amount.
type WaterSource string

const (
	WaterGlass WaterSource = "glass"
	WaterBulk  WaterSource = "bulk"
)

// GlassMl is the volume logged for one standard glass.
const GlassMl = 250

// WaterEntry is one logged water intake.
type WaterEntry struct {
	ID          uuid.UUID
	Source      WaterSource
	Milliliters int
	CreatedAt   time.Time
}

// NewWaterEntry creates a WaterEntry with generated UUID and current timestamp.
func NewWaterEntry(source WaterSource, milliliters int) *WaterEntry {
	return &WaterEntry{
		ID:          uuid.New(),
		Source:      source,
		Milliliters: milliliters,
		CreatedAt:   time.Now(),
	}
}
