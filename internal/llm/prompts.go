// ABOUTME: Prompt templates for meal and workout analysis.
// ABOUTME: Both demand a JSON-only answer; the extractor tolerates drift.
package llm

import "fmt"

const mealSystemPrompt = "You are a nutrition analysis expert."

const mealPromptTemplate = `Analyze the following meal description and provide a reasonable estimate for its nutritional content. Your response MUST be ONLY a JSON object with the keys 'calories', 'protein_g', 'carbs_g', and 'fats_g'.

Meal: %s

JSON Output:`

const workoutSystemPrompt = "You are a fitness expert."

const workoutPromptTemplate = `Analyze the following workout description and the user's profile to provide a reasonable estimate for calories burned. The user's profile is: %s. Your response MUST be ONLY a JSON object with the key 'calories_burned'.

Workout: %s

JSON Output:`

// MealPrompt builds the user prompt for meal analysis.
func MealPrompt(mealDescription string) string {
	return fmt.Sprintf(mealPromptTemplate, mealDescription)
}

// WorkoutPrompt builds the user prompt for workout analysis.
func WorkoutPrompt(workoutDescription, profileSummary string) string {
	return fmt.Sprintf(workoutPromptTemplate, profileSummary, workoutDescription)
}
