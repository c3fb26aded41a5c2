// ABOUTME: Advice generation from the daily summary.
// ABOUTME: Output is displayed as-is; nothing here is parsed back.
package coach

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/llm"
)

const adviceSystemPrompt = "You are an encouraging and helpful AI Diet Coach. Your goal is to provide actionable insights and suggestions based on the user's progress today. Keep your tone positive and motivating."

const advicePromptTemplate = `Here is the user's data for today:
------------------------
User Profile: %s
Primary Goal: %s
BMI Category: %s
Original Daily Calorie Target: %s kcal
Workouts Logged Today: %s
Calories Burned from Workouts: %s kcal
Adjusted Daily Calorie Target (Original + Burned): %s kcal
Meals Logged Today: %s
Total Consumption Today: %s
Water Intake Today: %s
------------------------

Based on all the information above, please provide the following in a clear, structured Markdown format:
1. **Insight:** A brief, positive analysis of their progress. Mention their workout and compare their consumption to their Adjusted Calorie Target.
2. **Next Meal Suggestion:** Suggest a specific, healthy meal or snack suitable for their remaining calories.
3. **Recovery Tip:** A short tip related to their workout, like stretching or hydration.`

// AdvicePrompt renders the user prompt for the advice call.
func AdvicePrompt(s Summary) string {
	return fmt.Sprintf(advicePromptTemplate,
		s.UserProfile, s.Goal, s.BMICategory, s.CalorieTarget,
		s.LoggedWorkouts, s.CaloriesBurned, s.AdjustedTarget,
		s.LoggedMeals, s.TotalConsumption, s.WaterIntake)
}

// Advisor asks the generator for coaching advice over a summary.
type Advisor struct {
	gen llm.Generator
}

// NewAdvisor creates an Advisor.
func NewAdvisor(gen llm.Generator) *Advisor {
	return &Advisor{gen: gen}
}

// Advice returns free-text coaching advice for the summary. The response is
// consumed only for display, so it is returned verbatim.
func (a *Advisor) Advice(ctx context.Context, s Summary) (string, error) {
	text, err := a.gen.Complete(ctx, adviceSystemPrompt, AdvicePrompt(s))
	if err != nil {
		return "", fmt.Errorf("could not get advice: %w", err)
	}
	return text, nil
}
