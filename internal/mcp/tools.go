// ABOUTME: MCP tool implementations for the coach session.
// ABOUTME: Profile, meal, workout, water, status, and advice actions.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coach/internal/models"
)

func (s *Server) registerTools() {
	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Replace the user profile (age, gender, weight, height, activity level, goal)",
	}, s.handleSetProfile)

	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Analyze a free-text meal description and add it to today's log",
	}, s.handleLogMeal)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Analyze a free-text workout description and add it to today's log",
	}, s.handleLogWorkout)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Log water intake; omit milliliters for one standard glass",
	}, s.handleLogWater)

	// get_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Get today's totals, targets, and progress",
	}, s.handleGetStatus)

	// get_advice
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_advice",
		Description: "Get coaching advice based on today's log",
	}, s.handleGetAdvice)
}

// Tool input/output types

type setProfileInput struct {
	Age           int     `json:"age" jsonschema:"Age in years"`
	Gender        string  `json:"gender" jsonschema:"male or female"`
	WeightKg      float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	HeightCm      float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	ActivityLevel string  `json:"activity_level" jsonschema:"sedentary, lightly-active, moderately-active, or very-active"`
	Goal          string  `json:"goal" jsonschema:"weight-loss, maintenance, or weight-gain"`
}

type profileOutput struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	CalorieTarget float64 `json:"calorie_target"`
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
	Message       string  `json:"message"`
}

type logMealInput struct {
	Category    string `json:"category" jsonschema:"Meal slot (breakfast, breakfast-snack, lunch, evening-snack, dinner, dessert)"`
	Description string `json:"description" jsonschema:"Free-text meal description"`
}

type mealOutput struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
	Message  string  `json:"message"`
}

type logWorkoutInput struct {
	Description string `json:"description" jsonschema:"Free-text workout description"`
}

type workoutOutput struct {
	ID             string  `json:"id"`
	CaloriesBurned float64 `json:"calories_burned"`
	Message        string  `json:"message"`
}

type logWaterInput struct {
	Milliliters int `json:"milliliters,omitempty" jsonschema:"Amount in ml; omit for one 250 ml glass"`
}

type waterOutput struct {
	Milliliters  int    `json:"milliliters"`
	WaterMlTotal int    `json:"water_ml_total"`
	Message      string `json:"message"`
}

type statusOutput struct {
	BaseTarget       float64 `json:"base_calorie_target"`
	AdjustedTarget   float64 `json:"adjusted_calorie_target"`
	Consumed         float64 `json:"calories_consumed"`
	Remaining        float64 `json:"calories_remaining"`
	ProgressFraction float64 `json:"progress_fraction"`
	ProteinG         float64 `json:"protein_g"`
	CarbsG           float64 `json:"carbs_g"`
	FatsG            float64 `json:"fats_g"`
	CaloriesBurned   float64 `json:"calories_burned"`
	WaterMl          int     `json:"water_ml"`
	MealsLogged      int     `json:"meals_logged"`
	WorkoutsLogged   int     `json:"workouts_logged"`
}

type emptyInput struct{}

type adviceOutput struct {
	Advice string `json:"advice"`
}

// Tool handlers

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	gender, err := models.ParseGender(input.Gender)
	if err != nil {
		return nil, profileOutput{}, err
	}
	activity, err := models.ParseActivityLevel(input.ActivityLevel)
	if err != nil {
		return nil, profileOutput{}, err
	}
	goal, err := models.ParseGoal(input.Goal)
	if err != nil {
		return nil, profileOutput{}, err
	}

	p := models.Profile{
		Age:           input.Age,
		Gender:        gender,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		ActivityLevel: activity,
		Goal:          goal,
	}
	if err := s.session.SetProfile(p); err != nil {
		return nil, profileOutput{}, err
	}

	out := s.session.Energy()
	return nil, profileOutput{
		BMR:           out.BMR,
		TDEE:          out.TDEE,
		CalorieTarget: out.CalorieTarget,
		BMI:           out.BMI,
		BMICategory:   out.BMICategory,
		Message:       fmt.Sprintf("Profile updated. Base calorie target: %.0f kcal", out.CalorieTarget),
	}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, mealOutput, error) {
	category, err := models.ParseMealCategory(input.Category)
	if err != nil {
		return nil, mealOutput{}, err
	}

	entry, err := s.session.LogMeal(ctx, category, input.Description)
	if err != nil {
		return nil, mealOutput{}, err
	}

	return nil, mealOutput{
		ID:       entry.ID.String()[:8],
		Category: string(entry.Category),
		Calories: entry.Nutrition.Calories,
		ProteinG: entry.Nutrition.ProteinG,
		CarbsG:   entry.Nutrition.CarbsG,
		FatsG:    entry.Nutrition.FatsG,
		Message:  fmt.Sprintf("%s logged: ~%.0f kcal (ID: %s)", entry.Category, entry.Nutrition.Calories, entry.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	entry, err := s.session.LogWorkout(ctx, input.Description)
	if err != nil {
		return nil, workoutOutput{}, err
	}

	return nil, workoutOutput{
		ID:             entry.ID.String()[:8],
		CaloriesBurned: entry.CaloriesBurned,
		Message:        fmt.Sprintf("Workout logged: ~%.0f kcal burned (ID: %s)", entry.CaloriesBurned, entry.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, waterOutput, error) {
	entry, err := s.session.LogWater(input.Milliliters)
	if err != nil {
		return nil, waterOutput{}, err
	}

	total := s.session.Status().WaterMl
	return nil, waterOutput{
		Milliliters:  entry.Milliliters,
		WaterMlTotal: total,
		Message:      fmt.Sprintf("Logged %d ml of water (%d ml today)", entry.Milliliters, total),
	}, nil
}

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, statusOutput, error) {
	v := s.session.Status()
	return nil, statusOutput{
		BaseTarget:       v.BaseTarget,
		AdjustedTarget:   v.AdjustedTarget,
		Consumed:         v.Totals.Calories,
		Remaining:        v.CaloriesRemaining,
		ProgressFraction: v.ProgressFraction,
		ProteinG:         v.Totals.ProteinG,
		CarbsG:           v.Totals.CarbsG,
		FatsG:            v.Totals.FatsG,
		CaloriesBurned:   v.CaloriesBurned,
		WaterMl:          v.WaterMl,
		MealsLogged:      mealCount(v),
		WorkoutsLogged:   len(v.Workouts),
	}, nil
}

func (s *Server) handleGetAdvice(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, adviceOutput, error) {
	advice, err := s.session.Advice(ctx)
	if err != nil {
		return nil, adviceOutput{}, err
	}
	return nil, adviceOutput{Advice: advice}, nil
}
