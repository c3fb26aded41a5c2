// ABOUTME: Root Cobra command for coach CLI.
// ABOUTME: Loads configuration and registers shared profile flags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/models"
)

var cfg *config.Config

var (
	profileAge      int
	profileGender   string
	profileWeight   float64
	profileHeight   float64
	profileActivity string
	profileGoal     string
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "AI diet and fitness coach",
	Long: `Coach is a single-session diet and fitness tracker with an AI brain.

Describe meals and workouts in plain text; coach asks a language model for
calorie and macro estimates, keeps running daily totals, and generates
coaching advice from your progress.

QUICK START:

  $ coach session --age 30 --gender male --weight 70 --height 175
  > breakfast a bowl of oatmeal with berries
  > workout 30 minutes of jogging
  > water 500
  > status
  > advice

ONE-SHOT COMMANDS:

  $ coach target --weight 70 --height 175    # BMR/TDEE/calorie target, no AI
  $ coach analyze meal "chicken burrito"     # Single nutrition estimate
  $ coach analyze workout "5k easy run"      # Single calories-burned estimate

MCP INTEGRATION:

  Run 'coach mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. The session ledger
  lives for the life of the server process.

CONFIGURATION:

  Set COACH_API_KEY (environment or .env file) to your API key.
  COACH_BASE_URL and COACH_MODEL select an OpenAI-compatible endpoint and
  model. Defaults can also be written to ~/.config/coach/config.json.

All logged data is in-memory for one session. Nothing is persisted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

// registerProfileFlags attaches the shared profile flags to a command.
func registerProfileFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&profileAge, "age", 30, "age in years")
	cmd.Flags().StringVar(&profileGender, "gender", "male", "male or female")
	cmd.Flags().Float64Var(&profileWeight, "weight", 70, "weight in kg")
	cmd.Flags().Float64Var(&profileHeight, "height", 175, "height in cm")
	cmd.Flags().StringVar(&profileActivity, "activity", "sedentary", "sedentary, lightly-active, moderately-active, or very-active")
	cmd.Flags().StringVar(&profileGoal, "goal", "maintenance", "weight-loss, maintenance, or weight-gain")
}

// profileFromFlags builds and validates a profile from the shared flags.
func profileFromFlags() (models.Profile, error) {
	gender, err := models.ParseGender(profileGender)
	if err != nil {
		return models.Profile{}, err
	}
	activity, err := models.ParseActivityLevel(profileActivity)
	if err != nil {
		return models.Profile{}, err
	}
	goal, err := models.ParseGoal(profileGoal)
	if err != nil {
		return models.Profile{}, err
	}

	p := models.Profile{
		Age:           profileAge,
		Gender:        gender,
		WeightKg:      profileWeight,
		HeightCm:      profileHeight,
		ActivityLevel: activity,
		Goal:          goal,
	}
	if err := p.Validate(); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}
