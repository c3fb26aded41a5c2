// ABOUTME: One-shot analysis commands: estimate without logging.
// ABOUTME: Calls the model, prints the estimate, touches no ledger.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/coach/internal/llm"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Estimate a meal or workout without logging it",
}

var analyzeMealCmd = &cobra.Command{
	Use:   "meal <description>",
	Short: "Estimate nutrition for a meal description",
	Long: `Ask the model for a nutrition estimate and print it. Nothing is logged.

Examples:
  coach analyze meal "a bowl of oatmeal with berries"
  coach analyze meal chicken burrito with extra rice`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")

		analyzer := llm.NewAnalyzer(llm.NewClient(cfg.LLMOptions()), nil)
		n, err := analyzer.AnalyzeMeal(cmd.Context(), description)
		if err != nil {
			return err
		}

		color.Green("✓ %s", description)
		fmt.Printf("  calories: %.0f kcal\n", n.Calories)
		fmt.Printf("  protein:  %.0f g\n", n.ProteinG)
		fmt.Printf("  carbs:    %.0f g\n", n.CarbsG)
		fmt.Printf("  fats:     %.0f g\n", n.FatsG)

		return nil
	},
}

var analyzeWorkoutCmd = &cobra.Command{
	Use:   "workout <description>",
	Short: "Estimate calories burned for a workout description",
	Long: `Ask the model for a calories-burned estimate and print it. Nothing is
logged. The profile flags scale the estimate.

Examples:
  coach analyze workout "30 minutes of jogging"
  coach analyze workout --weight 85 "1 hour of swimming"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")

		p, err := profileFromFlags()
		if err != nil {
			return err
		}

		analyzer := llm.NewAnalyzer(llm.NewClient(cfg.LLMOptions()), nil)
		burned, err := analyzer.AnalyzeWorkout(cmd.Context(), description, p)
		if err != nil {
			return err
		}

		color.Green("✓ %s", description)
		fmt.Printf("  calories burned: ~%.0f kcal\n", burned)

		return nil
	},
}

func init() {
	registerProfileFlags(analyzeWorkoutCmd)
	analyzeCmd.AddCommand(analyzeMealCmd)
	analyzeCmd.AddCommand(analyzeWorkoutCmd)
	rootCmd.AddCommand(analyzeCmd)
}
