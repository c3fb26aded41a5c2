// ABOUTME: One-shot energy report from profile flags.
// ABOUTME: Pure arithmetic; never touches the network.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/coach/internal/energy"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Compute BMR, TDEE, calorie target, and BMI",
	Long: `Compute the energy figures for a profile without starting a session.

BMR uses the Mifflin-St Jeor formula; TDEE scales it by activity level;
the calorie target shifts TDEE by 500 kcal toward the goal.

Examples:
  coach target --age 30 --gender male --weight 70 --height 175
  coach target --gender female --weight 62 --height 168 --goal weight-loss`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profileFromFlags()
		if err != nil {
			return err
		}

		out := energy.Compute(p)
		fmt.Printf("%s, %s, %s\n\n", p.Summary(), p.ActivityLevel, p.Goal)
		fmt.Printf("  BMR:            %.1f kcal\n", out.BMR)
		fmt.Printf("  TDEE:           %.1f kcal\n", out.TDEE)
		fmt.Printf("  BMI:            %.1f (%s)\n", out.BMI, out.BMICategory)
		color.Green("  Calorie target: %.0f kcal", out.CalorieTarget)

		return nil
	},
}

func init() {
	registerProfileFlags(targetCmd)
	rootCmd.AddCommand(targetCmd)
}
