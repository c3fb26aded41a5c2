// ABOUTME: Interactive session command: the main front end.
// ABOUTME: One REPL process equals one session; state dies with it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/coach/internal/cache"
	"github.com/harperreed/coach/internal/llm"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Start an interactive tracking session",
	Long: `Start an interactive session. Everything you log accumulates in memory
until you quit; nothing is persisted.

COMMANDS INSIDE THE SESSION:

  breakfast <desc>         Log a meal into a slot. Slots: breakfast,
  breakfast-snack <desc>   breakfast-snack, lunch, evening-snack,
  lunch <desc>             dinner, dessert.
  evening-snack <desc>
  dinner <desc>
  dessert <desc>
  workout <desc>           Log a workout, e.g. "30 minutes of jogging"
  water [ml]               Log water; no amount means one 250 ml glass
  status                   Show targets, totals, and progress
  log                      Show everything logged so far
  profile                  Show the current profile and targets
  advice                   Ask the coach for advice
  help                     Show this list
  quit                     End the session

Examples:
  coach session --age 28 --gender female --weight 62 --height 168 --goal weight-loss`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profileFromFlags()
		if err != nil {
			return err
		}

		sess, cleanup := newSession()
		defer cleanup()

		if err := sess.SetProfile(p); err != nil {
			return err
		}

		out := sess.Energy()
		color.Green("✓ Session started")
		fmt.Printf("  %s\n", p.Summary())
		fmt.Printf("  BMI %.1f (%s)\n", out.BMI, out.BMICategory)
		fmt.Printf("  Base calorie target: %.0f kcal\n", out.CalorieTarget)
		fmt.Println("  Type 'help' for commands, 'quit' to end the session.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				break
			}
			runAction(cmd.Context(), sess, line, os.Stdout)
		}
		return scanner.Err()
	},
}

// newSession wires the generator and optional cache into a fresh session.
func newSession() (*session.Session, func()) {
	client := llm.NewClient(cfg.LLMOptions())

	cleanup := func() {}
	var c *cache.Cache
	if !cfg.NoCache {
		opened, err := cache.Open()
		if err == nil {
			c = opened
			cleanup = func() { _ = opened.Close() }
		}
	}
	return session.New(client, c), cleanup
}

// runAction dispatches one session command. Errors are printed, never
// returned: a failed action leaves the session running and untouched.
func runAction(ctx context.Context, sess *session.Session, line string, w io.Writer) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	warn := color.New(color.FgYellow)

	if category, err := models.ParseMealCategory(cmd); err == nil {
		if rest == "" {
			warn.Fprintf(w, "⚠ Please describe your %s.\n", strings.ToLower(string(category)))
			return
		}
		entry, err := sess.LogMeal(ctx, category, rest)
		if err != nil {
			warn.Fprintf(w, "⚠ %v\n", err)
			return
		}
		color.New(color.FgGreen).Fprintf(w, "✓ %s logged: ~%.0f kcal\n", entry.Category, entry.Nutrition.Calories)
		fmt.Fprintf(w, "  protein %.0fg | carbs %.0fg | fats %.0fg\n",
			entry.Nutrition.ProteinG, entry.Nutrition.CarbsG, entry.Nutrition.FatsG)
		return
	}

	switch cmd {
	case "workout":
		if rest == "" {
			warn.Fprintln(w, "⚠ Please describe your workout.")
			return
		}
		entry, err := sess.LogWorkout(ctx, rest)
		if err != nil {
			warn.Fprintf(w, "⚠ %v\n", err)
			return
		}
		color.New(color.FgGreen).Fprintf(w, "✓ Workout logged: ~%.0f kcal burned\n", entry.CaloriesBurned)

	case "water":
		ml := 0
		if rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil {
				warn.Fprintf(w, "⚠ Invalid amount: %s\n", rest)
				return
			}
			ml = n
		}
		entry, err := sess.LogWater(ml)
		if err != nil {
			warn.Fprintf(w, "⚠ %v\n", err)
			return
		}
		color.New(color.FgGreen).Fprintf(w, "✓ Logged %d ml of water (%d ml today)\n",
			entry.Milliliters, sess.Status().WaterMl)

	case "status":
		printStatus(sess, w)

	case "log":
		printLog(sess, w)

	case "profile":
		p := sess.Profile()
		out := sess.Energy()
		fmt.Fprintf(w, "%s, %s, %s\n", p.Summary(), p.ActivityLevel, p.Goal)
		fmt.Fprintf(w, "BMR %.0f | TDEE %.0f | target %.0f kcal | BMI %.1f (%s)\n",
			out.BMR, out.TDEE, out.CalorieTarget, out.BMI, out.BMICategory)

	case "advice":
		advice, err := sess.Advice(ctx)
		if err != nil {
			warn.Fprintf(w, "⚠ %v\n", err)
			return
		}
		fmt.Fprintln(w, advice)

	case "help":
		fmt.Fprintln(w, "Commands: breakfast, breakfast-snack, lunch, evening-snack, dinner, dessert,")
		fmt.Fprintln(w, "          workout, water, status, log, profile, advice, help, quit")

	default:
		warn.Fprintf(w, "⚠ Unknown command: %s (try 'help')\n", cmd)
	}
}

func printStatus(sess *session.Session, w io.Writer) {
	v := sess.Status()
	fmt.Fprintf(w, "Adjusted target: %.0f kcal (base %.0f + %.0f burned)\n",
		v.AdjustedTarget, v.BaseTarget, v.CaloriesBurned)
	fmt.Fprintf(w, "Consumed:        %.0f kcal\n", v.Totals.Calories)
	fmt.Fprintf(w, "Remaining:       %.0f kcal\n", v.CaloriesRemaining)
	fmt.Fprintf(w, "Progress:        %s %.0f%%\n", progressBar(v.ProgressFraction), v.ProgressFraction*100)
	fmt.Fprintf(w, "Macros:          protein %.0fg | carbs %.0fg | fats %.0fg\n",
		v.Totals.ProteinG, v.Totals.CarbsG, v.Totals.FatsG)
	fmt.Fprintf(w, "Water:           %d ml\n", v.WaterMl)
}

func printLog(sess *session.Session, w io.Writer) {
	v := sess.Status()
	faint := color.New(color.Faint)
	empty := true

	for _, mc := range models.AllMealCategories {
		entries := v.Meals[mc]
		if len(entries) == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(w, "%s\n", mc)
		for _, m := range entries {
			fmt.Fprintf(w, "  %s %s %s\n",
				faint.Sprint(m.ID.String()[:8]), m.Description,
				faint.Sprintf("(%.0f kcal)", m.Nutrition.Calories))
		}
	}
	if len(v.Workouts) > 0 {
		empty = false
		fmt.Fprintln(w, "Workouts")
		for _, wo := range v.Workouts {
			fmt.Fprintf(w, "  %s %s %s\n",
				faint.Sprint(wo.ID.String()[:8]), wo.Description,
				faint.Sprintf("(%.0f kcal burned)", wo.CaloriesBurned))
		}
	}
	if empty {
		fmt.Fprintln(w, "Log a meal or workout to get started.")
	}
}

func progressBar(fraction float64) string {
	const width = 20
	filled := int(fraction * width)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func init() {
	registerProfileFlags(sessionCmd)
	rootCmd.AddCommand(sessionCmd)
}
