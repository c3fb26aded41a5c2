// ABOUTME: One user session: profile, ledger, and the action handlers.
// ABOUTME: Every action either fully applies or leaves state untouched.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/harperreed/coach/internal/cache"
	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/energy"
	"github.com/harperreed/coach/internal/ledger"
	"github.com/harperreed/coach/internal/llm"
	"github.com/harperreed/coach/internal/models"
)

// ErrNoMeals is returned when advice is requested before any meal is logged.
var ErrNoMeals = errors.New("log at least one meal to get advice")

// DefaultProfile is the starting profile, replaced wholesale by SetProfile.
var DefaultProfile = models.Profile{
	Age:           30,
	Gender:        models.GenderMale,
	WeightKg:      70,
	HeightCm:      175,
	ActivityLevel: models.ActivitySedentary,
	Goal:          models.GoalMaintenance,
}

// Session owns the in-memory state for one run of the coach: the current
// profile, its derived energy figures, and the append-only ledger. State
// lives exactly as long as the process. Actions are serialized: front ends
// hand the session one user action at a time, and the mutex keeps that true
// when a transport delivers requests concurrently.
type Session struct {
	mu       sync.Mutex
	profile  models.Profile
	energy   energy.Outputs
	ledger   *ledger.Ledger
	analyzer *llm.Analyzer
	advisor  *coach.Advisor
}

// New creates a session with the default profile and an empty ledger. The
// cache may be nil.
func New(gen llm.Generator, c *cache.Cache) *Session {
	return &Session{
		profile:  DefaultProfile,
		energy:   energy.Compute(DefaultProfile),
		ledger:   ledger.New(),
		analyzer: llm.NewAnalyzer(gen, c),
		advisor:  coach.NewAdvisor(gen),
	}
}

// SetProfile validates and replaces the profile wholesale, recomputing the
// energy outputs. Logged entries and totals are untouched.
func (s *Session) SetProfile(p models.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.energy = energy.Compute(p)
	return nil
}

// Profile returns the current profile.
func (s *Session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Energy returns the derived energy figures for the current profile.
func (s *Session) Energy() energy.Outputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.energy
}

// LogMeal analyzes a meal description and appends the result to the ledger.
// Invalid input is rejected before any external call; analysis failure means
// nothing is appended.
func (s *Session) LogMeal(ctx context.Context, category models.MealCategory, description string) (*models.MealEntry, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("please describe the meal")
	}
	if !models.IsValidMealCategory(category) {
		return nil, fmt.Errorf("unknown meal category: %s", category)
	}

	n, err := s.analyzer.AnalyzeMeal(ctx, description)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AppendMeal(category, description, n)
}

// LogWorkout analyzes a workout description against the current profile and
// appends the result to the ledger.
func (s *Session) LogWorkout(ctx context.Context, description string) (*models.WorkoutEntry, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("please describe the workout")
	}

	burned, err := s.analyzer.AnalyzeWorkout(ctx, description, s.Profile())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AppendWorkout(description, burned)
}

// LogWater appends a water intake. Zero milliliters means one standard
// glass; anything else is a bulk amount and must be positive.
func (s *Session) LogWater(milliliters int) (*models.WaterEntry, error) {
	source := models.WaterBulk
	if milliliters == 0 {
		source = models.WaterGlass
		milliliters = models.GlassMl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AppendWater(source, milliliters)
}

// Status projects the ledger against the current calorie target.
func (s *Session) Status() ledger.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot(s.energy.CalorieTarget)
}

// Summary builds the advice payload from the current state.
func (s *Session) Summary() coach.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return coach.BuildSummary(s.profile, s.energy, s.ledger.Snapshot(s.energy.CalorieTarget))
}

// Advice asks the coach for free-text advice over today's log. At least one
// meal must be logged first.
func (s *Session) Advice(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.ledger.MealCount() == 0 {
		s.mu.Unlock()
		return "", ErrNoMeals
	}
	summary := coach.BuildSummary(s.profile, s.energy, s.ledger.Snapshot(s.energy.CalorieTarget))
	s.mu.Unlock()

	return s.advisor.Advice(ctx, summary)
}
