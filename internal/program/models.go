// Package program generates multi-day training programs from wizard answers
// and persists the ones the user saves.
package program

import (
	"time"

	"github.com/jsalmi/liftline/internal/catalog"
)

// Goal is the primary training goal driving set and rep schemes.
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
	GoalGeneral     Goal = "general"
)

// Label returns the human-readable goal name used in program names.
func (g Goal) Label() string {
	switch g {
	case GoalStrength:
		return "Strength"
	case GoalHypertrophy:
		return "Hypertrophy"
	case GoalEndurance:
		return "Endurance"
	default:
		return "General Fitness"
	}
}

// SessionLength buckets how long one training session may take.
type SessionLength string

const (
	SessionShort  SessionLength = "short"  // 30-45 min
	SessionMedium SessionLength = "medium" // 45-60 min
	SessionLong   SessionLength = "long"   // 60-90 min
)

// Split is the weekly training split.
type Split string

const (
	SplitAuto         Split = "auto"
	SplitFullBody     Split = "full-body"
	SplitUpperLower   Split = "upper-lower"
	SplitPushPullLegs Split = "push-pull-legs"
	SplitBro          Split = "bro-split"
)

// Label returns the human-readable split name used in program names.
func (s Split) Label() string {
	switch s {
	case SplitFullBody:
		return "Full Body"
	case SplitUpperLower:
		return "Upper/Lower"
	case SplitPushPullLegs:
		return "Push Pull Legs"
	case SplitBro:
		return "Bro Split"
	default:
		return "Custom"
	}
}

// WizardAnswers is the validated outcome of the program wizard.
type WizardAnswers struct {
	Goal          Goal               `json:"goal"`
	Experience    catalog.Difficulty `json:"experience"`
	DaysPerWeek   int                `json:"days_per_week"`
	SessionLength SessionLength      `json:"session_length"`
	Equipment     []string           `json:"equipment"`
	FocusMuscles  []string           `json:"focus_muscles"`
	Split         Split              `json:"split"`
}

// Section marks which block of a training day an exercise belongs to.
type Section string

const (
	SectionWarmup   Section = "warmup"
	SectionMain     Section = "main"
	SectionCooldown Section = "cooldown"
)

// Prescription is one exercise slot in a program day.
type Prescription struct {
	ExerciseID      string           `json:"exercise_id"`
	ExerciseName    string           `json:"exercise_name"`
	Category        catalog.Category `json:"category"`
	Sets            int              `json:"sets"`
	RepsMin         int              `json:"reps_min"`
	RepsMax         int              `json:"reps_max"`
	RestSeconds     int              `json:"rest_seconds"`
	IsTimed         bool             `json:"is_timed"`
	DurationSeconds *int             `json:"duration_seconds,omitempty"`
	Section         Section          `json:"section"`
}

// Day is one training day of a program.
type Day struct {
	Name      string         `json:"name"`
	Exercises []Prescription `json:"exercises"`
}

// Program is a generated or saved training program. ID and CreatedAt are
// zero until the program is persisted.
type Program struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Goal        Goal      `json:"goal"`
	Split       Split     `json:"split"`
	DaysPerWeek int       `json:"days_per_week"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	Days        []Day     `json:"days"`
}
