// Package catalog provides the exercise catalog: a built-in exercise table,
// an optional ExerciseDB API client, and a cached merge of the two.
package catalog

import "slices"

// Category represents the type of exercise.
type Category string

const (
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
	CategoryCardio    Category = "cardio"
	CategoryWarmup    Category = "warmup"
	CategoryStretch   Category = "stretch"
)

// Difficulty buckets exercises into experience tiers.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Variation points at another exercise in the catalog.
type Variation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProgressionEdges describes how to scale an exercise up or down, or sideways
// to a comparable variation. All edges are optional.
type ProgressionEdges struct {
	Easier       *Variation  `json:"easier,omitempty"`
	Harder       *Variation  `json:"harder,omitempty"`
	Alternatives []Variation `json:"alternatives,omitempty"`
}

// Exercise is an immutable catalog entry.
type Exercise struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Category         Category         `json:"category"`
	MuscleGroups     []string         `json:"muscle_groups"`
	Equipment        []string         `json:"equipment"`
	Difficulty       Difficulty       `json:"difficulty"`
	IsTimed          bool             `json:"is_timed,omitempty"`
	DurationSeconds  int              `json:"duration_seconds,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	SecondaryMuscles []string         `json:"secondary_muscles,omitempty"`
	Progression      ProgressionEdges `json:"progression,omitzero"`
}

// BodyweightEquipment is the equipment name marking an equipment-free exercise.
const BodyweightEquipment = "Bodyweight"

// IsBodyweight reports whether the exercise is trained without external load.
func (e Exercise) IsBodyweight() bool {
	return slices.Contains(e.Equipment, BodyweightEquipment)
}

// UsesAnyEquipment reports whether the exercise can be performed with at
// least one of the given equipment names.
func (e Exercise) UsesAnyEquipment(available []string) bool {
	for _, eq := range e.Equipment {
		if slices.Contains(available, eq) {
			return true
		}
	}
	return false
}

// TargetsAny reports whether the exercise hits at least one of the muscles.
func (e Exercise) TargetsAny(muscles []string) bool {
	for _, mg := range e.MuscleGroups {
		if slices.Contains(muscles, mg) {
			return true
		}
	}
	return false
}

// MatchingMuscleCount counts how many of the exercise's muscle groups appear
// in the given list. Used for ranking candidates during program generation.
func (e Exercise) MatchingMuscleCount(muscles []string) int {
	count := 0
	for _, mg := range e.MuscleGroups {
		if slices.Contains(muscles, mg) {
			count++
		}
	}
	return count
}

// AllowedFor reports whether the exercise's difficulty tier is accessible to
// the given experience level. Beginners see only beginner exercises,
// intermediates add intermediate, advanced users see everything.
func (e Exercise) AllowedFor(experience Difficulty) bool {
	switch experience {
	case DifficultyBeginner:
		return e.Difficulty == DifficultyBeginner
	case DifficultyIntermediate:
		return e.Difficulty == DifficultyBeginner || e.Difficulty == DifficultyIntermediate
	case DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// MuscleGroups is the full taxonomy used by the built-in catalog and the
// ExerciseDB mappings.
var MuscleGroups = []string{
	"Chest",
	"Back",
	"Shoulders",
	"Biceps",
	"Triceps",
	"Forearms",
	"Quads",
	"Hamstrings",
	"Glutes",
	"Calves",
	"Core",
	"Full Body",
}

// Equipment lists the equipment names known to the built-in catalog.
var Equipment = []string{
	"Barbell",
	"Dumbbell",
	"Bodyweight",
	"Cable",
	"Machine",
	"Kettlebell",
	"Resistance Band",
	"EZ Bar",
	"Smith Machine",
	"Trap Bar",
	"Medicine Ball",
	"Stability Ball",
	"Suspension",
	"Ab Wheel",
	"Battle Rope",
	"Sled",
	"Bosu Ball",
}
