package program

import (
	"strings"

	"github.com/jsalmi/liftline/internal/catalog"
)

// Isometric holds measured in seconds rather than reps.
var timedExerciseNames = []string{
	"plank", "side plank", "hollow hold", "dead bug", "wall sit",
	"l-sit", "front lever", "back lever", "handstand hold",
}

// Normalize back-fills timed-exercise flags, default durations, and default
// rest times on a prescription. Programs saved by older app versions lack
// these fields, so normalization runs both at generation time and when
// loading from storage.
func Normalize(p *Prescription) {
	if !p.IsTimed && shouldBeTimed(*p) {
		p.IsTimed = true
	}
	if p.IsTimed && p.DurationSeconds == nil {
		d := defaultDuration(*p)
		p.DurationSeconds = &d
	}
	if p.RestSeconds == 0 {
		p.RestSeconds = defaultRest(*p)
	}
}

// NormalizeProgram normalizes every prescription in place.
func NormalizeProgram(prog *Program) {
	for d := range prog.Days {
		for e := range prog.Days[d].Exercises {
			Normalize(&prog.Days[d].Exercises[e])
		}
	}
}

func shouldBeTimed(p Prescription) bool {
	if p.Category == catalog.CategoryWarmup || p.Category == catalog.CategoryStretch {
		return true
	}
	name := strings.ToLower(p.ExerciseName)
	for _, timed := range timedExerciseNames {
		if strings.Contains(name, timed) {
			return true
		}
	}
	return false
}

func defaultDuration(p Prescription) int {
	if p.Category == catalog.CategoryWarmup || p.Category == catalog.CategoryStretch {
		return 30
	}
	name := strings.ToLower(p.ExerciseName)
	if strings.Contains(name, "plank") {
		return 45
	}
	return 30
}

func defaultRest(p Prescription) int {
	switch p.Category {
	case catalog.CategoryWarmup, catalog.CategoryStretch:
		return 0
	case catalog.CategoryCompound:
		switch {
		case p.RepsMax <= 5:
			return 180
		case p.RepsMax <= 8:
			return 150
		default:
			return 120
		}
	case catalog.CategoryIsolation:
		if p.RepsMax <= 8 {
			return 90
		}
		return 60
	default:
		return 90
	}
}
