package program

import (
	"fmt"
	"slices"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/errors"
)

// ErrEmptyPool is returned when equipment and experience filters leave no
// usable exercises.
var ErrEmptyPool = errors.NewSentinel("no exercises available for selected equipment/experience")

const (
	maxWarmups    = 3
	maxStretches  = 5
	fullBodyCap   = 7
	compoundShare = 0.5
	// Focus muscles claim the bulk of a day's slots.
	focusCompoundShare  = 0.6
	focusIsolationShare = 0.7
)

// Generate builds a complete program from wizard answers and the exercise
// pool. Selection is deterministic: identical answers and pool produce an
// identical program.
func Generate(pool []catalog.Exercise, answers WizardAnswers) (Program, error) {
	split := resolveSplit(answers)
	days := splitDays(split, answers.DaysPerWeek)
	exerciseCount := exerciseCountFor(answers.SessionLength, split)

	var usable []catalog.Exercise
	for _, ex := range pool {
		if ex.UsesAnyEquipment(answers.Equipment) && ex.AllowedFor(answers.Experience) {
			usable = append(usable, ex)
		}
	}
	if len(usable) == 0 {
		return Program{}, fmt.Errorf("filter %d exercises: %w", len(pool), ErrEmptyPool)
	}

	generated := Program{
		Name:        answers.Goal.Label() + " " + split.Label(),
		Description: fmt.Sprintf("%d days/week · %s focus · %s sessions", answers.DaysPerWeek, answers.Goal.Label(), answers.SessionLength),
		Goal:        answers.Goal,
		Split:       split,
		DaysPerWeek: answers.DaysPerWeek,
	}
	for _, day := range days {
		generated.Days = append(generated.Days, buildDay(day, split, usable, pool, answers, exerciseCount))
	}
	return generated, nil
}

// SuggestSplit recommends a split for the wizard's split step.
func SuggestSplit(daysPerWeek int, experience catalog.Difficulty) Split {
	return resolveSplit(WizardAnswers{
		Split:       SplitAuto,
		DaysPerWeek: daysPerWeek,
		Experience:  experience,
	})
}

func resolveSplit(answers WizardAnswers) Split {
	if answers.Split != SplitAuto && answers.Split != "" {
		return answers.Split
	}
	beginner := answers.Experience == catalog.DifficultyBeginner
	switch {
	case answers.DaysPerWeek <= 2:
		return SplitFullBody
	case answers.DaysPerWeek == 3:
		if beginner {
			return SplitFullBody
		}
		return SplitPushPullLegs
	case answers.DaysPerWeek == 4:
		return SplitUpperLower
	default:
		if beginner {
			return SplitUpperLower
		}
		return SplitPushPullLegs
	}
}

// splitDay is a day skeleton before exercises are assigned.
type splitDay struct {
	name    string
	muscles []string
}

func splitDays(split Split, daysPerWeek int) []splitDay {
	switch split {
	case SplitFullBody:
		days := make([]splitDay, daysPerWeek)
		for i := range days {
			days[i] = splitDay{
				name:    fmt.Sprintf("Full Body %c", 'A'+i),
				muscles: []string{"Chest", "Back", "Shoulders", "Quads", "Hamstrings", "Glutes", "Core"},
			}
		}
		return days

	case SplitUpperLower:
		days := make([]splitDay, 0, daysPerWeek)
		for i := 0; i < daysPerWeek; i++ {
			if i%2 == 0 {
				days = append(days, splitDay{
					name:    fmt.Sprintf("Upper %d", i/2+1),
					muscles: []string{"Chest", "Back", "Shoulders", "Biceps", "Triceps"},
				})
			} else {
				days = append(days, splitDay{
					name:    fmt.Sprintf("Lower %d", (i+1)/2),
					muscles: []string{"Quads", "Hamstrings", "Glutes", "Calves", "Core"},
				})
			}
		}
		return days

	case SplitPushPullLegs:
		base := []splitDay{
			{name: "Push", muscles: []string{"Chest", "Shoulders", "Triceps"}},
			{name: "Pull", muscles: []string{"Back", "Biceps", "Forearms"}},
			{name: "Legs", muscles: []string{"Quads", "Hamstrings", "Glutes", "Calves", "Core"}},
		}
		days := make([]splitDay, 0, daysPerWeek)
		for i := 0; i < daysPerWeek; i++ {
			day := base[i%3]
			if daysPerWeek > 3 {
				day.name = fmt.Sprintf("%s %d", day.name, i/3+1)
			}
			days = append(days, day)
		}
		return days

	case SplitBro:
		order := []splitDay{
			{name: "Chest Day", muscles: []string{"Chest"}},
			{name: "Back Day", muscles: []string{"Back"}},
			{name: "Shoulder Day", muscles: []string{"Shoulders"}},
			{name: "Leg Day", muscles: []string{"Quads", "Hamstrings", "Glutes", "Calves"}},
			{name: "Arms Day", muscles: []string{"Biceps", "Triceps"}},
			{name: "Core & Conditioning", muscles: []string{"Core", "Full Body"}},
		}
		return order[:min(daysPerWeek, len(order))]

	default:
		return []splitDay{{name: "Workout", muscles: []string{"Chest", "Back", "Shoulders", "Quads"}}}
	}
}

func exerciseCountFor(length SessionLength, split Split) int {
	counts := map[SessionLength]int{SessionShort: 4, SessionMedium: 6, SessionLong: 8}
	count, ok := counts[length]
	if !ok {
		count = 6
	}
	// Full-body days spread over many muscles, one or two slots each.
	if split == SplitFullBody {
		count = min(count, fullBodyCap)
	}
	return count
}

func buildDay(
	day splitDay,
	split Split,
	usable []catalog.Exercise,
	fullPool []catalog.Exercise,
	answers WizardAnswers,
	exerciseCount int,
) Day {
	compoundCount := ceilFraction(exerciseCount, compoundShare)
	if split == SplitFullBody {
		compoundCount = min(len(day.muscles), exerciseCount)
	}
	isoCount := exerciseCount - compoundCount

	var priority, other []string
	for _, m := range day.muscles {
		if slices.Contains(answers.FocusMuscles, m) {
			priority = append(priority, m)
		} else {
			other = append(other, m)
		}
	}
	fallback := other
	if len(fallback) == 0 {
		fallback = day.muscles
	}

	compoundPool := filterCategory(usable, catalog.CategoryCompound)
	compounds := pickSlots(compoundPool, day.muscles, priority, fallback, compoundCount, focusCompoundShare, true)

	isoPool := excludeIDs(filterCategory(usable, catalog.CategoryIsolation), compounds)
	isolations := pickSlots(isoPool, day.muscles, priority, fallback, isoCount, focusIsolationShare, false)

	selected := append(compounds, isolations...)
	if len(selected) > exerciseCount {
		selected = selected[:exerciseCount]
	}

	built := Day{Name: day.name}
	for _, ex := range bookendWarmups(fullPool) {
		built.Exercises = append(built.Exercises, prescribe(ex, answers.Goal, SectionWarmup))
	}
	for _, ex := range selected {
		built.Exercises = append(built.Exercises, prescribe(ex, answers.Goal, SectionMain))
	}
	for _, ex := range bookendStretches(fullPool, day.muscles) {
		built.Exercises = append(built.Exercises, prescribe(ex, answers.Goal, SectionCooldown))
	}
	return built
}

// pickSlots fills count slots, giving focus muscles their share first.
func pickSlots(
	pool []catalog.Exercise,
	dayMuscles, priority, fallback []string,
	count int,
	priorityShare float64,
	preferCompound bool,
) []catalog.Exercise {
	if len(priority) == 0 {
		return pickBest(pool, dayMuscles, count, preferCompound)
	}
	first := pickBest(pool, priority, ceilFraction(count, priorityShare), preferCompound)
	rest := pickBest(excludeIDs(pool, first), fallback, count-len(first), preferCompound)
	return append(first, rest...)
}

// pickBest ranks matching exercises and returns up to count of them. The
// sort is stable so regeneration with identical inputs is reproducible.
func pickBest(pool []catalog.Exercise, muscles []string, count int, preferCompound bool) []catalog.Exercise {
	if count <= 0 {
		return nil
	}
	var matching []catalog.Exercise
	for _, ex := range pool {
		if ex.TargetsAny(muscles) {
			matching = append(matching, ex)
		}
	}
	slices.SortStableFunc(matching, func(a, b catalog.Exercise) int {
		if preferCompound {
			if c := compoundRank(b) - compoundRank(a); c != 0 {
				return c
			}
		}
		return b.MatchingMuscleCount(muscles) - a.MatchingMuscleCount(muscles)
	})

	var picked []catalog.Exercise
	seen := make(map[string]bool)
	for _, ex := range matching {
		if len(picked) >= count {
			break
		}
		if seen[ex.ID] {
			continue
		}
		seen[ex.ID] = true
		picked = append(picked, ex)
	}
	return picked
}

func compoundRank(ex catalog.Exercise) int {
	if ex.Category == catalog.CategoryCompound {
		return 1
	}
	return 0
}

// bookendWarmups picks general warmup drills, ignoring muscle targeting.
func bookendWarmups(pool []catalog.Exercise) []catalog.Exercise {
	warmups := filterCategory(pool, catalog.CategoryWarmup)
	return warmups[:min(maxWarmups, len(warmups))]
}

// bookendStretches picks stretches targeting the day's muscles, or any
// stretches when none match.
func bookendStretches(pool []catalog.Exercise, muscles []string) []catalog.Exercise {
	stretches := filterCategory(pool, catalog.CategoryStretch)
	var matching []catalog.Exercise
	for _, ex := range stretches {
		if ex.TargetsAny(muscles) {
			matching = append(matching, ex)
		}
	}
	if len(matching) == 0 {
		matching = stretches
	}
	return matching[:min(maxStretches, len(matching))]
}

// prescribe assigns the goal-driven scheme and timed-exercise defaults.
func prescribe(ex catalog.Exercise, goal Goal, section Section) Prescription {
	p := Prescription{
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Category:     ex.Category,
		Section:      section,
		IsTimed:      ex.IsTimed,
	}
	if section == SectionMain {
		p.Sets, p.RepsMin, p.RepsMax, p.RestSeconds = schemeFor(goal, ex.Category)
	} else {
		p.Sets, p.RepsMin, p.RepsMax, p.RestSeconds = 1, 1, 1, 0
	}
	if ex.DurationSeconds > 0 {
		d := ex.DurationSeconds
		p.DurationSeconds = &d
	}
	Normalize(&p)
	return p
}

// schemeFor is the goal by category set/rep/rest table.
func schemeFor(goal Goal, category catalog.Category) (sets, repsMin, repsMax, restSeconds int) {
	compound := category == catalog.CategoryCompound
	switch goal {
	case GoalStrength:
		if compound {
			return 5, 3, 5, 180
		}
		return 3, 6, 8, 120
	case GoalHypertrophy:
		if compound {
			return 4, 8, 12, 120
		}
		return 3, 10, 15, 90
	case GoalEndurance:
		if compound {
			return 3, 15, 20, 60
		}
		return 3, 15, 25, 45
	default:
		if compound {
			return 3, 8, 12, 90
		}
		return 3, 10, 15, 60
	}
}

func filterCategory(pool []catalog.Exercise, category catalog.Category) []catalog.Exercise {
	var out []catalog.Exercise
	for _, ex := range pool {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

func excludeIDs(pool, picked []catalog.Exercise) []catalog.Exercise {
	if len(picked) == 0 {
		return pool
	}
	ids := make(map[string]bool, len(picked))
	for _, ex := range picked {
		ids[ex.ID] = true
	}
	var out []catalog.Exercise
	for _, ex := range pool {
		if !ids[ex.ID] {
			out = append(out, ex)
		}
	}
	return out
}

func ceilFraction(count int, share float64) int {
	n := int(float64(count) * share)
	if float64(count)*share > float64(n) {
		n++
	}
	return n
}
