package workout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsalmi/liftline/internal/ptr"
)

// sessionWith builds a single-exercise session from uniform sets.
func sessionWith(bestWeight float64, bestReps int, sets ...WorkoutSet) ExerciseSession {
	total := 0.0
	for _, s := range sets {
		total += s.Volume()
	}
	return ExerciseSession{
		Date:        day(0),
		WorkoutID:   1,
		Sets:        sets,
		BestSet:     BestSet{WeightKg: bestWeight, Reps: bestReps},
		TotalVolume: total,
	}
}

func TestSuggest_firstTime(t *testing.T) {
	t.Parallel()

	got := Suggest(nil, 8)
	want := ProgressionSuggestion{
		WeightKg:            0,
		Reps:                8,
		Recommendation:      "First time - start light and find your working weight",
		Trend:               TrendMaintain,
		PreviousBest:        nil,
		ConsecutiveFailures: 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("suggestion mismatch (-want +got):\n%s", diff)
	}

	if got := Suggest(&ExerciseHistory{ExerciseID: "bench-press"}, 0); got.Reps != 0 || got.Trend != TrendMaintain {
		t.Errorf("empty history should behave like nil history, got %+v", got)
	}
}

func TestSuggest_progressionRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sets       []WorkoutSet
		bestWeight float64
		bestReps   int
		targetReps int
		wantWeight float64
		wantTrend  Trend
		wantRec    string
	}{
		{
			name: "target hit with spare RIR increases weight",
			sets: []WorkoutSet{
				{WeightKg: 100, Reps: 8, RIR: ptr.Ref(2), Completed: true},
				{WeightKg: 100, Reps: 8, RIR: ptr.Ref(3), Completed: true},
			},
			bestWeight: 100, bestReps: 8, targetReps: 8,
			wantWeight: 102.5,
			wantTrend:  TrendUp,
			wantRec:    "Increase weight by 2.5%",
		},
		{
			name: "target hit at the limit maintains",
			sets: []WorkoutSet{
				{WeightKg: 100, Reps: 12, RIR: ptr.Ref(1), Completed: true},
			},
			bestWeight: 100, bestReps: 10, targetReps: 10,
			wantWeight: 100,
			wantTrend:  TrendMaintain,
			wantRec:    "Maintain current weight",
		},
		{
			name: "missing RIR counts as one and maintains",
			sets: []WorkoutSet{
				{WeightKg: 60, Reps: 10, Completed: true},
			},
			bestWeight: 60, bestReps: 10, targetReps: 10,
			wantWeight: 60,
			wantTrend:  TrendMaintain,
			wantRec:    "Maintain current weight",
		},
		{
			name: "missed target reduces weight",
			sets: []WorkoutSet{
				{WeightKg: 100, Reps: 8, RIR: ptr.Ref(0), Completed: true},
			},
			bestWeight: 100, bestReps: 8, targetReps: 10,
			wantWeight: 95,
			wantTrend:  TrendDown,
			wantRec:    "Reduce weight by 5% or target fewer reps",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			history := &ExerciseHistory{
				ExerciseID: "bench-press",
				Sessions:   []ExerciseSession{sessionWith(tt.bestWeight, tt.bestReps, tt.sets...)},
			}
			got := Suggest(history, tt.targetReps)
			if got.WeightKg != tt.wantWeight {
				t.Errorf("weight = %v, want %v", got.WeightKg, tt.wantWeight)
			}
			if got.Trend != tt.wantTrend {
				t.Errorf("trend = %s, want %s", got.Trend, tt.wantTrend)
			}
			if got.Recommendation != tt.wantRec {
				t.Errorf("recommendation = %q, want %q", got.Recommendation, tt.wantRec)
			}
			if got.Reps != tt.targetReps {
				t.Errorf("reps = %d, want %d", got.Reps, tt.targetReps)
			}
			if got.PreviousBest == nil || got.PreviousBest.WeightKg != tt.bestWeight {
				t.Errorf("previous best = %+v, want weight %v", got.PreviousBest, tt.bestWeight)
			}
		})
	}
}

func TestSuggest_weightRounding(t *testing.T) {
	t.Parallel()

	history := &ExerciseHistory{
		ExerciseID: "overhead-press",
		Sessions: []ExerciseSession{
			sessionWith(41, 8, WorkoutSet{WeightKg: 41, Reps: 8, RIR: ptr.Ref(3), Completed: true}),
		},
	}
	got := Suggest(history, 8)
	// 41 * 1.025 = 42.025, rounded to one decimal.
	if got.WeightKg != 42.0 {
		t.Errorf("weight = %v, want 42.0", got.WeightKg)
	}
}

func TestSuggest_deloadAfterThreeFailures(t *testing.T) {
	t.Parallel()

	// Three sessions in a row under 90% of an 10-rep target.
	failed := func(weight float64, reps int) ExerciseSession {
		return sessionWith(weight, reps, WorkoutSet{WeightKg: weight, Reps: reps, RIR: ptr.Ref(0), Completed: true})
	}
	history := &ExerciseHistory{
		ExerciseID: "barbell-squat",
		Sessions: []ExerciseSession{
			failed(100, 6),
			failed(100, 7),
			failed(102.5, 8),
		},
	}

	got := Suggest(history, 10)

	if got.Trend != TrendDeload {
		t.Fatalf("trend = %s, want deload", got.Trend)
	}
	if got.ConsecutiveFailures != 3 {
		t.Errorf("consecutive failures = %d, want 3", got.ConsecutiveFailures)
	}
	if got.WeightKg != 85.0 {
		t.Errorf("weight = %v, want 85.0", got.WeightKg)
	}
	want := "Deload: reduce to 85 for 10 reps. You've missed targets 3 sessions in a row."
	if got.Recommendation != want {
		t.Errorf("recommendation = %q, want %q", got.Recommendation, want)
	}
}

func TestSuggest_failureStreakStopsAtSuccess(t *testing.T) {
	t.Parallel()

	ok := sessionWith(100, 10, WorkoutSet{WeightKg: 100, Reps: 10, RIR: ptr.Ref(1), Completed: true})
	missed := sessionWith(100, 6, WorkoutSet{WeightKg: 100, Reps: 6, RIR: ptr.Ref(0), Completed: true})
	history := &ExerciseHistory{
		ExerciseID: "barbell-squat",
		Sessions:   []ExerciseSession{missed, missed, ok, missed},
	}

	got := Suggest(history, 10)

	if got.ConsecutiveFailures != 2 {
		t.Errorf("consecutive failures = %d, want 2", got.ConsecutiveFailures)
	}
	if got.Trend == TrendDeload {
		t.Error("streak broken by a successful session must not deload")
	}
	if !strings.Contains(got.Recommendation, "Reduce weight") {
		t.Errorf("expected reduction recommendation, got %q", got.Recommendation)
	}
}

func TestSuggest_targetFallsBackToLastBestReps(t *testing.T) {
	t.Parallel()

	history := &ExerciseHistory{
		ExerciseID: "db-row",
		Sessions: []ExerciseSession{
			sessionWith(30, 12, WorkoutSet{WeightKg: 30, Reps: 12, RIR: ptr.Ref(2), Completed: true}),
		},
	}
	got := Suggest(history, 0)
	if got.Reps != 12 {
		t.Errorf("reps = %d, want 12 from last best set", got.Reps)
	}
	if got.Trend != TrendUp {
		t.Errorf("trend = %s, want up", got.Trend)
	}
}
