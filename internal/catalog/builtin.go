package catalog

// progressionEdges maps exercise IDs to their bodyweight progression paths.
// IDs referenced here that are not in the built-in table are pure variations
// and only exist as suggestion targets.
var progressionEdges = map[string]ProgressionEdges{
	"push-ups": {
		Easier: &Variation{ID: "incline-push-ups", Name: "Incline Push-ups"},
		Harder: &Variation{ID: "diamond-push-ups", Name: "Diamond Push-ups"},
		Alternatives: []Variation{
			{ID: "wide-push-ups", Name: "Wide Push-ups"},
			{ID: "decline-push-ups", Name: "Decline Push-ups"},
		},
	},
	"incline-push-ups": {
		Harder: &Variation{ID: "push-ups", Name: "Push-ups"},
		Alternatives: []Variation{
			{ID: "wall-push-ups", Name: "Wall Push-ups"},
			{ID: "knee-push-ups", Name: "Knee Push-ups"},
		},
	},
	"diamond-push-ups": {
		Easier: &Variation{ID: "push-ups", Name: "Push-ups"},
		Harder: &Variation{ID: "one-arm-push-ups", Name: "One-Arm Push-ups"},
	},
	"one-arm-push-ups": {
		Easier: &Variation{ID: "diamond-push-ups", Name: "Diamond Push-ups"},
		Alternatives: []Variation{
			{ID: "archer-push-ups", Name: "Archer Push-ups"},
			{ID: "pseudo-planche-push-ups", Name: "Pseudo Planche Push-ups"},
		},
	},
	"pull-ups": {
		Easier: &Variation{ID: "assisted-pull-ups", Name: "Assisted Pull-ups"},
		Harder: &Variation{ID: "weighted-pull-ups", Name: "Weighted Pull-ups"},
		Alternatives: []Variation{
			{ID: "chin-ups", Name: "Chin-ups"},
			{ID: "neutral-grip-pull-ups", Name: "Neutral Grip Pull-ups"},
		},
	},
	"assisted-pull-ups": {
		Easier: &Variation{ID: "negative-pull-ups", Name: "Negative Pull-ups"},
		Harder: &Variation{ID: "pull-ups", Name: "Pull-ups"},
	},
	"negative-pull-ups": {
		Easier: &Variation{ID: "inverted-rows", Name: "Inverted Rows"},
		Harder: &Variation{ID: "assisted-pull-ups", Name: "Assisted Pull-ups"},
	},
	"dips": {
		Easier: &Variation{ID: "bench-dips", Name: "Bench Dips"},
		Harder: &Variation{ID: "weighted-dips", Name: "Weighted Dips"},
		Alternatives: []Variation{
			{ID: "ring-dips", Name: "Ring Dips"},
			{ID: "korean-dips", Name: "Korean Dips"},
		},
	},
	"bench-dips": {
		Easier: &Variation{ID: "assisted-dips", Name: "Assisted Dips"},
		Harder: &Variation{ID: "dips", Name: "Dips"},
	},
	"bodyweight-squat": {
		Harder: &Variation{ID: "jump-squats", Name: "Jump Squats"},
		Alternatives: []Variation{
			{ID: "goblet-squat", Name: "Goblet Squat"},
			{ID: "sumo-squat", Name: "Sumo Squat"},
		},
	},
	"jump-squats": {
		Easier: &Variation{ID: "bodyweight-squat", Name: "Bodyweight Squat"},
		Harder: &Variation{ID: "pistol-squats", Name: "Pistol Squats"},
	},
	"pistol-squats": {
		Easier: &Variation{ID: "assisted-pistol-squats", Name: "Assisted Pistol Squats"},
		Alternatives: []Variation{
			{ID: "shrimp-squats", Name: "Shrimp Squats"},
			{ID: "sissy-squats", Name: "Sissy Squats"},
		},
	},
	"assisted-pistol-squats": {
		Easier: &Variation{ID: "bulgarian-split", Name: "Bulgarian Split Squat"},
		Harder: &Variation{ID: "pistol-squats", Name: "Pistol Squats"},
	},
	"lunges": {
		Harder: &Variation{ID: "jumping-lunges", Name: "Jumping Lunges"},
		Alternatives: []Variation{
			{ID: "reverse-lunges", Name: "Reverse Lunges"},
			{ID: "walking-lunges", Name: "Walking Lunges"},
		},
	},
	"bulgarian-split": {
		Easier: &Variation{ID: "lunges", Name: "Lunges"},
		Harder: &Variation{ID: "assisted-pistol-squats", Name: "Assisted Pistol Squats"},
	},
	"plank": {
		Easier: &Variation{ID: "knee-plank", Name: "Knee Plank"},
		Harder: &Variation{ID: "weighted-plank", Name: "Weighted Plank"},
		Alternatives: []Variation{
			{ID: "side-plank", Name: "Side Plank"},
			{ID: "plank-to-push-up", Name: "Plank to Push-up"},
		},
	},
	"hollow-hold": {
		Easier: &Variation{ID: "dead-bug", Name: "Dead Bug"},
		Harder: &Variation{ID: "dragon-flag", Name: "Dragon Flag"},
	},
	"hanging-leg-raise": {
		Easier: &Variation{ID: "knee-raises", Name: "Knee Raises"},
		Harder: &Variation{ID: "toes-to-bar", Name: "Toes to Bar"},
	},
	"inverted-rows": {
		Easier: &Variation{ID: "elevated-rows", Name: "Elevated Rows"},
		Harder: &Variation{ID: "archer-rows", Name: "Archer Rows"},
	},
	"archer-rows": {
		Easier: &Variation{ID: "inverted-rows", Name: "Inverted Rows"},
		Harder: &Variation{ID: "one-arm-rows", Name: "One-Arm Rows"},
	},
}

// ProgressionFor returns the progression edges associated with an exercise ID.
func ProgressionFor(id string) (ProgressionEdges, bool) {
	edges, ok := progressionEdges[id]
	return edges, ok
}

var builtinExercises = []Exercise{
	// Chest
	{ID: "bench-press", Name: "Bench Press", Category: CategoryCompound, MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "incline-bench", Name: "Incline Bench Press", Category: CategoryCompound, MuscleGroups: []string{"Chest", "Shoulders"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "db-bench", Name: "Dumbbell Bench Press", Category: CategoryCompound, MuscleGroups: []string{"Chest", "Triceps"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "db-fly", Name: "Dumbbell Fly", Category: CategoryIsolation, MuscleGroups: []string{"Chest"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "cable-crossover", Name: "Cable Crossover", Category: CategoryIsolation, MuscleGroups: []string{"Chest"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	{ID: "push-ups", Name: "Push-ups", Category: CategoryCompound, MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner},
	{ID: "dips", Name: "Dips", Category: CategoryCompound, MuscleGroups: []string{"Chest", "Triceps"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyIntermediate},
	{ID: "chest-press-machine", Name: "Chest Press Machine", Category: CategoryCompound, MuscleGroups: []string{"Chest", "Triceps"}, Equipment: []string{"Machine"}, Difficulty: DifficultyBeginner},
	{ID: "pec-deck", Name: "Pec Deck", Category: CategoryIsolation, MuscleGroups: []string{"Chest"}, Equipment: []string{"Machine"}, Difficulty: DifficultyBeginner},
	// Back
	{ID: "deadlift", Name: "Deadlift", Category: CategoryCompound, MuscleGroups: []string{"Back", "Hamstrings", "Glutes"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "barbell-row", Name: "Barbell Row", Category: CategoryCompound, MuscleGroups: []string{"Back", "Biceps"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "db-row", Name: "Dumbbell Row", Category: CategoryCompound, MuscleGroups: []string{"Back", "Biceps"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "pull-ups", Name: "Pull-ups", Category: CategoryCompound, MuscleGroups: []string{"Back", "Biceps"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyIntermediate},
	{ID: "lat-pulldown", Name: "Lat Pulldown", Category: CategoryCompound, MuscleGroups: []string{"Back", "Biceps"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	{ID: "cable-row", Name: "Cable Row", Category: CategoryCompound, MuscleGroups: []string{"Back", "Biceps"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	{ID: "t-bar-row", Name: "T-Bar Row", Category: CategoryCompound, MuscleGroups: []string{"Back"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "face-pull", Name: "Face Pull", Category: CategoryIsolation, MuscleGroups: []string{"Shoulders", "Back"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	// Shoulders
	{ID: "overhead-press", Name: "Overhead Press", Category: CategoryCompound, MuscleGroups: []string{"Shoulders", "Triceps"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "db-shoulder-press", Name: "Dumbbell Shoulder Press", Category: CategoryCompound, MuscleGroups: []string{"Shoulders", "Triceps"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "lateral-raise", Name: "Lateral Raise", Category: CategoryIsolation, MuscleGroups: []string{"Shoulders"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "front-raise", Name: "Front Raise", Category: CategoryIsolation, MuscleGroups: []string{"Shoulders"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "rear-delt-fly", Name: "Rear Delt Fly", Category: CategoryIsolation, MuscleGroups: []string{"Shoulders"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "arnold-press", Name: "Arnold Press", Category: CategoryCompound, MuscleGroups: []string{"Shoulders"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyIntermediate},
	// Legs
	{ID: "barbell-squat", Name: "Barbell Squat", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes", "Hamstrings"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "front-squat", Name: "Front Squat", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyAdvanced},
	{ID: "leg-press", Name: "Leg Press", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes"}, Equipment: []string{"Machine"}, Difficulty: DifficultyBeginner},
	{ID: "lunges", Name: "Lunges", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes", "Hamstrings"}, Equipment: []string{"Dumbbell", "Bodyweight"}, Difficulty: DifficultyBeginner},
	{ID: "bulgarian-split", Name: "Bulgarian Split Squat", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyIntermediate},
	{ID: "leg-extension", Name: "Leg Extension", Category: CategoryIsolation, MuscleGroups: []string{"Quads"}, Equipment: []string{"Machine"}, Difficulty: DifficultyBeginner},
	{ID: "leg-curl", Name: "Leg Curl", Category: CategoryIsolation, MuscleGroups: []string{"Hamstrings"}, Equipment: []string{"Machine"}, Difficulty: DifficultyBeginner},
	{ID: "rdl", Name: "Romanian Deadlift", Category: CategoryCompound, MuscleGroups: []string{"Hamstrings", "Glutes"}, Equipment: []string{"Barbell", "Dumbbell"}, Difficulty: DifficultyIntermediate},
	{ID: "hip-thrust", Name: "Hip Thrust", Category: CategoryCompound, MuscleGroups: []string{"Glutes", "Hamstrings"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "calf-raise", Name: "Calf Raise", Category: CategoryIsolation, MuscleGroups: []string{"Calves"}, Equipment: []string{"Machine", "Bodyweight"}, Difficulty: DifficultyBeginner},
	{ID: "goblet-squat", Name: "Goblet Squat", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes"}, Equipment: []string{"Dumbbell", "Kettlebell"}, Difficulty: DifficultyBeginner},
	{ID: "bodyweight-squat", Name: "Bodyweight Squat", Category: CategoryCompound, MuscleGroups: []string{"Quads", "Glutes", "Hamstrings"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner},
	// Arms
	{ID: "bicep-curl", Name: "Bicep Curl", Category: CategoryIsolation, MuscleGroups: []string{"Biceps"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "barbell-curl", Name: "Barbell Curl", Category: CategoryIsolation, MuscleGroups: []string{"Biceps"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyBeginner},
	{ID: "hammer-curl", Name: "Hammer Curl", Category: CategoryIsolation, MuscleGroups: []string{"Biceps", "Forearms"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "cable-curl", Name: "Cable Curl", Category: CategoryIsolation, MuscleGroups: []string{"Biceps"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	{ID: "tricep-extension", Name: "Tricep Extension", Category: CategoryIsolation, MuscleGroups: []string{"Triceps"}, Equipment: []string{"Dumbbell"}, Difficulty: DifficultyBeginner},
	{ID: "tricep-pushdown", Name: "Tricep Pushdown", Category: CategoryIsolation, MuscleGroups: []string{"Triceps"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	{ID: "skullcrusher", Name: "Skull Crushers", Category: CategoryIsolation, MuscleGroups: []string{"Triceps"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	{ID: "close-grip-bench", Name: "Close-Grip Bench Press", Category: CategoryCompound, MuscleGroups: []string{"Triceps", "Chest"}, Equipment: []string{"Barbell"}, Difficulty: DifficultyIntermediate},
	// Core
	{ID: "plank", Name: "Plank", Category: CategoryIsolation, MuscleGroups: []string{"Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner},
	{ID: "crunches", Name: "Crunches", Category: CategoryIsolation, MuscleGroups: []string{"Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner},
	{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", Category: CategoryIsolation, MuscleGroups: []string{"Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyIntermediate},
	{ID: "cable-woodchop", Name: "Cable Woodchop", Category: CategoryIsolation, MuscleGroups: []string{"Core"}, Equipment: []string{"Cable"}, Difficulty: DifficultyBeginner},
	{ID: "ab-wheel", Name: "Ab Wheel Rollout", Category: CategoryIsolation, MuscleGroups: []string{"Core"}, Equipment: []string{"Ab Wheel", "Bodyweight"}, Difficulty: DifficultyIntermediate},
	{ID: "russian-twist", Name: "Russian Twist", Category: CategoryIsolation, MuscleGroups: []string{"Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner},
	// Warmups
	{ID: "jumping-jacks", Name: "Jumping Jacks", Category: CategoryWarmup, MuscleGroups: []string{"Full Body"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 60},
	{ID: "arm-circles", Name: "Arm Circles", Category: CategoryWarmup, MuscleGroups: []string{"Shoulders"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "leg-swings", Name: "Leg Swings", Category: CategoryWarmup, MuscleGroups: []string{"Hamstrings", "Quads"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "hip-circles", Name: "Hip Circles", Category: CategoryWarmup, MuscleGroups: []string{"Glutes"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "torso-twists", Name: "Torso Twists", Category: CategoryWarmup, MuscleGroups: []string{"Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "high-knees", Name: "High Knees", Category: CategoryWarmup, MuscleGroups: []string{"Quads", "Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "butt-kicks", Name: "Butt Kicks", Category: CategoryWarmup, MuscleGroups: []string{"Hamstrings"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "inchworms", Name: "Inchworms", Category: CategoryWarmup, MuscleGroups: []string{"Full Body"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 60},
	// Stretches
	{ID: "quad-stretch", Name: "Quad Stretch", Category: CategoryStretch, MuscleGroups: []string{"Quads"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "hamstring-stretch", Name: "Hamstring Stretch", Category: CategoryStretch, MuscleGroups: []string{"Hamstrings"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "calf-stretch", Name: "Calf Stretch", Category: CategoryStretch, MuscleGroups: []string{"Calves"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "hip-flexor-stretch", Name: "Hip Flexor Stretch", Category: CategoryStretch, MuscleGroups: []string{"Glutes"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "chest-stretch", Name: "Chest Stretch", Category: CategoryStretch, MuscleGroups: []string{"Chest"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "shoulder-stretch", Name: "Shoulder Stretch", Category: CategoryStretch, MuscleGroups: []string{"Shoulders"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "tricep-stretch", Name: "Tricep Stretch", Category: CategoryStretch, MuscleGroups: []string{"Triceps"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "cat-cow-stretch", Name: "Cat-Cow Stretch", Category: CategoryStretch, MuscleGroups: []string{"Back", "Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 60},
	{ID: "childs-pose", Name: "Child's Pose", Category: CategoryStretch, MuscleGroups: []string{"Back", "Shoulders"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 60},
	{ID: "pigeon-pose", Name: "Pigeon Pose", Category: CategoryStretch, MuscleGroups: []string{"Glutes", "Hamstrings"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyIntermediate, IsTimed: true, DurationSeconds: 60},
	{ID: "cobra-stretch", Name: "Cobra Stretch", Category: CategoryStretch, MuscleGroups: []string{"Back", "Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
	{ID: "seated-spinal-twist", Name: "Seated Spinal Twist", Category: CategoryStretch, MuscleGroups: []string{"Back", "Core"}, Equipment: []string{"Bodyweight"}, Difficulty: DifficultyBeginner, IsTimed: true, DurationSeconds: 30},
}

// Builtin returns a copy of the built-in exercise table with progression
// edges attached. Callers may mutate the returned slice freely.
func Builtin() []Exercise {
	exercises := make([]Exercise, len(builtinExercises))
	copy(exercises, builtinExercises)
	for i := range exercises {
		if edges, ok := progressionEdges[exercises[i].ID]; ok {
			exercises[i].Progression = edges
		}
	}
	return exercises
}
