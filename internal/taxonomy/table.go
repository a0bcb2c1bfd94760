package taxonomy

// exerciseTable is the built-in movement catalog. Keyword matching prefers
// the entry with the most matched keywords, so specific patterns (incline
// bench) beat generic ones (bench) regardless of table order.
var exerciseTable = []entry{
	// Chest
	{
		canonical: "Incline Bench Press",
		primary:   Chest,
		secondary: []MuscleGroup{Shoulders, Triceps},
		movements: []Movement{MovementPush},
		aliases:   []string{"Incline Press", "Incline Barbell Press", "Incline Dumbbell Press"},
		keywords:  []string{"incline", "press"},
	},
	{
		canonical: "Bench Press",
		primary:   Chest,
		secondary: []MuscleGroup{Triceps, Shoulders},
		movements: []Movement{MovementPush},
		aliases:   []string{"Flat Bench", "Barbell Bench Press", "Dumbbell Bench Press", "Chest Press"},
		keywords:  []string{"bench"},
	},
	{
		canonical: "Chest Fly",
		primary:   Chest,
		movements: []Movement{MovementPush},
		aliases:   []string{"Cable Fly", "Pec Deck", "Dumbbell Fly"},
		keywords:  []string{"fly"},
	},
	{
		canonical: "Dip",
		primary:   Chest,
		secondary: []MuscleGroup{Triceps, Shoulders},
		movements: []Movement{MovementPush},
		aliases:   []string{"Chest Dip", "Weighted Dip"},
		keywords:  []string{"dip"},
	},
	{
		canonical: "Push-Up",
		primary:   Chest,
		secondary: []MuscleGroup{Triceps, Shoulders},
		movements: []Movement{MovementPush},
		aliases:   []string{"Pushup", "Push Up"},
		keywords:  []string{"push-up"},
	},

	// Back
	{
		canonical: "Lat Pulldown",
		primary:   Back,
		secondary: []MuscleGroup{Biceps},
		movements: []Movement{MovementPull},
		aliases:   []string{"Pulldown", "Cable Pulldown", "Lateral Pulldown"},
		keywords:  []string{"pulldown"},
	},
	{
		canonical: "Pull-Up",
		primary:   Back,
		secondary: []MuscleGroup{Biceps},
		movements: []Movement{MovementPull},
		aliases:   []string{"Pullup", "Chin-Up", "Chinup", "Weighted Pull-Up"},
		keywords:  []string{"pull-up"},
	},
	{
		canonical: "Barbell Row",
		primary:   Back,
		secondary: []MuscleGroup{Biceps},
		movements: []Movement{MovementPull, MovementHinge},
		aliases:   []string{"Bent Over Row", "Pendlay Row"},
		keywords:  []string{"barbell", "row"},
	},
	{
		canonical: "Seated Cable Row",
		primary:   Back,
		secondary: []MuscleGroup{Biceps},
		movements: []Movement{MovementPull},
		aliases:   []string{"Cable Row", "Low Row", "Machine Row"},
		keywords:  []string{"cable", "row"},
	},
	{
		canonical: "Dumbbell Row",
		primary:   Back,
		secondary: []MuscleGroup{Biceps},
		movements: []Movement{MovementPull},
		aliases:   []string{"One Arm Row", "Single Arm Row"},
		keywords:  []string{"row"},
	},

	// Shoulders
	{
		canonical: "Overhead Press",
		primary:   Shoulders,
		secondary: []MuscleGroup{Triceps},
		movements: []Movement{MovementPush},
		aliases:   []string{"Military Press", "Shoulder Press", "Seated Dumbbell Press", "Push Press"},
		keywords:  []string{"overhead", "press"},
	},
	{
		canonical: "Lateral Raise",
		primary:   Shoulders,
		movements: []Movement{MovementPush},
		aliases:   []string{"Side Raise", "Dumbbell Lateral Raise", "Cable Lateral Raise"},
		keywords:  []string{"lateral", "raise"},
	},
	{
		canonical: "Face Pull",
		primary:   Shoulders,
		secondary: []MuscleGroup{Back},
		movements: []Movement{MovementPull},
		keywords:  []string{"face", "pull"},
	},
	{
		canonical: "Rear Delt Fly",
		primary:   Shoulders,
		secondary: []MuscleGroup{Back},
		movements: []Movement{MovementPull},
		aliases:   []string{"Reverse Fly", "Reverse Pec Deck"},
		keywords:  []string{"rear", "delt"},
	},

	// Arms
	{
		canonical: "Biceps Curl",
		primary:   Biceps,
		movements: []Movement{MovementPull},
		aliases:   []string{"Barbell Curl", "Dumbbell Curl", "Hammer Curl", "Preacher Curl", "Cable Curl", "EZ Bar Curl"},
		keywords:  []string{"curl"},
	},
	{
		canonical: "Triceps Extension",
		primary:   Triceps,
		movements: []Movement{MovementPush},
		aliases:   []string{"Skull Crusher", "Overhead Triceps Extension", "Lying Triceps Extension"},
		keywords:  []string{"triceps"},
	},
	{
		canonical: "Triceps Pushdown",
		primary:   Triceps,
		movements: []Movement{MovementPush},
		aliases:   []string{"Cable Pushdown", "Rope Pushdown"},
		keywords:  []string{"pushdown"},
	},

	// Legs
	{
		canonical: "Front Squat",
		primary:   Quads,
		secondary: []MuscleGroup{Glutes, Abs},
		movements: []Movement{MovementQuad},
		keywords:  []string{"front", "squat"},
	},
	{
		canonical: "Squat",
		primary:   Quads,
		secondary: []MuscleGroup{Glutes, Hamstrings},
		movements: []Movement{MovementQuad},
		aliases:   []string{"Back Squat", "Barbell Squat", "High Bar Squat", "Low Bar Squat", "Goblet Squat"},
		keywords:  []string{"squat"},
	},
	{
		canonical: "Leg Press",
		primary:   Quads,
		secondary: []MuscleGroup{Glutes},
		movements: []Movement{MovementQuad},
		keywords:  []string{"leg", "press"},
	},
	{
		canonical: "Leg Extension",
		primary:   Quads,
		movements: []Movement{MovementQuad},
		keywords:  []string{"leg", "extension"},
	},
	{
		canonical: "Lunge",
		primary:   Quads,
		secondary: []MuscleGroup{Glutes},
		movements: []Movement{MovementQuad},
		aliases:   []string{"Walking Lunge", "Reverse Lunge", "Bulgarian Split Squat", "Split Squat"},
		keywords:  []string{"lunge"},
	},
	{
		canonical: "Romanian Deadlift",
		primary:   Hamstrings,
		secondary: []MuscleGroup{Glutes, Back},
		movements: []Movement{MovementHinge},
		aliases:   []string{"Stiff Leg Deadlift", "Stiff-Legged Deadlift"},
		keywords:  []string{"romanian"},
	},
	{
		canonical: "Deadlift",
		primary:   Hamstrings,
		secondary: []MuscleGroup{Glutes, Back},
		movements: []Movement{MovementHinge, MovementPull},
		aliases:   []string{"Conventional Deadlift", "Sumo Deadlift", "Trap Bar Deadlift"},
		keywords:  []string{"deadlift"},
	},
	{
		canonical: "Leg Curl",
		primary:   Hamstrings,
		movements: []Movement{MovementHinge},
		aliases:   []string{"Lying Leg Curl", "Seated Leg Curl", "Nordic Curl"},
		keywords:  []string{"leg", "curl"},
	},
	{
		canonical: "Hip Thrust",
		primary:   Glutes,
		secondary: []MuscleGroup{Hamstrings},
		movements: []Movement{MovementHinge},
		aliases:   []string{"Glute Bridge", "Barbell Hip Thrust"},
		keywords:  []string{"hip", "thrust"},
	},
	{
		canonical: "Good Morning",
		primary:   Hamstrings,
		secondary: []MuscleGroup{Glutes, Back},
		movements: []Movement{MovementHinge},
		keywords:  []string{"good", "morning"},
	},
	{
		canonical: "Calf Raise",
		primary:   Calves,
		aliases:   []string{"Standing Calf Raise", "Seated Calf Raise"},
		keywords:  []string{"calf"},
	},

	// Trunk
	{
		canonical: "Crunch",
		primary:   Abs,
		aliases:   []string{"Cable Crunch", "Machine Crunch"},
		keywords:  []string{"crunch"},
	},
	{
		canonical: "Plank",
		primary:   Abs,
		aliases:   []string{"Weighted Plank"},
		keywords:  []string{"plank"},
	},
	{
		canonical: "Hanging Leg Raise",
		primary:   Abs,
		aliases:   []string{"Leg Raise", "Knee Raise"},
		keywords:  []string{"leg", "raise"},
	},
}
