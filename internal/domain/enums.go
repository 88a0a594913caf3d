package domain

type ExerciseKind string

const (
	ExercisePullups ExerciseKind = "pullups"
	ExerciseSquats  ExerciseKind = "squats"
	ExerciseAbs     ExerciseKind = "abs"
	ExercisePushups ExerciseKind = "pushups"
)

// ExerciseKinds is the fixed order in which exercises appear in every workout.
var ExerciseKinds = []ExerciseKind{ExercisePullups, ExerciseSquats, ExerciseAbs, ExercisePushups}

// ValidExerciseKinds is the canonical set of accepted exercise kind strings.
var ValidExerciseKinds = map[string]bool{
	"pullups": true, "squats": true, "abs": true, "pushups": true,
}

type LoadType string

const (
	LoadStrength  LoadType = "strength"
	LoadEndurance LoadType = "endurance"
	LoadExplosive LoadType = "explosive"
)

type AchievementID string

type AchievementIcon string

const (
	IconDumbbell   AchievementIcon = "dumbbell"
	IconTrophy     AchievementIcon = "trophy"
	IconFlame      AchievementIcon = "flame"
	IconTarget     AchievementIcon = "target"
	IconCalendar   AchievementIcon = "calendar"
	IconStar       AchievementIcon = "star"
	IconZap        AchievementIcon = "zap"
	IconMedal      AchievementIcon = "medal"
	IconTrendingUp AchievementIcon = "trending-up"
)
