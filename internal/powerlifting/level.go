package powerlifting

import "fmt"

// Level is a training level. Novice only appears as a classification result
// below every standard.
type Level string

const (
	Novice       Level = "NOVICE"
	Beginner     Level = "BEGINNER"
	Intermediate Level = "INTERMEDIATE"
	Advanced     Level = "ADVANCED"
	Elite        Level = "ELITE"
)

// TrainingLevels in ascending order.
var TrainingLevels = []Level{Beginner, Intermediate, Advanced, Elite}

const DefaultLevel = Intermediate

func (l Level) Valid() bool {
	for _, t := range TrainingLevels {
		if l == t {
			return true
		}
	}
	return false
}

type UnsupportedLevelError struct {
	Level Level
}

func (e *UnsupportedLevelError) Error() string {
	return fmt.Sprintf("unsupported training level: %q", string(e.Level))
}

// ParseLevel maps the empty string to DefaultLevel.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return DefaultLevel, nil
	}
	l := Level(s)
	if !l.Valid() {
		return "", &UnsupportedLevelError{Level: l}
	}
	return l, nil
}

type Lift string

const (
	Bench    Lift = "bench"
	Squat    Lift = "squat"
	Deadlift Lift = "deadlift"
	Total    Lift = "total"
)

var Lifts = []Lift{Bench, Squat, Deadlift, Total}

// LiftRatios are per-lift factors; what they multiply depends on the table.
type LiftRatios struct {
	Bench    float64
	Squat    float64
	Deadlift float64
}

func (r LiftRatios) Sum() float64 {
	return r.Bench + r.Squat + r.Deadlift
}
