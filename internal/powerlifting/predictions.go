package powerlifting

import "github.com/yusufkecer/body-test-backend/internal/bodycomp"

// LeanMassMultipliers convert lean body mass into a predicted 1RM. They are
// deliberately distinct from StrengthRatios, which apply to total bodyweight.
var LeanMassMultipliers = map[Level]LiftRatios{
	Beginner:     {Bench: 1.2, Squat: 1.8, Deadlift: 2.0},
	Intermediate: {Bench: 1.6, Squat: 2.2, Deadlift: 2.5},
	Advanced:     {Bench: 2.0, Squat: 2.8, Deadlift: 3.0},
	Elite:        {Bench: 2.2, Squat: 3.2, Deadlift: 3.5},
}

// Predictions are predicted one-rep maxes in kg. The total is always derived
// from the three lifts.
type Predictions struct {
	BenchPress1RM float64
	Squat1RM      float64
	Deadlift1RM   float64
	WilksScore    float64
}

func (p Predictions) Total() float64 {
	return p.BenchPress1RM + p.Squat1RM + p.Deadlift1RM
}

// Value returns the prediction for lift, including Total.
func (p Predictions) Value(l Lift) float64 {
	switch l {
	case Bench:
		return p.BenchPress1RM
	case Squat:
		return p.Squat1RM
	case Deadlift:
		return p.Deadlift1RM
	case Total:
		return p.Total()
	}
	return 0
}

func multipliers(level Level) LiftRatios {
	if m, ok := LeanMassMultipliers[level]; ok {
		return m
	}
	return LeanMassMultipliers[DefaultLevel]
}

func PredictBenchPress(leanBodyMass float64, level Level) float64 {
	return leanBodyMass * multipliers(level).Bench
}

func PredictSquat(leanBodyMass float64, level Level) float64 {
	return leanBodyMass * multipliers(level).Squat
}

func PredictDeadlift(leanBodyMass float64, level Level) float64 {
	return leanBodyMass * multipliers(level).Deadlift
}

// Predict projects 1RMs from lean mass and scores the total against
// bodyweight. Unknown levels fall back to DefaultLevel.
func Predict(leanBodyMass, bodyweight float64, level Level, g bodycomp.Gender) Predictions {
	p := Predictions{
		BenchPress1RM: PredictBenchPress(leanBodyMass, level),
		Squat1RM:      PredictSquat(leanBodyMass, level),
		Deadlift1RM:   PredictDeadlift(leanBodyMass, level),
	}
	p.WilksScore = WilksScore(p.Total(), bodyweight, g)
	return p
}

// RelativeStrength is a lift divided by bodyweight.
func RelativeStrength(lift, bodyweight float64) float64 {
	return lift / bodyweight
}
