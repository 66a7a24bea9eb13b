package powerlifting

import "fmt"

// MaxReps is the highest rep count a 1RM estimate is made from.
const MaxReps = 15

type RepRangeError struct {
	Reps int
}

func (e *RepRangeError) Error() string {
	if e.Reps < 1 {
		return fmt.Sprintf("rep count must be at least 1, got %d", e.Reps)
	}
	return fmt.Sprintf("rep range too high for accurate 1RM prediction: %d (max %d reps)", e.Reps, MaxReps)
}

func Epley(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

func Brzycki(weight float64, reps int) float64 {
	return weight * (36 / (37 - float64(reps)))
}

func OConner(weight float64, reps int) float64 {
	return weight * (1 + 0.025*float64(reps))
}

// OneRepMaxWeights blends the three formulas. Brzycki is favoured at low reps.
type OneRepMaxWeights struct {
	Epley   float64 `json:"epley"`
	Brzycki float64 `json:"brzycki"`
	OConner float64 `json:"oconner"`
}

const lowRepThreshold = 5

var (
	LowRepWeights  = OneRepMaxWeights{Epley: 0.3, Brzycki: 0.5, OConner: 0.2}
	HighRepWeights = OneRepMaxWeights{Epley: 0.4, Brzycki: 0.4, OConner: 0.2}
)

// WeightsFor returns the blend used for reps.
func WeightsFor(reps int) OneRepMaxWeights {
	if reps <= lowRepThreshold {
		return LowRepWeights
	}
	return HighRepWeights
}

// OneRepMax estimates a 1RM from a submaximal set of weight × reps.
func OneRepMax(weight float64, reps int) (float64, error) {
	if reps < 1 || reps > MaxReps {
		return 0, &RepRangeError{Reps: reps}
	}
	if reps == 1 {
		return weight, nil
	}

	w := WeightsFor(reps)
	return Brzycki(weight, reps)*w.Brzycki + Epley(weight, reps)*w.Epley + OConner(weight, reps)*w.OConner, nil
}
