package powerlifting

import "github.com/yusufkecer/body-test-backend/internal/bodycomp"

// StrengthRatios are multiples of total bodyweight per level.
var StrengthRatios = map[bodycomp.Gender]map[Level]LiftRatios{
	bodycomp.Male: {
		Beginner:     {Bench: 1.0, Squat: 1.25, Deadlift: 1.5},
		Intermediate: {Bench: 1.25, Squat: 1.75, Deadlift: 2.0},
		Advanced:     {Bench: 1.5, Squat: 2.25, Deadlift: 2.5},
		Elite:        {Bench: 2.0, Squat: 2.75, Deadlift: 3.0},
	},
	bodycomp.Female: {
		Beginner:     {Bench: 0.5, Squat: 1.0, Deadlift: 1.25},
		Intermediate: {Bench: 0.75, Squat: 1.25, Deadlift: 1.5},
		Advanced:     {Bench: 1.0, Squat: 1.75, Deadlift: 2.0},
		Elite:        {Bench: 1.25, Squat: 2.25, Deadlift: 2.5},
	},
}

// Threshold is the minimum kg per lift to reach a level.
type Threshold struct {
	Bench    float64 `json:"bench"`
	Squat    float64 `json:"squat"`
	Deadlift float64 `json:"deadlift"`
	Total    float64 `json:"total"`
}

func (t Threshold) Value(l Lift) float64 {
	switch l {
	case Bench:
		return t.Bench
	case Squat:
		return t.Squat
	case Deadlift:
		return t.Deadlift
	case Total:
		return t.Total
	}
	return 0
}

// Standards maps every training level to its thresholds for one
// bodyweight and gender.
type Standards map[Level]Threshold

// StandardsFor scales StrengthRatios by bodyweight. An unknown gender yields
// an empty table.
func StandardsFor(bodyweight float64, g bodycomp.Gender) Standards {
	ratios := StrengthRatios[g]
	s := make(Standards, len(ratios))
	for level, r := range ratios {
		s[level] = Threshold{
			Bench:    r.Bench * bodyweight,
			Squat:    r.Squat * bodyweight,
			Deadlift: r.Deadlift * bodyweight,
			Total:    r.Sum() * bodyweight,
		}
	}
	return s
}

// Classify returns the highest level whose threshold does not exceed value,
// checking from Elite down. Below every threshold the result is Novice.
func (s Standards) Classify(l Lift, value float64) Level {
	for i := len(TrainingLevels) - 1; i >= 0; i-- {
		level := TrainingLevels[i]
		t, ok := s[level]
		if !ok {
			continue
		}
		if value >= t.Value(l) {
			return level
		}
	}
	return Novice
}

// Progress is value relative to the Elite threshold, capped at 1.
func (s Standards) Progress(l Lift, value float64) float64 {
	elite := s[Elite].Value(l)
	if elite <= 0 {
		return 0
	}
	p := value / elite
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func ClassifyPerformance(l Lift, value, bodyweight float64, g bodycomp.Gender) Level {
	return StandardsFor(bodyweight, g).Classify(l, value)
}
