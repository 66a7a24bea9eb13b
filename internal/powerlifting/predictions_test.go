package powerlifting

import (
	"math"
	"testing"

	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
)

var genders = []bodycomp.Gender{bodycomp.Male, bodycomp.Female}

func TestPredictTotalIsSum(t *testing.T) {
	for _, g := range genders {
		for _, level := range TrainingLevels {
			p := Predict(63.7, 82.5, level, g)
			if p.Total() != p.BenchPress1RM+p.Squat1RM+p.Deadlift1RM {
				t.Errorf("%s %s: total %v is not the sum of lifts", g, level, p.Total())
			}
			if p.Value(Total) != p.Total() {
				t.Errorf("%s %s: Value(Total) = %v", g, level, p.Value(Total))
			}
			if p.WilksScore < 0 {
				t.Errorf("%s %s: negative wilks %v", g, level, p.WilksScore)
			}
		}
	}
}

func TestPredictUsesLeanMassTable(t *testing.T) {
	tests := []struct {
		level                  Level
		bench, squat, deadlift float64
	}{
		{Beginner, 1.2, 1.8, 2.0},
		{Intermediate, 1.6, 2.2, 2.5},
		{Advanced, 2.0, 2.8, 3.0},
		{Elite, 2.2, 3.2, 3.5},
	}

	for _, tt := range tests {
		p := Predict(70, 85, tt.level, bodycomp.Male)
		if p.BenchPress1RM != 70*tt.bench || p.Squat1RM != 70*tt.squat || p.Deadlift1RM != 70*tt.deadlift {
			t.Errorf("%s: got %+v", tt.level, p)
		}
	}
}

func TestLeanMassMultipliersOrdering(t *testing.T) {
	for i := 1; i < len(TrainingLevels); i++ {
		lo, hi := LeanMassMultipliers[TrainingLevels[i-1]], LeanMassMultipliers[TrainingLevels[i]]
		if !(lo.Bench < hi.Bench && lo.Squat < hi.Squat && lo.Deadlift < hi.Deadlift) {
			t.Errorf("%s -> %s not strictly increasing", TrainingLevels[i-1], TrainingLevels[i])
		}
	}
	for _, level := range TrainingLevels {
		m := LeanMassMultipliers[level]
		if !(m.Bench < m.Squat && m.Squat < m.Deadlift) {
			t.Errorf("%s: want bench < squat < deadlift, got %+v", level, m)
		}
	}
}

func TestPredictUnknownLevelFallsBack(t *testing.T) {
	got := Predict(60, 75, "PRO", bodycomp.Female)
	want := Predict(60, 75, Intermediate, bodycomp.Female)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWilksCoefficientLiteral(t *testing.T) {
	want := 600 / (-216.0475144 + 16.2606339*100 - 0.002388645*math.Pow(100, 2) - 0.00113732*math.Pow(100, 3) +
		7.01863e-6*math.Pow(100, 4) - 1.291e-8*math.Pow(100, 5))

	got := WilksCoefficient(100, bodycomp.Male)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("WilksCoefficient(100, MALE) = %v, want %v", got, want)
	}
	if score := WilksScore(500, 100, bodycomp.Male); math.Abs(score-500*want) > 1e-9 {
		t.Errorf("WilksScore = %v, want %v", score, 500*want)
	}
}

func TestWilksCoefficientFemale(t *testing.T) {
	c := WilksCoefficients[bodycomp.Female]
	x := 60.0
	want := 600 / (c.A + c.B*x + c.C*x*x + c.D*x*x*x + c.E*x*x*x*x + c.F*x*x*x*x*x)
	if got := WilksCoefficient(x, bodycomp.Female); math.Abs(got-want) > 1e-12 {
		t.Errorf("WilksCoefficient(60, FEMALE) = %v, want %v", got, want)
	}
}

func TestWilksCoefficientClampsBodyweight(t *testing.T) {
	for _, g := range genders {
		r := WilksBodyweightRange[g]
		if WilksCoefficient(r.Max+100, g) != WilksCoefficient(r.Max, g) {
			t.Errorf("%s: heavy bodyweight not clamped", g)
		}
		if WilksCoefficient(r.Min-10, g) != WilksCoefficient(r.Min, g) {
			t.Errorf("%s: light bodyweight not clamped", g)
		}
		for bw := 30.0; bw <= 300; bw += 5 {
			if c := WilksCoefficient(bw, g); c <= 0 {
				t.Errorf("%s: coefficient at %vkg = %v", g, bw, c)
			}
		}
	}
}

func TestRelativeStrength(t *testing.T) {
	if got := RelativeStrength(150, 100); got != 1.5 {
		t.Errorf("RelativeStrength = %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel(""); err != nil || l != Intermediate {
		t.Errorf("ParseLevel(\"\") = %v, %v", l, err)
	}
	if l, err := ParseLevel("ELITE"); err != nil || l != Elite {
		t.Errorf("ParseLevel(ELITE) = %v, %v", l, err)
	}
	if _, err := ParseLevel("NOVICE"); err == nil {
		t.Error("NOVICE is not a training level")
	}
}
