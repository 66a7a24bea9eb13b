package bodycomp

import "testing"

func TestCalculateInvariants(t *testing.T) {
	for _, weight := range []float64{30, 57.3, 80, 142.8, 300} {
		for bf := 1.0; bf <= 60; bf += 0.5 {
			c := Calculate(weight, 180, 30, Male, bf, ModeratelyActive)

			if !almostEqual(c.FatMass+c.LeanBodyMass, weight, eps) {
				t.Fatalf("weight %v bf %v: fat %v + lean %v != weight", weight, bf, c.FatMass, c.LeanBodyMass)
			}
			if c.MuscleMass != c.LeanBodyMass*0.525 {
				t.Fatalf("muscle mass %v != lean*0.525", c.MuscleMass)
			}
			if c.TotalBodyWater != c.LeanBodyMass*0.73 {
				t.Fatalf("body water %v != lean*0.73", c.TotalBodyWater)
			}
			if c.BodyFatPercentage != bf {
				t.Fatalf("body fat %v != %v", c.BodyFatPercentage, bf)
			}
		}
	}
}

func TestCalculateEnergy(t *testing.T) {
	c := Calculate(80, 180, 30, Male, 20, VeryActive)

	if c.LeanBodyMass != 64 {
		t.Fatalf("lean = %v, want 64", c.LeanBodyMass)
	}
	if want := 370 + 21.6*64; !almostEqual(c.BMR, want, eps) {
		t.Errorf("bmr = %v, want %v", c.BMR, want)
	}
	if want := c.BMR * 1.725; !almostEqual(c.TDEE, want, eps) {
		t.Errorf("tdee = %v, want %v", c.TDEE, want)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	a := Calculate(72.4, 171, 28, Female, 24.7, LightlyActive)
	b := Calculate(72.4, 171, 28, Female, 24.7, LightlyActive)
	if a != b {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{Sedentary, 1.2},
		{LightlyActive, 1.375},
		{ModeratelyActive, 1.55},
		{VeryActive, 1.725},
		{ExtraActive, 1.9},
		{"COUCH", 1.55},
		{"", 1.55},
	}

	for _, tt := range tests {
		if got := ActivityMultiplier(tt.level); got != tt.want {
			t.Errorf("ActivityMultiplier(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestAlternateBMR(t *testing.T) {
	if got, want := BMRMifflin(80, 180, 30, Male), 10*80+6.25*180-5*30+5.0; !almostEqual(got, want, eps) {
		t.Errorf("BMRMifflin male = %v, want %v", got, want)
	}
	if got, want := BMRMifflin(60, 165, 30, Female), 10*60+6.25*165-5*30-161.0; !almostEqual(got, want, eps) {
		t.Errorf("BMRMifflin female = %v, want %v", got, want)
	}
	if got, want := BMRHarrisBenedict(80, 180, 30, Male), 88.362+13.397*80+4.799*180-5.677*30; !almostEqual(got, want, eps) {
		t.Errorf("BMRHarrisBenedict male = %v, want %v", got, want)
	}
	if got, want := BMRHarrisBenedict(60, 165, 30, Female), 447.593+9.247*60+3.098*165-4.330*30; !almostEqual(got, want, eps) {
		t.Errorf("BMRHarrisBenedict female = %v, want %v", got, want)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		bf     float64
		gender Gender
		want   string
	}{
		{5, Male, "Essential Fat"},
		{6, Male, "Athletes"},
		{16.9, Male, "Fitness"},
		{17, Male, "Average"},
		{30, Male, "Obese"},
		{12, Female, "Essential Fat"},
		{22, Female, "Fitness"},
		{31, Female, "Obese"},
		{20, "OTHER", UnknownCategory},
	}

	for _, tt := range tests {
		if got := Categorize(tt.bf, tt.gender); got != tt.want {
			t.Errorf("Categorize(%v, %s) = %q, want %q", tt.bf, tt.gender, got, tt.want)
		}
	}
}
