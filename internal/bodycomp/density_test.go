package bodycomp

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSiri(t *testing.T) {
	got := Siri(1.05)
	if !almostEqual(got, 495/1.05-450, eps) {
		t.Fatalf("Siri(1.05) = %v", got)
	}
	if !almostEqual(got, 21.43, 0.01) {
		t.Errorf("Siri(1.05) = %.4f, want ~21.43", got)
	}
}

func TestBrozek(t *testing.T) {
	if got := Brozek(1.05); !almostEqual(got, 457/1.05-414.2, eps) {
		t.Errorf("Brozek(1.05) = %v", got)
	}
}

func TestThreeSiteMaleLiteral(t *testing.T) {
	e, err := NewEstimator(Measurement{
		Method:    Skinfold3Site,
		Gender:    Male,
		Age:       25,
		Skinfolds: Skinfolds{Chest: 10, Abdomen: 15, Thigh: 12},
	}, NineSiteDurnin)
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}

	got := e.BodyFat()
	want := 495/(1.10938-0.0008267*37+0.0000016*(37*37)-0.0002574*25) - 450
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("3-site male = %v, want %v", got, want)
	}
	if got <= 5 || got >= 25 {
		t.Errorf("3-site male = %v, outside sanity band (5,25)", got)
	}
}

func TestThreeSiteFemaleUsesFemaleSites(t *testing.T) {
	e, err := NewEstimator(Measurement{
		Method:    Skinfold3Site,
		Gender:    Female,
		Age:       30,
		Skinfolds: Skinfolds{Triceps: 15, Suprailiac: 12, Thigh: 20},
	}, NineSiteDurnin)
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}

	c := ThreeSiteCoefficients[Female]
	want := Siri(c.Intercept - c.Sum*47 + c.SumSquared*47*47 - c.Age*30)
	if got := e.BodyFat(); !almostEqual(got, want, eps) {
		t.Errorf("3-site female = %v, want %v", got, want)
	}
}

func TestSevenSite(t *testing.T) {
	s := Skinfolds{}
	for _, site := range SevenSiteSites {
		s[site] = 10
	}

	for _, g := range []Gender{Male, Female} {
		e, err := NewEstimator(Measurement{Method: Skinfold7Site, Gender: g, Age: 30, Skinfolds: s}, NineSiteDurnin)
		if err != nil {
			t.Fatalf("%s: %v", g, err)
		}
		c := SevenSiteCoefficients[g]
		want := Siri(c.Intercept - c.Sum*70 + c.SumSquared*4900 - c.Age*30)
		if got := e.BodyFat(); !almostEqual(got, want, eps) {
			t.Errorf("%s: 7-site = %v, want %v", g, got, want)
		}
	}
}

func TestDurninBandsAreSteps(t *testing.T) {
	tests := []struct {
		age    float64
		gender Gender
		c, m   float64
	}{
		{13, Male, 1.1631, 0.0632},
		{19.99, Male, 1.1631, 0.0632},
		{20, Male, 1.1422, 0.0544},
		{29.5, Male, 1.1422, 0.0544},
		{30, Male, 1.1620, 0.0700},
		{40, Male, 1.1715, 0.0779},
		{49, Male, 1.1715, 0.0779},
		{50, Male, 1.1765, 0.0829},
		{90, Male, 1.1765, 0.0829},
		{18, Female, 1.1549, 0.0678},
		{25, Female, 1.1599, 0.0717},
		{35, Female, 1.1423, 0.0632},
		{45, Female, 1.1333, 0.0612},
		{65, Female, 1.1339, 0.0645},
	}

	for _, tt := range tests {
		b := durninBand(tt.age, tt.gender)
		if b.C != tt.c || b.M != tt.m {
			t.Errorf("durninBand(%v, %s) = C %v M %v, want C %v M %v", tt.age, tt.gender, b.C, b.M, tt.c, tt.m)
		}
	}
}

func TestDurninWomersleyBodyFat(t *testing.T) {
	got := DurninWomersleyBodyFat(90, 25, Male)
	want := 495/(1.1422-0.0544*math.Log10(90)) - 450
	if !almostEqual(got, want, eps) {
		t.Errorf("DurninWomersleyBodyFat = %v, want %v", got, want)
	}
}

func TestParilloBodyFat(t *testing.T) {
	if got := ParilloBodyFat(90); !almostEqual(got, 90*0.11+27, eps) {
		t.Errorf("ParilloBodyFat(90) = %v", got)
	}
}
