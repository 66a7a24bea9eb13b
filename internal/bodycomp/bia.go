package bodycomp

import "math"

// BIALinear is bodyFat = Intercept − Index·ii − Age·age + BMI·(weight/h²),
// where ii is the impedance index h²/resistance and h is height in meters.
type BIALinear struct {
	Intercept float64
	Index     float64
	Age       float64
	BMI       float64
}

var BIACoefficients = map[Gender]BIALinear{
	Male:   {Intercept: 20.94, Index: 0.78, Age: 0.28, BMI: 1.33},
	Female: {Intercept: 32.03, Index: 0.69, Age: 0.14, BMI: 0.40},
}

const (
	BIAMinBodyFat = 3.0
	BIAMaxBodyFat = 50.0
)

// ImpedanceIndex returns height² (m²) / resistance (ohms).
func ImpedanceIndex(heightCm, resistance float64) float64 {
	h := heightCm / 100
	return h * h / resistance
}

// BIARaw is the unclamped bio-impedance estimate.
func BIARaw(resistance, heightCm, weight, age float64, g Gender) float64 {
	h := heightCm / 100
	h2 := h * h
	ii := h2 / resistance
	c := BIACoefficients[g]
	return c.Intercept - c.Index*ii - c.Age*age + c.BMI*weight/h2
}

// BIABodyFat clamps BIARaw to [BIAMinBodyFat, BIAMaxBodyFat].
func BIABodyFat(resistance, heightCm, weight, age float64, g Gender) float64 {
	return math.Max(BIAMinBodyFat, math.Min(BIAMaxBodyFat, BIARaw(resistance, heightCm, weight, age, g)))
}
