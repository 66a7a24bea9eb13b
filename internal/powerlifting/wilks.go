package powerlifting

import (
	"math"

	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
)

// WilksPolynomial holds a..f of the denominator
// a + b·x + c·x² + d·x³ + e·x⁴ + f·x⁵, x being bodyweight in kg.
type WilksPolynomial struct {
	A, B, C, D, E, F float64
}

const wilksNumerator = 600.0

// WilksCoefficients are the 2020-revision constants.
var WilksCoefficients = map[bodycomp.Gender]WilksPolynomial{
	bodycomp.Male: {
		A: -216.0475144,
		B: 16.2606339,
		C: -0.002388645,
		D: -0.00113732,
		E: 7.01863e-6,
		F: -1.291e-8,
	},
	bodycomp.Female: {
		A: 594.31747775582,
		B: -27.23842536447,
		C: 0.82112226871,
		D: -0.00930733913,
		E: 4.731582e-5,
		F: -9.054e-8,
	},
}

// WilksBodyweightRange bounds the bodyweight fed to the polynomial. Outside
// it the denominator turns over and can go negative.
var WilksBodyweightRange = map[bodycomp.Gender]bodycomp.Range{
	bodycomp.Male:   {Min: 40, Max: 201.9},
	bodycomp.Female: {Min: 26.51, Max: 154.53},
}

func (p WilksPolynomial) denominator(x float64) float64 {
	return p.A + p.B*x + p.C*x*x + p.D*x*x*x + p.E*x*x*x*x + p.F*x*x*x*x*x
}

// WilksCoefficient evaluates the polynomial at bodyweight clamped to
// WilksBodyweightRange, so a 250 kg lifter gets the 201.9 kg coefficient and
// the score never goes negative.
func WilksCoefficient(bodyweight float64, g bodycomp.Gender) float64 {
	if r, ok := WilksBodyweightRange[g]; ok {
		bodyweight = math.Max(r.Min, math.Min(r.Max, bodyweight))
	}
	return wilksNumerator / WilksCoefficients[g].denominator(bodyweight)
}

func WilksScore(total, bodyweight float64, g bodycomp.Gender) float64 {
	return total * WilksCoefficient(bodyweight, g)
}
