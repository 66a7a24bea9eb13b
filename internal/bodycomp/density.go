package bodycomp

import "math"

// Siri converts body density (g/cm³) to a body-fat percentage.
func Siri(density float64) float64 {
	return 495/density - 450
}

// Brozek is the alternative density conversion. Estimators use Siri.
func Brozek(density float64) float64 {
	return 457/density - 414.2
}

// DensityPolynomial is a body-density regression of the form
// Intercept − Sum·s + SumSquared·s² − Age·age, where s is a skinfold sum.
type DensityPolynomial struct {
	Intercept  float64
	Sum        float64
	SumSquared float64
	Age        float64
}

func (p DensityPolynomial) Density(sum, age float64) float64 {
	return p.Intercept - p.Sum*sum + p.SumSquared*(sum*sum) - p.Age*age
}

// ThreeSiteSites lists the sites summed by the 3-site protocol per gender.
var ThreeSiteSites = map[Gender][]Site{
	Male:   {Chest, Abdomen, Thigh},
	Female: {Triceps, Suprailiac, Thigh},
}

var ThreeSiteCoefficients = map[Gender]DensityPolynomial{
	Male:   {Intercept: 1.10938, Sum: 0.0008267, SumSquared: 0.0000016, Age: 0.0002574},
	Female: {Intercept: 1.0994921, Sum: 0.0009929, SumSquared: 0.0000023, Age: 0.0001392},
}

// SevenSiteSites is the Jackson-Pollock site set, identical for both genders.
var SevenSiteSites = []Site{Chest, Midaxillary, Triceps, Subscapular, Abdomen, Suprailiac, Thigh}

var SevenSiteCoefficients = map[Gender]DensityPolynomial{
	Male:   {Intercept: 1.112, Sum: 0.00043499, SumSquared: 0.00000055, Age: 0.00028826},
	Female: {Intercept: 1.097, Sum: 0.00046971, SumSquared: 0.00000056, Age: 0.00012828},
}

var NineSiteSites = []Site{Chest, Midaxillary, Triceps, Subscapular, Abdomen, Suprailiac, Thigh, Calf, Biceps}

// DurninBand holds the constants for density = C − M·log10(sum) applied to
// ages below MaxAge. The last band of each table has MaxAge = +Inf.
type DurninBand struct {
	MaxAge float64
	C      float64
	M      float64
}

// DurninWomersleyBands is a step function on age: <20, 20–29, 30–39, 40–49, 50+.
var DurninWomersleyBands = map[Gender][]DurninBand{
	Male: {
		{MaxAge: 20, C: 1.1631, M: 0.0632},
		{MaxAge: 30, C: 1.1422, M: 0.0544},
		{MaxAge: 40, C: 1.1620, M: 0.0700},
		{MaxAge: 50, C: 1.1715, M: 0.0779},
		{MaxAge: math.Inf(1), C: 1.1765, M: 0.0829},
	},
	Female: {
		{MaxAge: 20, C: 1.1549, M: 0.0678},
		{MaxAge: 30, C: 1.1599, M: 0.0717},
		{MaxAge: 40, C: 1.1423, M: 0.0632},
		{MaxAge: 50, C: 1.1333, M: 0.0612},
		{MaxAge: math.Inf(1), C: 1.1339, M: 0.0645},
	},
}

func durninBand(age float64, g Gender) DurninBand {
	bands := DurninWomersleyBands[g]
	for _, b := range bands {
		if age < b.MaxAge {
			return b
		}
	}
	return bands[len(bands)-1]
}

const (
	ParilloFactor   = 0.11
	ParilloConstant = 27.0
)

// ThreeSiteBodyFat applies the gender-specific 3-site regression to a
// precomputed skinfold sum.
func ThreeSiteBodyFat(sum, age float64, g Gender) float64 {
	return Siri(ThreeSiteCoefficients[g].Density(sum, age))
}

func SevenSiteBodyFat(sum, age float64, g Gender) float64 {
	return Siri(SevenSiteCoefficients[g].Density(sum, age))
}

func DurninWomersleyBodyFat(sum, age float64, g Gender) float64 {
	b := durninBand(age, g)
	return Siri(b.C - b.M*math.Log10(sum))
}

// ParilloBodyFat is a linear approximation with no density step.
func ParilloBodyFat(sum float64) float64 {
	return sum*ParilloFactor + ParilloConstant
}

func sumSites(s Skinfolds, sites []Site) float64 {
	var total float64
	for _, site := range sites {
		total += s[site]
	}
	return total
}

func missingSites(s Skinfolds, sites []Site) []string {
	var missing []string
	for _, site := range sites {
		if _, ok := s[site]; !ok {
			missing = append(missing, string(site))
		}
	}
	return missing
}
