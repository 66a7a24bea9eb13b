package bodycomp

import "math"

// Estimator is the closed set of body-fat determination paths. The
// unexported method keeps implementations inside this package, so every
// switch over estimators can list all of them.
type Estimator interface {
	Method() Method
	BodyFat() float64
	estimator()
}

type ThreeSite struct {
	Gender Gender
	Age    float64
	Sum    float64
}

type SevenSite struct {
	Gender Gender
	Age    float64
	Sum    float64
}

type DurninWomersley struct {
	Gender Gender
	Age    float64
	Sum    float64
}

// Parillo is an alternative 9-site estimator. NewEstimator never returns it
// unless asked to through NineSiteParillo.
type Parillo struct {
	Sum float64
}

type BioimpedanceEstimate struct {
	Gender     Gender
	Age        float64
	Weight     float64
	Height     float64
	Resistance float64
}

type Manual struct {
	Percentage float64
}

func (ThreeSite) Method() Method            { return Skinfold3Site }
func (SevenSite) Method() Method            { return Skinfold7Site }
func (DurninWomersley) Method() Method      { return Skinfold9Site }
func (Parillo) Method() Method              { return Skinfold9Site }
func (BioimpedanceEstimate) Method() Method { return BIA }
func (Manual) Method() Method               { return ManualInput }

func (e ThreeSite) BodyFat() float64       { return ThreeSiteBodyFat(e.Sum, e.Age, e.Gender) }
func (e SevenSite) BodyFat() float64       { return SevenSiteBodyFat(e.Sum, e.Age, e.Gender) }
func (e DurninWomersley) BodyFat() float64 { return DurninWomersleyBodyFat(e.Sum, e.Age, e.Gender) }
func (e Parillo) BodyFat() float64         { return ParilloBodyFat(e.Sum) }
func (e Manual) BodyFat() float64          { return e.Percentage }

func (e BioimpedanceEstimate) BodyFat() float64 {
	return BIABodyFat(e.Resistance, e.Height, e.Weight, e.Age, e.Gender)
}

func (ThreeSite) estimator()            {}
func (SevenSite) estimator()            {}
func (DurninWomersley) estimator()      {}
func (Parillo) estimator()              {}
func (BioimpedanceEstimate) estimator() {}
func (Manual) estimator()               {}

// NineSiteFormula chooses which estimator backs SKINFOLD_9_SITE.
type NineSiteFormula string

const (
	NineSiteDurnin  NineSiteFormula = "durnin"
	NineSiteParillo NineSiteFormula = "parillo"
)

// NewEstimator selects the estimator for m.Method and checks that the
// method's required fields are present. Ranges are not checked here.
func NewEstimator(m Measurement, nine NineSiteFormula) (Estimator, error) {
	if !m.Gender.Valid() {
		return nil, &ValidationError{Field: "gender", Value: string(m.Gender), Reason: "must be MALE or FEMALE"}
	}

	switch m.Method {
	case Skinfold3Site:
		sites := ThreeSiteSites[m.Gender]
		if missing := missingSites(m.Skinfolds, sites); len(missing) > 0 {
			return nil, &MissingMeasurementError{Method: m.Method, Fields: missing}
		}
		return ThreeSite{Gender: m.Gender, Age: m.Age, Sum: sumSites(m.Skinfolds, sites)}, nil

	case Skinfold7Site:
		if missing := missingSites(m.Skinfolds, SevenSiteSites); len(missing) > 0 {
			return nil, &MissingMeasurementError{Method: m.Method, Fields: missing}
		}
		return SevenSite{Gender: m.Gender, Age: m.Age, Sum: sumSites(m.Skinfolds, SevenSiteSites)}, nil

	case Skinfold9Site:
		if missing := missingSites(m.Skinfolds, NineSiteSites); len(missing) > 0 {
			return nil, &MissingMeasurementError{Method: m.Method, Fields: missing}
		}
		sum := sumSites(m.Skinfolds, NineSiteSites)
		if nine == NineSiteParillo {
			return Parillo{Sum: sum}, nil
		}
		return DurninWomersley{Gender: m.Gender, Age: m.Age, Sum: sum}, nil

	case BIA:
		if m.Bioimpedance == nil || m.Bioimpedance.Resistance <= 0 {
			return nil, &MissingMeasurementError{Method: m.Method, Fields: []string{"resistance"}}
		}
		return BioimpedanceEstimate{
			Gender:     m.Gender,
			Age:        m.Age,
			Weight:     m.Weight,
			Height:     m.Height,
			Resistance: m.Bioimpedance.Resistance,
		}, nil

	case ManualInput:
		if m.ManualFat == nil {
			return nil, &MissingMeasurementError{Method: m.Method, Fields: []string{"manualBodyFatPercentage"}}
		}
		return Manual{Percentage: *m.ManualFat}, nil
	}

	return nil, &UnsupportedMethodError{Method: m.Method}
}

// EstimateBodyFat runs e and enforces the global body-fat bounds. BIA results
// are already clamped by their formula and always pass.
func EstimateBodyFat(e Estimator) (float64, error) {
	bf := e.BodyFat()
	if math.IsNaN(bf) || bf < MinBodyFat || bf > MaxBodyFat {
		return 0, &OutOfRangeResultError{Method: e.Method(), BodyFat: bf, Min: MinBodyFat, Max: MaxBodyFat}
	}
	return bf, nil
}
