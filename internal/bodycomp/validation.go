package bodycomp

import "fmt"

// Kind names a raw input that has a fixed acceptable range.
type Kind string

const (
	KindSkinfold Kind = "skinfold"
	KindWeight   Kind = "weight"
	KindHeight   Kind = "height"
	KindAge      Kind = "age"
)

type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MeasurementRanges are inclusive. Skinfolds in mm, weight in kg, height in
// cm, age in years.
var MeasurementRanges = map[Kind]Range{
	KindSkinfold: {Min: 2, Max: 50},
	KindWeight:   {Min: 30, Max: 300},
	KindHeight:   {Min: 120, Max: 250},
	KindAge:      {Min: 10, Max: 100},
}

const (
	MinBodyFat = 1.0
	MaxBodyFat = 60.0
)

// ValidateMeasurement reports whether value is acceptable for kind. Unknown
// kinds are never valid.
func ValidateMeasurement(value float64, kind Kind) bool {
	r, ok := MeasurementRanges[kind]
	if !ok {
		return false
	}
	return r.Contains(value)
}

// ValidateSkinfolds checks every supplied site, including the ones the chosen
// method will not use.
func ValidateSkinfolds(s Skinfolds) error {
	for _, site := range AllSites {
		v, ok := s[site]
		if !ok {
			continue
		}
		if !ValidateMeasurement(v, KindSkinfold) {
			return &ValidationError{Field: "skinfold " + string(site), Value: v, Reason: rangeReason(KindSkinfold)}
		}
	}
	for site := range s {
		if !site.known() {
			return &ValidationError{Field: "skinfold site", Value: string(site), Reason: "unknown site"}
		}
	}
	return nil
}

func (s Site) known() bool {
	for _, k := range AllSites {
		if k == s {
			return true
		}
	}
	return false
}

// ValidateAnthropometrics checks weight, height and age against
// MeasurementRanges.
func ValidateAnthropometrics(weight, height, age float64) error {
	checks := []struct {
		kind  Kind
		value float64
	}{
		{KindWeight, weight},
		{KindHeight, height},
		{KindAge, age},
	}
	for _, c := range checks {
		if !ValidateMeasurement(c.value, c.kind) {
			return &ValidationError{Field: string(c.kind), Value: c.value, Reason: rangeReason(c.kind)}
		}
	}
	return nil
}

func rangeReason(k Kind) string {
	r := MeasurementRanges[k]
	return fmt.Sprintf("must be between %g and %g", r.Min, r.Max)
}
