package bodycomp

const (
	// MuscleToLeanRatio approximates skeletal muscle as a fixed share of lean
	// mass. It is an empirical estimate, not a measurement.
	MuscleToLeanRatio = 0.525
	// WaterToLeanRatio is the water content of lean tissue.
	WaterToLeanRatio = 0.73
)

// Composition is derived from a body-fat percentage and anthropometrics.
// Masses are kg, energy is kcal/day.
type Composition struct {
	BodyFatPercentage float64 `json:"bodyFatPercentage"`
	LeanBodyMass      float64 `json:"leanBodyMass"`
	FatMass           float64 `json:"fatMass"`
	MuscleMass        float64 `json:"muscleMass"`
	TotalBodyWater    float64 `json:"totalBodyWater"`
	BMR               float64 `json:"bmr"`
	TDEE              float64 `json:"tdee"`
}

func FatMass(weight, bodyFat float64) float64 {
	return weight * bodyFat / 100
}

func LeanBodyMass(weight, bodyFat float64) float64 {
	return weight - FatMass(weight, bodyFat)
}

func MuscleMass(leanBodyMass float64) float64 {
	return leanBodyMass * MuscleToLeanRatio
}

func TotalBodyWater(leanBodyMass float64) float64 {
	return leanBodyMass * WaterToLeanRatio
}

// Calculate assumes validated inputs. BMR uses Katch-McArdle because lean
// mass is known at this point; height, age and gender are only needed by the
// alternate BMR formulas and are accepted so callers can switch.
func Calculate(weight, height, age float64, gender Gender, bodyFat float64, activity ActivityLevel) Composition {
	fat := FatMass(weight, bodyFat)
	lbm := weight - fat
	bmr := BMRKatchMcArdle(lbm)

	return Composition{
		BodyFatPercentage: bodyFat,
		LeanBodyMass:      lbm,
		FatMass:           fat,
		MuscleMass:        MuscleMass(lbm),
		TotalBodyWater:    TotalBodyWater(lbm),
		BMR:               bmr,
		TDEE:              TDEE(bmr, activity),
	}
}
