package bodycomp

// ActivityMultipliers scale BMR to total daily energy expenditure.
var ActivityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// DefaultActivityMultiplier applies to unknown activity levels.
const DefaultActivityMultiplier = 1.55

const (
	katchIntercept = 370.0
	katchPerLeanKg = 21.6
)

func BMRKatchMcArdle(leanBodyMass float64) float64 {
	return katchIntercept + katchPerLeanKg*leanBodyMass
}

// BMRMifflin is Mifflin-St Jeor, for callers without a body-fat percentage.
func BMRMifflin(weight, height, age float64, g Gender) float64 {
	base := 10*weight + 6.25*height - 5*age
	if g == Male {
		return base + 5
	}
	return base - 161
}

// BMRHarrisBenedict uses the revised (1984) coefficients.
func BMRHarrisBenedict(weight, height, age float64, g Gender) float64 {
	if g == Male {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*age
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*age
}

func ActivityMultiplier(a ActivityLevel) float64 {
	if m, ok := ActivityMultipliers[a]; ok {
		return m
	}
	return DefaultActivityMultiplier
}

func TDEE(bmr float64, a ActivityLevel) float64 {
	return bmr * ActivityMultiplier(a)
}
