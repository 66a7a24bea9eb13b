package bodycomp

// FatCategory is a half-open band [Min, Max) of body-fat percentage.
type FatCategory struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

var BodyFatCategories = map[Gender][]FatCategory{
	Male: {
		{Label: "Essential Fat", Min: 0, Max: 6},
		{Label: "Athletes", Min: 6, Max: 13},
		{Label: "Fitness", Min: 13, Max: 17},
		{Label: "Average", Min: 17, Max: 25},
		{Label: "Obese", Min: 25, Max: 100},
	},
	Female: {
		{Label: "Essential Fat", Min: 0, Max: 13},
		{Label: "Athletes", Min: 13, Max: 20},
		{Label: "Fitness", Min: 20, Max: 24},
		{Label: "Average", Min: 24, Max: 31},
		{Label: "Obese", Min: 31, Max: 100},
	},
}

const UnknownCategory = "Unknown"

// Categorize returns the label of the band containing bodyFat.
func Categorize(bodyFat float64, g Gender) string {
	for _, c := range BodyFatCategories[g] {
		if bodyFat >= c.Min && bodyFat < c.Max {
			return c.Label
		}
	}
	return UnknownCategory
}
