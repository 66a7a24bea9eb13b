package powerlifting

// AnnualGainRates is the expected yearly growth of a total per level.
var AnnualGainRates = map[Level]float64{
	Beginner:     0.40,
	Intermediate: 0.15,
	Advanced:     0.05,
	Elite:        0.02,
}

// ProjectTotal extrapolates currentTotal linearly over days.
func ProjectTotal(currentTotal float64, level Level, days int) float64 {
	daily := AnnualGainRates[level] / 365
	return currentTotal + currentTotal*daily*float64(days)
}

type Volume struct {
	Frequency   string   `json:"frequency"`
	SetsPerLift string   `json:"setsPerLift"`
	RepRange    string   `json:"repRange"`
	Intensity   string   `json:"intensity"`
	FocusAreas  []string `json:"focusAreas"`
}

var VolumeRecommendations = map[Level]Volume{
	Beginner: {
		Frequency:   "3-4 days/week",
		SetsPerLift: "3-4 sets",
		RepRange:    "5-8 reps",
		Intensity:   "70-85% 1RM",
		FocusAreas:  []string{"Form", "Consistency", "Progressive Overload"},
	},
	Intermediate: {
		Frequency:   "4-5 days/week",
		SetsPerLift: "4-6 sets",
		RepRange:    "3-6 reps",
		Intensity:   "75-90% 1RM",
		FocusAreas:  []string{"Periodization", "Weak Points", "Technique Refinement"},
	},
	Advanced: {
		Frequency:   "5-6 days/week",
		SetsPerLift: "5-8 sets",
		RepRange:    "1-5 reps",
		Intensity:   "80-95% 1RM",
		FocusAreas:  []string{"Competition Prep", "Peak Strength", "Advanced Periodization"},
	},
	Elite: {
		Frequency:   "6+ days/week",
		SetsPerLift: "6-10 sets",
		RepRange:    "1-4 reps",
		Intensity:   "85-100% 1RM",
		FocusAreas:  []string{"Competition Strategy", "Peak Performance", "Recovery Optimization"},
	},
}

func VolumeFor(level Level) (Volume, bool) {
	v, ok := VolumeRecommendations[level]
	return v, ok
}
