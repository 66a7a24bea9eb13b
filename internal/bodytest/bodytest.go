// Package bodytest runs a body test end to end: validation, body-fat
// estimation, body composition, powerlifting predictions and strength
// standards. It holds no state and performs no I/O.
package bodytest

import (
	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
	"github.com/yusufkecer/body-test-backend/internal/powerlifting"
)

type Input struct {
	Weight        float64
	Height        float64
	Age           float64
	Gender        bodycomp.Gender
	Method        bodycomp.Method
	Skinfolds     bodycomp.Skinfolds
	Bioimpedance  *bodycomp.Bioimpedance
	ManualFat     *float64
	TrainingLevel powerlifting.Level
	ActivityLevel bodycomp.ActivityLevel
}

type Options struct {
	// NineSite selects the SKINFOLD_9_SITE formula. Empty means Durnin-Womersley.
	NineSite bodycomp.NineSiteFormula
}

// LiftStanding places one predicted lift against the strength standards.
type LiftStanding struct {
	Value    float64            `json:"value"`
	Level    powerlifting.Level `json:"level"`
	Relative float64            `json:"relative"`
	Progress float64            `json:"progress"`
}

type Result struct {
	Composition   bodycomp.Composition
	Predictions   powerlifting.Predictions
	Standards     powerlifting.Standards
	FatCategory   string
	Standings     map[powerlifting.Lift]LiftStanding
	TrainingLevel powerlifting.Level
	ActivityLevel bodycomp.ActivityLevel
}

// Normalize fills the defaulted fields of in and rejects values that no
// estimator can use. It does not look at method-specific fields.
func Normalize(in Input) (Input, error) {
	if !in.Gender.Valid() {
		return in, &bodycomp.ValidationError{Field: "gender", Value: string(in.Gender), Reason: "must be MALE or FEMALE"}
	}
	if err := bodycomp.ValidateAnthropometrics(in.Weight, in.Height, in.Age); err != nil {
		return in, err
	}

	level, err := powerlifting.ParseLevel(string(in.TrainingLevel))
	if err != nil {
		return in, err
	}
	in.TrainingLevel = level

	if in.ActivityLevel == "" {
		in.ActivityLevel = bodycomp.ModeratelyActive
	}
	return in, nil
}

// Run produces the full result for in, or an error and no partial result.
func Run(in Input, opts Options) (Result, error) {
	in, err := Normalize(in)
	if err != nil {
		return Result{}, err
	}

	if len(in.Skinfolds) > 0 {
		if err := bodycomp.ValidateSkinfolds(in.Skinfolds); err != nil {
			return Result{}, err
		}
	}
	if in.Method == bodycomp.ManualInput && in.ManualFat != nil {
		if v := *in.ManualFat; v < bodycomp.MinBodyFat || v > bodycomp.MaxBodyFat {
			return Result{}, &bodycomp.ValidationError{
				Field:  "manualBodyFatPercentage",
				Value:  v,
				Reason: "must be between 1 and 60",
			}
		}
	}

	est, err := bodycomp.NewEstimator(bodycomp.Measurement{
		Method:       in.Method,
		Gender:       in.Gender,
		Age:          in.Age,
		Weight:       in.Weight,
		Height:       in.Height,
		Skinfolds:    in.Skinfolds,
		Bioimpedance: in.Bioimpedance,
		ManualFat:    in.ManualFat,
	}, opts.NineSite)
	if err != nil {
		return Result{}, err
	}

	bf, err := bodycomp.EstimateBodyFat(est)
	if err != nil {
		return Result{}, err
	}

	comp := bodycomp.Calculate(in.Weight, in.Height, in.Age, in.Gender, bf, in.ActivityLevel)
	pred := powerlifting.Predict(comp.LeanBodyMass, in.Weight, in.TrainingLevel, in.Gender)
	std := powerlifting.StandardsFor(in.Weight, in.Gender)

	standings := make(map[powerlifting.Lift]LiftStanding, len(powerlifting.Lifts))
	for _, lift := range powerlifting.Lifts {
		v := pred.Value(lift)
		standings[lift] = LiftStanding{
			Value:    v,
			Level:    std.Classify(lift, v),
			Relative: powerlifting.RelativeStrength(v, in.Weight),
			Progress: std.Progress(lift, v),
		}
	}

	return Result{
		Composition:   comp,
		Predictions:   pred,
		Standards:     std,
		FatCategory:   bodycomp.Categorize(bf, in.Gender),
		Standings:     standings,
		TrainingLevel: in.TrainingLevel,
		ActivityLevel: in.ActivityLevel,
	}, nil
}
