package domain

import (
	"time"

	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
	"github.com/yusufkecer/body-test-backend/internal/bodytest"
	"github.com/yusufkecer/body-test-backend/internal/powerlifting"
)

// DateLayout is the calendar-day format of MeasurementDate.
const DateLayout = "2006-01-02"

type BodyTestRequest struct {
	Weight                  float64                `json:"weight"`
	Height                  float64                `json:"height"`
	Age                     float64                `json:"age"`
	Gender                  string                 `json:"gender"`
	MeasurementMethod       string                 `json:"measurementMethod"`
	SkinfoldMeasurements    map[string]float64     `json:"skinfoldMeasurements,omitempty"`
	BioImpedanceData        *bodycomp.Bioimpedance `json:"bioImpedanceData,omitempty"`
	ManualBodyFatPercentage *float64               `json:"manualBodyFatPercentage,omitempty"`
	TrainingLevel           string                 `json:"trainingLevel,omitempty"`
	ActivityLevel           string                 `json:"activityLevel,omitempty"`
	MeasurementDate         string                 `json:"measurementDate,omitempty"`
	Notes                   *string                `json:"notes,omitempty"`
}

type BodyComposition struct {
	BodyFatPercentage float64 `json:"bodyFatPercentage"`
	LeanBodyMass      float64 `json:"leanBodyMass"`
	FatMass           float64 `json:"fatMass"`
	MuscleMass        float64 `json:"muscleMass"`
	TotalBodyWater    float64 `json:"totalBodyWater"`
	BMR               float64 `json:"bmr"`
	TDEE              float64 `json:"tdee"`
}

type PowerliftingPredictions struct {
	BenchPress1RM float64 `json:"benchPress1RM"`
	Squat1RM      float64 `json:"squat1RM"`
	Deadlift1RM   float64 `json:"deadlift1RM"`
	Total         float64 `json:"total"`
	WilksScore    float64 `json:"wilksScore"`
}

// NewPowerliftingPredictions copies p, deriving Total from the three lifts.
func NewPowerliftingPredictions(p powerlifting.Predictions) PowerliftingPredictions {
	return PowerliftingPredictions{
		BenchPress1RM: p.BenchPress1RM,
		Squat1RM:      p.Squat1RM,
		Deadlift1RM:   p.Deadlift1RM,
		Total:         p.Total(),
		WilksScore:    p.WilksScore,
	}
}

// BodyTest is one stored measurement. A user has at most one per calendar day.
type BodyTest struct {
	ID                      string                  `json:"id"`
	UserID                  string                  `json:"userId"`
	MeasurementDate         string                  `json:"measurementDate"`
	Weight                  float64                 `json:"weight"`
	Height                  float64                 `json:"height"`
	Age                     float64                 `json:"age"`
	Gender                  string                  `json:"gender"`
	MeasurementMethod       string                  `json:"measurementMethod"`
	SkinfoldMeasurements    map[string]float64      `json:"skinfoldMeasurements,omitempty"`
	BioImpedanceData        *bodycomp.Bioimpedance  `json:"bioImpedanceData,omitempty"`
	ManualBodyFatPercentage *float64                `json:"manualBodyFatPercentage,omitempty"`
	TrainingLevel           string                  `json:"trainingLevel"`
	ActivityLevel           string                  `json:"activityLevel"`
	BodyComposition         BodyComposition         `json:"bodyComposition"`
	PowerliftingPredictions PowerliftingPredictions `json:"powerliftingPredictions"`
	Notes                   *string                 `json:"notes,omitempty"`
	CreatedAt               time.Time               `json:"createdAt"`
	UpdatedAt               time.Time               `json:"updatedAt"`
}

// BodyTestFilter narrows a history listing. Dates use DateLayout.
type BodyTestFilter struct {
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

type Pagination struct {
	Current      int `json:"current"`
	Total        int `json:"total"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
}

type BodyTestPage struct {
	Measurements []BodyTest `json:"measurements"`
	Pagination   Pagination `json:"pagination"`
}

type BodyTestSaved struct {
	IsUpdate          bool                   `json:"isUpdate"`
	Message           string                 `json:"message"`
	Measurement       BodyTest               `json:"measurement"`
	StrengthStandards powerlifting.Standards `json:"strengthStandards"`
	Analysis          Analysis               `json:"analysis"`
}

type TodayBodyTest struct {
	HasToday         bool      `json:"hasToday"`
	TodayMeasurement *BodyTest `json:"todayMeasurement"`
}

// Analysis is the display-oriented part of a result that is not stored.
type Analysis struct {
	BodyFatCategory string                                      `json:"bodyFatCategory"`
	Lifts           map[powerlifting.Lift]bodytest.LiftStanding `json:"lifts"`
}

// BodyTestResult is the response of a stateless calculation.
type BodyTestResult struct {
	BodyComposition         BodyComposition         `json:"bodyComposition"`
	PowerliftingPredictions PowerliftingPredictions `json:"powerliftingPredictions"`
	StrengthStandards       powerlifting.Standards  `json:"strengthStandards"`
	TrainingLevel           powerlifting.Level      `json:"trainingLevel"`
	ActivityLevel           bodycomp.ActivityLevel  `json:"activityLevel"`
	Analysis                Analysis                `json:"analysis"`
}

// Input converts the request into engine input. Ranges are checked by the
// engine, not here.
func (r BodyTestRequest) Input() bodytest.Input {
	var sites bodycomp.Skinfolds
	if len(r.SkinfoldMeasurements) > 0 {
		sites = make(bodycomp.Skinfolds, len(r.SkinfoldMeasurements))
		for k, v := range r.SkinfoldMeasurements {
			sites[bodycomp.Site(k)] = v
		}
	}

	return bodytest.Input{
		Weight:        r.Weight,
		Height:        r.Height,
		Age:           r.Age,
		Gender:        bodycomp.Gender(r.Gender),
		Method:        bodycomp.Method(r.MeasurementMethod),
		Skinfolds:     sites,
		Bioimpedance:  r.BioImpedanceData,
		ManualFat:     r.ManualBodyFatPercentage,
		TrainingLevel: powerlifting.Level(r.TrainingLevel),
		ActivityLevel: bodycomp.ActivityLevel(r.ActivityLevel),
	}
}

func NewBodyComposition(c bodycomp.Composition) BodyComposition {
	return BodyComposition(c)
}

func NewBodyTestResult(res bodytest.Result) BodyTestResult {
	return BodyTestResult{
		BodyComposition:         NewBodyComposition(res.Composition),
		PowerliftingPredictions: NewPowerliftingPredictions(res.Predictions),
		StrengthStandards:       res.Standards,
		TrainingLevel:           res.TrainingLevel,
		ActivityLevel:           res.ActivityLevel,
		Analysis:                Analysis{BodyFatCategory: res.FatCategory, Lifts: res.Standings},
	}
}

// NewBodyTest builds the record to store for userID on date.
func NewBodyTest(userID, date string, req BodyTestRequest, res bodytest.Result) BodyTest {
	return BodyTest{
		UserID:                  userID,
		MeasurementDate:         date,
		Weight:                  req.Weight,
		Height:                  req.Height,
		Age:                     req.Age,
		Gender:                  req.Gender,
		MeasurementMethod:       req.MeasurementMethod,
		SkinfoldMeasurements:    req.SkinfoldMeasurements,
		BioImpedanceData:        req.BioImpedanceData,
		ManualBodyFatPercentage: req.ManualBodyFatPercentage,
		TrainingLevel:           string(res.TrainingLevel),
		ActivityLevel:           string(res.ActivityLevel),
		BodyComposition:         NewBodyComposition(res.Composition),
		PowerliftingPredictions: NewPowerliftingPredictions(res.Predictions),
		Notes:                   req.Notes,
	}
}
