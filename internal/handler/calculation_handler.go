package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
	"github.com/yusufkecer/body-test-backend/internal/bodytest"
	"github.com/yusufkecer/body-test-backend/internal/domain"
	"github.com/yusufkecer/body-test-backend/internal/metrics"
	"github.com/yusufkecer/body-test-backend/internal/powerlifting"
)

const defaultProjectionDays = 365

// CalculationHandler serves engine results without storing anything.
type CalculationHandler struct {
	opts bodytest.Options
}

func NewCalculationHandler(opts bodytest.Options) *CalculationHandler {
	return &CalculationHandler{opts: opts}
}

func (h *CalculationHandler) BodyComposition(w http.ResponseWriter, r *http.Request) {
	var req domain.BodyTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := bodytest.Run(req.Input(), h.opts)
	if err != nil {
		metrics.IncCalculation(req.MeasurementMethod, metrics.OutcomeRejected)
		writeCalculationError(w, err)
		return
	}
	metrics.IncCalculation(req.MeasurementMethod, metrics.OutcomeOK)
	metrics.ObserveBodyFat(req.Gender, res.Composition.BodyFatPercentage)

	writeJSON(w, http.StatusOK, domain.NewBodyTestResult(res))
}

type oneRepMaxRequest struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type oneRepMaxResponse struct {
	OneRepMax float64                       `json:"oneRepMax"`
	Epley     float64                       `json:"epley"`
	Brzycki   float64                       `json:"brzycki"`
	OConner   float64                       `json:"oconner"`
	Weights   powerlifting.OneRepMaxWeights `json:"weights"`
}

func (h *CalculationHandler) OneRepMax(w http.ResponseWriter, r *http.Request) {
	var req oneRepMaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Weight <= 0 {
		writeError(w, http.StatusBadRequest, "weight must be positive")
		return
	}

	orm, err := powerlifting.OneRepMax(req.Weight, req.Reps)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, oneRepMaxResponse{
		OneRepMax: orm,
		Epley:     powerlifting.Epley(req.Weight, req.Reps),
		Brzycki:   powerlifting.Brzycki(req.Weight, req.Reps),
		OConner:   powerlifting.OConner(req.Weight, req.Reps),
		Weights:   powerlifting.WeightsFor(req.Reps),
	})
}

type standardsResponse struct {
	Bodyweight float64                `json:"bodyweight"`
	Gender     bodycomp.Gender        `json:"gender"`
	Standards  powerlifting.Standards `json:"standards"`
	Lift       powerlifting.Lift      `json:"lift,omitempty"`
	Value      float64                `json:"value,omitempty"`
	Level      powerlifting.Level     `json:"level,omitempty"`
}

// StrengthStandards returns the thresholds for a bodyweight. With lift and
// value it also classifies that performance.
func (h *CalculationHandler) StrengthStandards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bw, err := strconv.ParseFloat(q.Get("bodyweight"), 64)
	if err != nil || !bodycomp.ValidateMeasurement(bw, bodycomp.KindWeight) {
		writeError(w, http.StatusBadRequest, "bodyweight must be a number between 30 and 300")
		return
	}
	g := bodycomp.Gender(q.Get("gender"))
	if !g.Valid() {
		writeError(w, http.StatusBadRequest, "gender must be MALE or FEMALE")
		return
	}

	resp := standardsResponse{
		Bodyweight: bw,
		Gender:     g,
		Standards:  powerlifting.StandardsFor(bw, g),
	}

	if lift := q.Get("lift"); lift != "" {
		if !knownLift(powerlifting.Lift(lift)) {
			writeError(w, http.StatusBadRequest, "unknown lift: "+lift)
			return
		}
		v, err := strconv.ParseFloat(q.Get("value"), 64)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "value must be a non-negative number")
			return
		}
		resp.Lift = powerlifting.Lift(lift)
		resp.Value = v
		resp.Level = resp.Standards.Classify(resp.Lift, v)
	}

	writeJSON(w, http.StatusOK, resp)
}

type trainingPlanResponse struct {
	Level          powerlifting.Level  `json:"level"`
	Volume         powerlifting.Volume `json:"volume"`
	AnnualGainRate float64             `json:"annualGainRate"`
	Total          float64             `json:"total,omitempty"`
	Days           int                 `json:"days,omitempty"`
	ProjectedTotal float64             `json:"projectedTotal,omitempty"`
}

// TrainingPlan returns volume guidance for a level and, given a current
// total, a linear projection of it.
func (h *CalculationHandler) TrainingPlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	level, err := powerlifting.ParseLevel(q.Get("level"))
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	vol, ok := powerlifting.VolumeFor(level)
	if !ok {
		writeError(w, http.StatusBadRequest, "no training plan for level "+string(level))
		return
	}

	resp := trainingPlanResponse{
		Level:          level,
		Volume:         vol,
		AnnualGainRate: powerlifting.AnnualGainRates[level],
	}

	if s := q.Get("total"); s != "" {
		total, err := strconv.ParseFloat(s, 64)
		if err != nil || total <= 0 {
			writeError(w, http.StatusBadRequest, "total must be a positive number")
			return
		}
		days, err := positiveInt(q.Get("days"), defaultProjectionDays)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		resp.Total = total
		resp.Days = days
		resp.ProjectedTotal = powerlifting.ProjectTotal(total, level, days)
	}

	writeJSON(w, http.StatusOK, resp)
}

func knownLift(l powerlifting.Lift) bool {
	for _, k := range powerlifting.Lifts {
		if k == l {
			return true
		}
	}
	return false
}
