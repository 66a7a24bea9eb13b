package handler

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/yusufkecer/body-test-backend/internal/bodytest"
	"github.com/yusufkecer/body-test-backend/internal/domain"
	"github.com/yusufkecer/body-test-backend/internal/metrics"
	"github.com/yusufkecer/body-test-backend/internal/middleware"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// minStoredAge is the storage schema's lower bound, stricter than the
	// engine's.
	minStoredAge = 13
)

type BodyTestStore interface {
	Save(ctx context.Context, bt *domain.BodyTest) (bool, error)
	GetByDate(ctx context.Context, userID, date string) (*domain.BodyTest, error)
	List(ctx context.Context, userID string, f domain.BodyTestFilter) ([]domain.BodyTest, int, error)
}

type BodyTestHandler struct {
	store BodyTestStore
	opts  bodytest.Options
	now   func() time.Time
}

func NewBodyTestHandler(store BodyTestStore, opts bodytest.Options) *BodyTestHandler {
	return &BodyTestHandler{store: store, opts: opts, now: time.Now}
}

func (h *BodyTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.BodyTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Weight == 0 || req.Height == 0 || req.Age == 0 || req.Gender == "" || req.MeasurementMethod == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: weight, height, age, gender, measurementMethod")
		return
	}
	if req.Age < minStoredAge {
		writeError(w, http.StatusBadRequest, "age must be at least "+strconv.Itoa(minStoredAge))
		return
	}

	date, err := measurementDate(req.MeasurementDate, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid measurementDate")
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

	bt := domain.NewBodyTest(userID, date, req, res)
	updated, err := h.store.Save(r.Context(), &bt)
	if err != nil {
		log.Printf("[body-test] %s: save failed for user %s: %v", middleware.RequestIDFromContext(r.Context()), userID, err)
		writeError(w, http.StatusInternalServerError, "failed to save body test")
		return
	}

	resp := domain.BodyTestSaved{
		IsUpdate:          updated,
		Measurement:       bt,
		StrengthStandards: res.Standards,
		Analysis:          domain.Analysis{BodyFatCategory: res.FatCategory, Lifts: res.Standings},
	}
	status := http.StatusCreated
	if updated {
		metrics.IncSaved(metrics.SaveUpdated)
		resp.Message = "measurement for " + date + " has been updated"
		status = http.StatusOK
	} else {
		metrics.IncSaved(metrics.SaveCreated)
		resp.Message = "new measurement created"
	}
	writeJSON(w, status, resp)
}

func (h *BodyTestHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	limit, err := positiveInt(q.Get("limit"), defaultPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	page, err := positiveInt(q.Get("page"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}

	filter := domain.BodyTestFilter{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	for _, d := range []string{filter.StartDate, filter.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			writeError(w, http.StatusBadRequest, "dates must use YYYY-MM-DD")
			return
		}
	}

	tests, total, err := h.store.List(r.Context(), userID, filter)
	if err != nil {
		log.Printf("[body-test] %s: list failed for user %s: %v", middleware.RequestIDFromContext(r.Context()), userID, err)
		writeError(w, http.StatusInternalServerError, "failed to list body tests")
		return
	}
	if tests == nil {
		tests = []domain.BodyTest{}
	}

	writeJSON(w, http.StatusOK, domain.BodyTestPage{
		Measurements: tests,
		Pagination: domain.Pagination{
			Current:      page,
			Total:        int(math.Ceil(float64(total) / float64(limit))),
			Count:        len(tests),
			TotalRecords: total,
		},
	})
}

func (h *BodyTestHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	bt, err := h.store.GetByDate(r.Context(), userID, h.now().Format(domain.DateLayout))
	if err != nil {
		log.Printf("[body-test] %s: today lookup failed for user %s: %v", middleware.RequestIDFromContext(r.Context()), userID, err)
		writeError(w, http.StatusInternalServerError, "failed to get today's body test")
		return
	}

	writeJSON(w, http.StatusOK, domain.TodayBodyTest{HasToday: bt != nil, TodayMeasurement: bt})
}

// measurementDate accepts a calendar day or an RFC 3339 timestamp and
// defaults to the day of now.
func measurementDate(s string, now time.Time) (string, error) {
	if s == "" {
		return now.Format(domain.DateLayout), nil
	}
	if d, err := time.Parse(domain.DateLayout, s); err == nil {
		return d.Format(domain.DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", err
	}
	return t.Format(domain.DateLayout), nil
}

func positiveInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
