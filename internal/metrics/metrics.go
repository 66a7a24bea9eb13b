package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"

	SaveCreated = "created"
	SaveUpdated = "updated"

	// LabelUnknown replaces request values outside the known set so label
	// cardinality stays bounded.
	LabelUnknown = "unknown"
)

var knownMethods = map[bodycomp.Method]bool{
	bodycomp.Skinfold3Site: true,
	bodycomp.Skinfold7Site: true,
	bodycomp.Skinfold9Site: true,
	bodycomp.BIA:           true,
	bodycomp.ManualInput:   true,
}

var (
	once sync.Once

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "body_test",
			Name:      "calculations_total",
			Help:      "Count of body-test pipeline runs by measurement method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	saved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "body_test",
			Name:      "saved_total",
			Help:      "Count of stored body tests, split into new days and same-day replacements.",
		},
		[]string{"kind"},
	)

	bodyFat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "body_test",
			Name:      "body_fat_percentage",
			Help:      "Distribution of computed body-fat percentages.",
			Buckets:   []float64{6, 10, 13, 17, 20, 25, 31, 40, 50, 60},
		},
		[]string{"gender"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(calculations, saved, bodyFat)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func MethodLabel(method string) string {
	if knownMethods[bodycomp.Method(method)] {
		return method
	}
	return LabelUnknown
}

func GenderLabel(gender string) string {
	if bodycomp.Gender(gender).Valid() {
		return gender
	}
	return LabelUnknown
}

func IncCalculation(method, outcome string) {
	calculations.WithLabelValues(MethodLabel(method), outcome).Inc()
}

func IncSaved(kind string) {
	saved.WithLabelValues(kind).Inc()
}

func ObserveBodyFat(gender string, pct float64) {
	bodyFat.WithLabelValues(GenderLabel(gender)).Observe(pct)
}
