package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
	"github.com/yusufkecer/body-test-backend/internal/powerlifting"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// isCalculationError reports whether err is a rejection by the engine, as
// opposed to an internal failure.
func isCalculationError(err error) bool {
	var (
		validation  *bodycomp.ValidationError
		missing     *bodycomp.MissingMeasurementError
		unsupported *bodycomp.UnsupportedMethodError
		outOfRange  *bodycomp.OutOfRangeResultError
		level       *powerlifting.UnsupportedLevelError
		reps        *powerlifting.RepRangeError
	)
	return errors.As(err, &validation) ||
		errors.As(err, &missing) ||
		errors.As(err, &unsupported) ||
		errors.As(err, &outOfRange) ||
		errors.As(err, &level) ||
		errors.As(err, &reps)
}

func writeCalculationError(w http.ResponseWriter, err error) {
	if isCalculationError(err) {
		writeError(w, http.StatusBadRequest, "calculation error: "+err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "calculation failed")
}
