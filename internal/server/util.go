package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/krislite/lightfinder/pkg/lightfinder"
)

// writeJSON encodes v before writing the header, so an unencodable value
// answers 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(map[string]string{"error": "encode response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, lightfinder.ErrInvalidCriteria):
		return http.StatusBadRequest
	case errors.Is(err, lightfinder.ErrUnknownFormat):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
