package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julianknutsen/oddsight/internal/analysis"
)

// HashHint is the recovery hint attached to invalid-hash responses.
const HashHint = "Please enter a valid SHA512 hash (128 lowercase hex characters)."

// maxBodyBytes bounds request bodies; a hash request is a few hundred bytes.
const maxBodyBytes = 64 << 10

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeEvalError maps an evaluation error to a response. Invalid input is
// the caller's fault; anything else is ours.
func writeEvalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analysis.ErrInvalidHash):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Hint: HashHint})
	case errors.Is(err, analysis.ErrUnknownTarget):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON reads the request body as JSON into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close() //nolint:errcheck // best-effort close
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
