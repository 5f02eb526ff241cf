package transport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
)

// RespondJSON writes v as a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps err to a status via the fault taxonomy and writes a JSON
// error body. Non-domain errors become opaque 500s; the detail stays in the
// log, not on the wire.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := faults.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		msg = "internal server error"
	}
	RespondJSON(w, status, map[string]string{"error": msg})
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", faults.ErrValidation, err)
	}
	return nil
}
