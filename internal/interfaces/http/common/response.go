package common

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/queroir/api/internal/logging"
	"github.com/queroir/api/internal/validation"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// ErrEmptyBody is returned by DecodeJSON when the request carries no body at all.
var ErrEmptyBody = errors.New("corpo da requisição vazio")

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Err(err).Int("status", status).Msg("encode json response")
	}
}

// WriteError writes {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteValidationError writes a 400 with one detail per failed field.
func WriteValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "dados inválidos",
		Details: verr.Errors(),
	})
}

// DecodeJSON reads a single JSON object of at most MaxRequestBody bytes into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBody)
	defer body.Close()

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("corpo da requisição excede %d bytes", maxErr.Limit)
		}
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("JSON inválido: %w", err)
	}
	if decoder.More() {
		return errors.New("corpo da requisição deve conter um único objeto JSON")
	}
	return nil
}
