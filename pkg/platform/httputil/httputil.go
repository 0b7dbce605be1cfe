// Package httputil centralizes JSON encoding, decoding, and error translation
// for HTTP handlers so transport concerns stay out of services.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "pathwise/pkg/domain-errors"
)

// maxBodyBytes bounds request bodies; profiles are small.
const maxBodyBytes = 8 << 10

// Validatable is implemented by request types that validate and parse
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a JSON error envelope. Internal errors omit
// the description so infrastructure details never reach clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	description := ""

	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		description = domainErr.Description
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && description != "" {
		body["error_description"] = description
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// DecodeAndPrepare decodes the request body into T, runs its validation, and
// writes the error response itself on failure. The second return value is
// false when the caller should stop handling the request.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	req := PT(new(T))

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request decode failed", "request_id", requestID, "error", err)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body is not valid JSON"))
		return nil, false
	}

	if err := req.Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request validation failed", "request_id", requestID, "error", err)
		}
		WriteError(w, err)
		return nil, false
	}

	return req, true
}
