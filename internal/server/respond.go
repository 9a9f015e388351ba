package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

// ErrorBody is the JSON payload of every failed request.
type ErrorBody struct {
	Code  roundup.Kind `json:"code"`
	Error string       `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusFor(kind roundup.Kind) int {
	switch kind {
	case roundup.KindMalformedRequest, roundup.KindPublisherNotFound:
		return http.StatusBadRequest
	case roundup.KindNetwork, roundup.KindStructureMissing:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err onto the error taxonomy. Errors from outside it are
// reported as internal and their details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var re *roundup.Error
	if !errors.As(err, &re) {
		re = &roundup.Error{Kind: roundup.KindInternal, Op: "unclassified", Err: err}
	}

	status := statusFor(re.Kind)
	log := loggerFrom(r.Context())
	if status >= 500 {
		log.ErrorContext(r.Context(), "request_failed", slog.String("code", string(re.Kind)), slog.Any("err", err))
	} else {
		log.WarnContext(r.Context(), "request_failed", slog.String("code", string(re.Kind)), slog.Any("err", err))
	}

	msg := re.Error()
	if re.Kind == roundup.KindInternal {
		msg = "an unexpected error occurred"
	}
	writeJSON(w, status, ErrorBody{Code: re.Kind, Error: msg})
}
