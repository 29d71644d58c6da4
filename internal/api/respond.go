package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/viewalign/pkg/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err's code to an HTTP status and writes the envelope.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if code.Internal() {
		msg = "internal error"
	}
	writeErrorCode(w, statusFor(code), string(code), msg)
}

func writeErrorCode(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNoOrientation:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	switch code.Category() {
	case errors.CategoryInput, errors.CategoryCondition:
		return http.StatusBadRequest
	case errors.CategoryNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
