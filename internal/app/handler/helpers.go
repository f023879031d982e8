// Package handler maps the HTTP API onto the resolution engine. Each
// handler decodes its input, calls one engine operation with the caller's
// identity and renders the result or the error.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/middleware"
	"github.com/atinyakov/url-cutter/internal/models"
)

// requestTimeout bounds every engine call made by a handler.
const requestTimeout = 3 * time.Second

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int    // HTTP status code for the error
	msg    string // Error message
}

// Error returns the error message for a malformed request.
func (mr *malformedRequest) Error() string {
	return mr.msg
}

// decodeJSONBody decodes a JSON request body into the given destination struct.
// It reads the content from the request body, checks for proper JSON formatting,
// and handles common errors related to JSON parsing.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			msg := "Content-Type header is not application/json"
			return &malformedRequest{status: http.StatusUnsupportedMediaType, msg: msg}
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case err.Error() == "http: request body too large":
			msg := "Request body must not be larger than 1MB"
			return &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		msg := "Request body must only contain a single JSON object"
		return &malformedRequest{status: http.StatusBadRequest, msg: msg}
	}

	return nil
}

func withTimeout(req *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(req.Context(), requestTimeout)
}

func writeJSON(res http.ResponseWriter, status int, v any, logger *zap.Logger) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error("cannot encode response", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if _, err := res.Write(body); err != nil {
		logger.Debug("cannot write response", zap.Error(err))
	}
}

func writeError(res http.ResponseWriter, status int, msg string, logger *zap.Logger) {
	writeJSON(res, status, models.ErrorResponse{Detail: msg}, logger)
}

// writeBodyError renders a decodeJSONBody failure.
func writeBodyError(res http.ResponseWriter, req *http.Request, err error, logger *zap.Logger) {
	var mr *malformedRequest
	if errors.As(err, &mr) {
		writeError(res, mr.status, mr.msg, logger)
		return
	}

	logger.Error("cannot read request body", zap.String("request_id", middleware.RequestID(req.Context())), zap.Error(err))
	writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), logger)
}

// writeServiceError maps engine errors onto HTTP statuses. Anything that is
// not an engine error is an infrastructure failure.
func writeServiceError(res http.ResponseWriter, req *http.Request, err error, logger *zap.Logger) {
	var status int
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAliasTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		status = http.StatusServiceUnavailable
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	default:
		logger.Error("request failed", zap.String("request_id", middleware.RequestID(req.Context())), zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), logger)
		return
	}

	if status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout {
		logger.Warn("request failed", zap.String("request_id", middleware.RequestID(req.Context())), zap.Error(err))
	}
	writeError(res, status, err.Error(), logger)
}
