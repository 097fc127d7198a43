package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const errorTypeHTTP = "http_request"

// errorReporter writes the mapped error response and keeps a copy of
// unexpected failures in the error log.
type errorReporter struct {
	recorder errorlog.Recorder
}

func (e errorReporter) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !response.HandleError(w, err) {
		return
	}

	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		route = rctx.RoutePattern()
	}
	slog.Error("request failed", "method", r.Method, "route", route, "error", err)

	if e.recorder == nil {
		return
	}
	var userID *string
	if id := middleware.UserID(r); id != "" {
		userID = &id
	}
	e.recorder.Record(r.Context(), errorTypeHTTP, err, userID)
}

// decodeJSON reads the request body into dst and answers 400 on failure.
// With allowEmpty an empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || allowEmpty && errors.Is(err, io.EOF) {
		return true
	}
	slog.Warn("decode request body", "path", r.URL.Path, "error", err)
	response.BadRequest(w, "Invalid request format", nil)
	return false
}

// pathID reads a UUID path parameter and answers 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	id := chi.URLParam(r, key)
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid "+key, map[string]string{key: key + " must be a UUID"})
		return "", false
	}
	return id, true
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// queryInt returns 0 for a missing or malformed value so the DTO's
// Validate applies its default.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
