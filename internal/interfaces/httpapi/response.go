package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/woso-api/internal/platform/resilience"
	"github.com/riskibarqy/woso-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "woso-api"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// writeJSON encodes into a pooled buffer first so an encoding failure still yields a clean 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":500,"message":"encode response","status":"INTERNAL"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeError maps err onto the envelope. Internal failures never expose their message;
// schema and resolution errors list the missing columns or candidate names as items.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(err)
	if mapped.HTTPStatus == http.StatusInternalServerError {
		writeInternalError(ctx, w)
		return
	}

	message := err.Error()
	items := detailItems(err)
	if len(items) == 0 {
		items = []googleErrorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: message}}
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, message, items))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	const msg = "internal server error"
	mapped := mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, msg, []googleErrorItem{
		{Domain: errorDomain, Reason: mapped.Reason, Message: msg},
	}))
}

func errorEnvelope(mapped mappedError, message string, items []googleErrorItem) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors:  items,
		},
	}
}

func detailItems(err error) []googleErrorItem {
	var items []googleErrorItem

	var schemaErr *usecase.SchemaMismatchError
	if errors.As(err, &schemaErr) {
		for _, column := range schemaErr.Missing {
			items = append(items, googleErrorItem{Domain: errorDomain, Reason: "missingColumn", Message: column})
		}
		return items
	}

	var resolutionErr *usecase.ResolutionError
	if errors.As(err, &resolutionErr) {
		for _, candidate := range resolutionErr.Candidates {
			items = append(items, googleErrorItem{Domain: errorDomain, Reason: "candidate", Message: candidate})
		}
	}
	return items
}

func isAmbiguous(err error) bool {
	var resolutionErr *usecase.ResolutionError
	return errors.As(err, &resolutionErr) && resolutionErr.Kind == usecase.ResolutionAmbiguous
}

func isOneOf(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// errorRules are checked in order; the first match wins. Import errors come before
// ErrInvalidInput because they wrap it.
var errorRules = []struct {
	match  func(error) bool
	mapped mappedError
}{
	{isAmbiguous, mappedError{http.StatusConflict, "ambiguous", "FAILED_PRECONDITION"}},
	{usecase.IsSchemaMismatch, mappedError{http.StatusUnprocessableEntity, "schemaMismatch", "INVALID_ARGUMENT"}},
	{usecase.IsScopeNotFound, mappedError{http.StatusUnprocessableEntity, "scopeNotFound", "FAILED_PRECONDITION"}},
	{isOneOf(usecase.ErrInvalidInput), mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{isOneOf(usecase.ErrNotFound), mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{isOneOf(usecase.ErrConflict), mappedError{http.StatusConflict, "conflict", "ALREADY_EXISTS"}},
	{isOneOf(usecase.ErrUnauthorized), mappedError{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
	{isOneOf(errRateLimited), mappedError{http.StatusTooManyRequests, "rateLimitExceeded", "RESOURCE_EXHAUSTED"}},
	{isOneOf(usecase.ErrDependencyUnavailable, resilience.ErrCircuitOpen), mappedError{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
}

func mapError(err error) mappedError {
	for _, rule := range errorRules {
		if rule.match(err) {
			return rule.mapped
		}
	}
	return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
}
