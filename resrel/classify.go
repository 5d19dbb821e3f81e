package resrel

import (
	"errors"
	"log/slog"
	"net/http"
)

// ErrorType is one of the six fixed categories every failure maps to.
type ErrorType string

const (
	ErrTypeValidation ErrorType = "validation"
	ErrTypeAuth       ErrorType = "auth"
	ErrTypeForbidden  ErrorType = "forbidden"
	ErrTypeServer     ErrorType = "server"
	ErrTypeNetwork    ErrorType = "network"
	ErrTypeAPI        ErrorType = "api"
)

// User-facing messages. The server category is intentionally generic so
// backend internals never leak to the UI.
const (
	msgAuth       = "Session expirée, veuillez vous reconnecter."
	msgForbidden  = "Vous n'avez pas les droits nécessaires pour effectuer cette action."
	msgServer     = "Une erreur est survenue. Veuillez réessayer plus tard."
	msgNetwork    = "Erreur de connexion"
	msgValidation = "Les données fournies sont invalides."
)

// ErrorInfo is the normalized, display-ready projection of a failure.
type ErrorInfo struct {
	Type    ErrorType           `json:"type"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Classify maps an error into exactly one category. It is a pure function:
// no side effects, and classifying the same error twice yields the same
// result. Rules are checked in order, first match wins:
//
//  1. 422 with field errors -> validation (field map carried verbatim)
//  2. 401 -> auth
//  3. 403 -> forbidden
//  4. >=500 -> server (generic message)
//  5. any other *APIError -> api (message passed through)
//  6. anything that never produced a structured HTTP error -> network
func Classify(err error) ErrorInfo {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return ErrorInfo{Type: ErrTypeNetwork, Message: msgNetwork}
	}

	if apiErr.Status == http.StatusUnprocessableEntity {
		if fields := apiErr.FieldErrors(); fields != nil {
			msg := apiErr.Message
			if msg == "" {
				msg = msgValidation
			}
			return ErrorInfo{Type: ErrTypeValidation, Message: msg, Errors: fields}
		}
	}

	switch {
	case apiErr.Status == http.StatusUnauthorized:
		return ErrorInfo{Type: ErrTypeAuth, Message: msgAuth}
	case apiErr.Status == http.StatusForbidden:
		return ErrorInfo{Type: ErrTypeForbidden, Message: msgForbidden}
	case apiErr.Status >= http.StatusInternalServerError:
		return ErrorInfo{Type: ErrTypeServer, Message: msgServer}
	default:
		return ErrorInfo{Type: ErrTypeAPI, Message: apiErr.Message}
	}
}

// Reporter acts on classified errors: it logs a diagnostic and, for auth
// failures, invokes the configured hook (typically a redirect to the login
// entry point). Classification itself stays in Classify; Reporter is the
// only impure layer.
type Reporter struct {
	Logger *slog.Logger

	// OnAuthError runs whenever a reported error classifies as auth.
	// Navigation policy belongs to the caller, not to this package.
	OnAuthError func(ErrorInfo)
}

func (r *Reporter) logger() *slog.Logger {
	if r != nil && r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Report classifies err, logs it, and fires the auth hook when applicable.
// It returns the classification so call sites can use it directly.
func (r *Reporter) Report(err error) ErrorInfo {
	info := Classify(err)

	attrs := []any{"type", string(info.Type), "message", info.Message, "error", err}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, "status", apiErr.Status)
	}
	r.logger().Error("request failed", attrs...)

	if info.Type == ErrTypeAuth && r != nil && r.OnAuthError != nil {
		r.OnAuthError(info)
	}
	return info
}
