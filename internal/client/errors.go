package client

import "errors"

// ErrorKind classifies an API failure. Kinds come from the structured
// "code" field in error payloads, never from matching message text.
type ErrorKind int

const (
	// KindServer is any non-2xx response that carried no recognizable code.
	KindServer ErrorKind = iota
	// KindTransport means no response was received at all.
	KindTransport
	KindAuth
	KindNotFound
	KindConflict
	KindValidation
)

// APIError is the single error type returned by Client methods. Message is
// the backend-supplied text when present, else a per-operation fallback.
type APIError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

func kindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

func IsTransport(err error) bool { k, ok := kindOf(err); return ok && k == KindTransport }
func IsAuth(err error) bool      { k, ok := kindOf(err); return ok && k == KindAuth }
func IsNotFound(err error) bool  { k, ok := kindOf(err); return ok && k == KindNotFound }
func IsConflict(err error) bool  { k, ok := kindOf(err); return ok && k == KindConflict }

// kindFromCode maps the wire code to a client-side kind.
func kindFromCode(code string, status int) ErrorKind {
	switch code {
	case "AUTH":
		return KindAuth
	case "NOT_FOUND":
		return KindNotFound
	case "CONFLICT":
		return KindConflict
	case "VALIDATION":
		return KindValidation
	}
	// older backends may omit the code; fall back to the status line
	switch status {
	case 401, 403:
		return KindAuth
	case 404:
		return KindNotFound
	case 409:
		return KindConflict
	}
	return KindServer
}
