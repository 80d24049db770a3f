package domain

import (
	"errors"
	"strings"
	"unicode"
)

var ErrNotAuthenticated = errors.New("user not authenticated")
var ErrNotAuthorized = errors.New("user not authorized")
var ErrInvalidLogin = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already registered")

// NotFoundError reports that an id-scoped lookup did not resolve.
// Resource is the lowercase entity name ("product", "category", "user").
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return "Error " + e.Resource + " not found"
}

// Kind returns the wire tag for this error, e.g. "notFoundProduct".
func (e *NotFoundError) Kind() string {
	r := []rune(e.Resource)
	if len(r) == 0 {
		return "notFound"
	}
	r[0] = unicode.ToUpper(r[0])
	return "notFound" + string(r)
}

// NotFound builds a NotFoundError for the given resource name.
func NotFound(resource string) error {
	return &NotFoundError{Resource: strings.ToLower(resource)}
}

// ValidationItem is a single violated rule: a stable tag plus a
// human-readable message.
type ValidationItem struct {
	Name    string
	Message string
}

// ValidationError aggregates every rule violated by one submission.
// Items keep the order the rules were checked in.
type ValidationError struct {
	Items []ValidationItem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Items))
	for i, it := range e.Items {
		msgs[i] = it.Message
	}
	return strings.Join(msgs, "; ")
}

// StatusError overrides the HTTP status the error handler would pick for
// the wrapped error. Used by the authorization gate, which must answer 403
// for a role mismatch while the bare ErrNotAuthorized maps to 401.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string { return e.Err.Error() }

func (e *StatusError) Unwrap() error { return e.Err }
