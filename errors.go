package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned by ResolveAPIKey when the API key
// environment variable is unset or blank.
var ErrMissingAPIKey = errors.New(APIKeyEnv + " environment variable not set")

// ErrorKind classifies failures at the API boundary, so callers can pick a
// user-facing message without inspecting error text.
type ErrorKind int

const (
	// ErrorKindOther is any failure that doesn't fit a more specific kind.
	ErrorKindOther ErrorKind = iota

	// ErrorKindAuth means the API key is missing, invalid, or lacks permission.
	ErrorKindAuth

	// ErrorKindNotFound means the requested model does not exist or does not
	// support content generation.
	ErrorKindNotFound

	// ErrorKindRateLimited means a rate limit or quota was exceeded.
	ErrorKindRateLimited

	// ErrorKindNetwork means the service could not be reached.
	ErrorKindNetwork
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindAuth:
		return "auth"
	case ErrorKindNotFound:
		return "notFound"
	case ErrorKindRateLimited:
		return "rateLimited"
	case ErrorKindNetwork:
		return "network"
	default:
		return "other"
	}
}

// Error is returned by every Client and Chat method that talks to the API.
//
// Error() returns the underlying message unchanged, so it can be shown to
// the user verbatim.
type Error struct {
	// Kind of failure.
	Kind ErrorKind

	// Op is the operation that failed, such as "list models".
	Op string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Errors that were not produced by this
// package are classified on the fly.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindOther
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return classify(err)
}

// wrapError attaches a kind to err for the given operation.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	return &Error{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) ErrorKind {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyAPIError(*apiErrPtr)
	}

	if errors.Is(err, ErrMissingAPIKey) {
		return ErrorKindAuth
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrorKindNetwork
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrorKindNetwork
	}

	return classifyText(err.Error())
}

func classifyAPIError(e genai.APIError) ErrorKind {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorKindAuth
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusTooManyRequests:
		return ErrorKindRateLimited
	}

	switch e.Status {
	case "RESOURCE_EXHAUSTED":
		return ErrorKindRateLimited
	case "NOT_FOUND":
		return ErrorKindNotFound
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return ErrorKindAuth
	}

	// The API answers an invalid key with a 400.
	if strings.Contains(strings.ToLower(e.Message), "api key not valid") {
		return ErrorKindAuth
	}

	return ErrorKindOther
}

// classifyText falls back to the markers the service is known to put in its
// error messages.
func classifyText(msg string) ErrorKind {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "429") && strings.Contains(lower, "quota"):
		return ErrorKindRateLimited
	case strings.Contains(lower, "404") && strings.Contains(lower, "not found"):
		return ErrorKindNotFound
	default:
		return ErrorKindOther
	}
}
