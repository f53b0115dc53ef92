package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized: the backend rejected the credential (missing, invalid
	// or expired).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation: the backend rejected the request itself (4xx other than 401).
	ErrValidation = errors.New("request rejected")
	// ErrTransport: timeout, unreachable server, 5xx or an undecodable response.
	ErrTransport = errors.New("transport failure")
)

// Error is the classified failure returned by every Client call.
type Error struct {
	Kind   error
	Status int // 0 when no response was received
	Method string
	Path   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", e.Method, e.Path, e.Kind)
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	} else if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Classify maps a non-2xx HTTP status to its failure kind.
func Classify(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status >= 400 && status < 500:
		return ErrValidation
	default:
		return ErrTransport
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// Detail returns the backend's human-readable message carried by err, or
// err.Error() when there is none.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Detail != "" {
		return e.Detail
	}
	return err.Error()
}

const maxDetailLen = 300

// parseDetail extracts the message from an error body. The backend answers
// {"detail": "..."} or, for schema violations, {"detail": [{"msg": ...}]}.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}
		var items []struct {
			Loc []any  `json:"loc"`
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if len(it.Loc) > 0 {
					msgs = append(msgs, fmt.Sprintf("%v: %s", it.Loc[len(it.Loc)-1], it.Msg))
				} else {
					msgs = append(msgs, it.Msg)
				}
			}
			return strings.Join(msgs, "; ")
		}
	}

	s := strings.TrimSpace(string(body))
	if len(s) > maxDetailLen {
		s = s[:maxDetailLen] + "..."
	}
	return s
}
