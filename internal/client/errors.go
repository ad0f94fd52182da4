package client

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sort"
	"strings"
)

// APIError is the only error shape the dashboard shows to a user: a status
// and a single message string. Status 0 means the API was never reached.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Retryable reports whether re-issuing the same request may succeed.
func (e *APIError) Retryable() bool {
	return e.Status == 0 || e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Message: errorMessage(status, body)}
}

func networkError(err error) *APIError {
	msg := "network error: could not reach API"
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		msg = "request canceled"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		msg = "network error: request timed out"
	}
	return &APIError{Status: 0, Message: msg, Err: err}
}

var messageKeys = []string{"message", "error", "errors", "detail"}

// errorMessage pulls a human readable message out of an error body. The API
// is not consistent here: some endpoints send a string, some a list of
// validation messages, some a field -> messages map.
func errorMessage(status int, body []byte) string {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err == nil {
		for _, key := range messageKeys {
			if raw, ok := root[key]; ok {
				if msg := flatten(raw); msg != "" {
					return msg
				}
			}
		}
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return text
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}

func flatten(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if msg := flatten(item); msg != "" {
				parts = append(parts, msg)
			}
		}
		return strings.Join(parts, "; ")
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		// {"msg": "..."} style items inside arrays
		for _, key := range []string{"message", "msg"} {
			if v, ok := obj[key]; ok {
				return flatten(v)
			}
		}
		fields := make([]string, 0, len(obj))
		for k := range obj {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, k := range fields {
			if msg := flatten(obj[k]); msg != "" {
				parts = append(parts, k+": "+msg)
			}
		}
		return strings.Join(parts, "; ")
	}

	return ""
}
