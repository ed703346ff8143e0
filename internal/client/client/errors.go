package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/portfolioadmin/internal/common"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string

	// generic is set when the body carried no usable message.
	generic bool
}

func (e *APIError) Error() string { return e.Message }

// Is lets callers match auth and not-found responses with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// IsNotFound reports whether err is a 404 or carries a "not found" message.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, common.ErrNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// newAPIError builds the error for a failed response. The message comes from
// err_msg, then detail, then a generic status line.
func newAPIError(status int, body []byte) *APIError {
	if msg := errorMessage(body); msg != "" {
		return &APIError{StatusCode: status, Message: msg}
	}
	return &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("Request failed with status %d: %s", status, http.StatusText(status)),
		generic:    true,
	}
}

func errorMessage(body []byte) string {
	var payload struct {
		ErrMsg json.RawMessage `json:"err_msg"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if s := rawText(payload.ErrMsg); s != "" {
		return s
	}
	return rawText(payload.Detail)
}

// rawText renders a string field as is and a list of validation errors
// ({"msg": ...}) as their messages joined by "; ".
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}
