package lexiapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// APIError is a non-2xx response. It unwraps to the domain sentinel that
// matches the status, so callers can use errors.Is(err, domain.ErrNotFound).
type APIError struct {
	Status  int
	Message string
	Fields  []domain.FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict:
		return domain.ErrConflict
	}
	return nil
}

// errorBody accepts both {"error": ...} and {"message": ...} bodies; the
// message may be a string or a list of strings.
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message json.RawMessage `json:"message"`
	Fields  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func parseAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status}

	var b errorBody
	if err := json.Unmarshal(body, &b); err != nil {
		e.Message = strings.TrimSpace(string(body))
		return e
	}
	e.Message = firstText(b.Message)
	if e.Message == "" {
		e.Message = firstText(b.Error)
	}
	for _, f := range b.Fields {
		e.Fields = append(e.Fields, domain.FieldError{Field: f.Field, Message: f.Message})
	}
	return e
}

func firstText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return ""
}
