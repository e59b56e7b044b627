package tui

import (
	"errors"
	"strings"

	"github.com/heartmarshall/lexitable/internal/client/lexiapi"
	"github.com/heartmarshall/lexitable/internal/client/oauth"
	"github.com/heartmarshall/lexitable/internal/domain"
)

// errorText turns an error into a line suitable for the status bar.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Errors) > 0 {
		parts := make([]string, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			parts = append(parts, fe.Field+": "+fe.Message)
		}
		return strings.Join(parts, "; ")
	}

	var apiErr *lexiapi.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			return errorText(&domain.ValidationError{Errors: apiErr.Fields})
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}

	switch {
	case errors.Is(err, oauth.ErrTimeout):
		return "Browser sign-in timed out. Try again."
	case errors.Is(err, domain.ErrUnauthorized):
		return "Session expired. Sign in again."
	}

	var oerr *oauth.Error
	if errors.As(err, &oerr) && oerr.Message != "" {
		return "Google sign-in failed: " + oerr.Message
	}
	return err.Error()
}
