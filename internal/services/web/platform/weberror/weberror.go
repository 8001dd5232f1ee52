// Package weberror maps failures to user-safe, localized web responses.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/utility.tools/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/utility.tools/internal/services/web/platform/i18n"
)

// ShouldRenderAppError reports whether status should use the error page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. Errors without
// a domain code or localization key fall back to the status text so internal
// details never reach the response.
func PublicMessage(loc webi18n.Localizer, locale string, err error) string {
	if err == nil {
		return ""
	}
	if localized, ok := webi18n.LocalizeError(loc, locale, err); ok {
		return localized
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// Status returns the HTTP status for err after domain code conversion.
func Status(err error) int {
	return apperrors.HTTPStatus(apperrors.FromDomain(err))
}
