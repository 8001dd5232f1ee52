// Package i18n resolves the request language for web pages and exposes the
// localizer contract shared by handlers and templates.
package i18n

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	platformerrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	errori18n "github.com/louisbranch/utility.tools/internal/platform/errors/i18n"
	platformi18n "github.com/louisbranch/utility.tools/internal/platform/i18n"
	apperrors "github.com/louisbranch/utility.tools/internal/services/web/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "ut_lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption represents a supported language option in the page header.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the tag came from the lang query param.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if r.URL != nil {
		if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
			if tag, ok := platformi18n.ParseTag(langValue); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    platformi18n.LocaleString(tag),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a printer and locale string for the request,
// persisting an explicit ?lang= choice in the language cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		ensureLanguageCookie(w, r, tag)
	}
	return message.NewPrinter(tag), platformi18n.LocaleString(tag)
}

func ensureLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	expected := platformi18n.LocaleString(tag)
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil && strings.TrimSpace(cookie.Value) == expected {
			return
		}
	}
	SetLanguageCookie(w, tag)
}

// LocalizeError resolves a user-facing message for err. Domain errors render
// through the error catalog for locale, typed web errors through their key.
// It reports false when err carries no localizable identity.
func LocalizeError(loc Localizer, locale string, err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *platformerrors.Error
	if stderrors.As(err, &domainErr) {
		return errori18n.GetCatalog(locale).Format(string(domainErr.Code), domainErr.Metadata), true
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized, true
			}
		}
	}
	return "", false
}

// BuildLanguageOptions returns supported language options with active selection.
func BuildLanguageOptions(activeLang string, labelForTag func(tag language.Tag) string) []LanguageOption {
	supported := platformi18n.SupportedTags()
	activeTag := platformi18n.NormalizeLocale(activeLang)
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		locale := platformi18n.LocaleString(tag)
		label := locale
		if labelForTag != nil {
			if resolved := strings.TrimSpace(labelForTag(tag)); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    locale,
			Label:  label,
			Active: locale == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageKeyLabel maps a language tag to its navigation label key.
func LanguageKeyLabel(tag language.Tag) string {
	switch platformi18n.LocaleString(tag) {
	case "zh-CN":
		return "nav.lang_zh_cn"
	case "en-US":
		return "nav.lang_en_us"
	default:
		return tag.String()
	}
}
