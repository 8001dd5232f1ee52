// Package i18n defines the locales the product ships and how free-form
// language input maps onto them.
package i18n

import (
	"strings"

	"github.com/louisbranch/utility.tools/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

// supportedTags lists shipped locales; the first entry is the default.
var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("zh-CN"),
}

var matcher = language.NewMatcher(supportedTags)

func init() {
	// Importing the catalog registers every message with x/text before
	// printers are created.
	_ = catalog.Default()
}

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// DefaultLocale returns the fallback locale string (en-US).
func DefaultLocale() string {
	return LocaleString(DefaultTag())
}

// ParseTag parses value and returns the supported tag it confidently maps to.
// "zh", "zh-Hans" and "zh-CN" all map to zh-CN; unknown languages fail.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}
	return supportedTags[index], true
}

// MatchTags returns the best supported tag for an Accept-Language style
// preference list, falling back to the default.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LocaleString renders tag in the region-qualified form used by catalogs.
func LocaleString(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	return base.String() + "-" + region.String()
}

// NormalizeLocale coerces value to a supported locale string.
func NormalizeLocale(value string) string {
	if tag, ok := ParseTag(value); ok {
		return LocaleString(tag)
	}
	return DefaultLocale()
}
