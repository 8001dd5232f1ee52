package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

var (
	enUS = language.MustParse("en-US")
	zhCN = language.MustParse("zh-CN")
)

func TestSupportedTagsDefaultFirst(t *testing.T) {
	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("len(SupportedTags()) = %d, want 2", len(tags))
	}
	if tags[0] != DefaultTag() {
		t.Fatalf("first tag = %v, want %v", tags[0], DefaultTag())
	}
	tags[0] = language.French
	if SupportedTags()[0] != enUS {
		t.Fatal("expected SupportedTags to return a copy")
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		value string
		want  language.Tag
		ok    bool
	}{
		{"en-US", enUS, true},
		{"en", enUS, true},
		{"zh-CN", zhCN, true},
		{"zh", zhCN, true},
		{"  zh-Hans  ", zhCN, true},
		{"", language.Und, false},
		{"fr-FR", language.Und, false},
		{"!!", language.Und, false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseTag(%q) = (%v, %v), want (%v, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchTags(t *testing.T) {
	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want default", got)
	}
	if got := MatchTags([]language.Tag{language.French, language.Chinese}); got != zhCN {
		t.Fatalf("MatchTags(fr, zh) = %v, want %v", got, zhCN)
	}
	if got := MatchTags([]language.Tag{language.Japanese}); got != DefaultTag() {
		t.Fatalf("MatchTags(ja) = %v, want default", got)
	}
}

func TestLocaleStrings(t *testing.T) {
	if got := LocaleString(zhCN); got != "zh-CN" {
		t.Fatalf("LocaleString(zh-CN) = %q, want %q", got, "zh-CN")
	}
	if got := DefaultLocale(); got != "en-US" {
		t.Fatalf("DefaultLocale() = %q, want %q", got, "en-US")
	}
	if got := NormalizeLocale("zh"); got != "zh-CN" {
		t.Fatalf("NormalizeLocale(zh) = %q, want %q", got, "zh-CN")
	}
	if got := NormalizeLocale("de"); got != "en-US" {
		t.Fatalf("NormalizeLocale(de) = %q, want %q", got, "en-US")
	}
}
