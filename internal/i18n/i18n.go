// Package i18n resolves the site language and provides UI labels.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	Dutch   = "nl"
	English = "en"
	French  = "fr"

	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "gh_lang"
)

// Supported lists the site languages in display order.
var Supported = []string{Dutch, English, French}

var (
	supportedTags = []language.Tag{language.Dutch, language.English, language.French}
	matcher       = language.NewMatcher(supportedTags)
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code   string
	Label  string
	Href   string
	Active bool
}

var labels = map[string]string{
	Dutch:   "Nederlands",
	English: "English",
	French:  "Français",
}

// IsSupported reports whether code is one of the site languages.
func IsSupported(code string) bool {
	switch code {
	case Dutch, English, French:
		return true
	}
	return false
}

// Normalize lowercases and trims code, returning "" when unsupported.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsSupported(code) {
		return code
	}
	return ""
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language header.
func MatchAcceptLanguage(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return Supported[idx], true
}

// Resolve picks the language from the query param, then the cookie, then Accept-Language,
// then def. The bool reports whether the choice came from the query param and should be
// persisted.
func Resolve(param, cookie, acceptLanguage, def string) (string, bool) {
	if l := Normalize(param); l != "" {
		return l, true
	}
	if l := Normalize(cookie); l != "" {
		return l, false
	}
	if l, ok := MatchAcceptLanguage(acceptLanguage); ok {
		return l, false
	}
	if l := Normalize(def); l != "" {
		return l, false
	}
	return Dutch, false
}

// Options builds the language switcher; the default language links to "/".
func Options(active, def string) []LanguageOption {
	out := make([]LanguageOption, 0, len(Supported))
	for _, code := range Supported {
		href := "/" + code
		if code == def {
			href = "/"
		}
		out = append(out, LanguageOption{Code: code, Label: labels[code], Href: href, Active: code == active})
	}
	return out
}
