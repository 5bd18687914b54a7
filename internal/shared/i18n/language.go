package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two languages the site is published in
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Default matches the site: Arabic first
const Default = Arabic

var matcher = language.NewMatcher([]language.Tag{
	language.Arabic, // first tag is the matcher fallback
	language.English,
})

// Parse accepts "ar", "en" and any BCP 47 tag whose base is one of them
// ("ar-BH", "en_US").
func Parse(s string) (Language, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ar":
		return Arabic, true
	case "en":
		return English, true
	}
	return "", false
}

// ParseOr returns fallback when s is not a supported language
func ParseOr(s string, fallback Language) Language {
	if lang, ok := Parse(s); ok {
		return lang
	}
	return fallback
}

// Negotiate picks a language from an Accept-Language header value
func Negotiate(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	if idx == 1 {
		return English
	}
	return Arabic
}

func (l Language) String() string { return string(l) }

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == Arabic || l == English
}
