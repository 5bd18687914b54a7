package service

import (
	"net/url"
	"strings"
	"unicode"

	"kahramana-backend/internal/shared/i18n"
)

const whatsAppBase = "https://wa.me/"

// WhatsAppLink builds a wa.me deep link. Non-digits are stripped from the
// number; with no number the link opens WhatsApp's generic compose view.
func WhatsAppLink(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, number)
	return whatsAppBase + digits + "?text=" + encodeURIComponent(message)
}

// encodeURIComponent escapes like the browser function of the same name:
// spaces become %20 rather than +
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	// QueryEscape escapes these but encodeURIComponent leaves them alone
	for _, r := range []struct{ from, to string }{
		{"%21", "!"}, {"%27", "'"}, {"%28", "("}, {"%29", ")"}, {"%2A", "*"},
	} {
		escaped = strings.ReplaceAll(escaped, r.from, r.to)
	}
	return escaped
}

// InquiryMessage asks a branch for the price of a price-on-request dish
func InquiryMessage(dishName, branchName string, lang i18n.Language) string {
	lines := []string{
		lang.T(i18n.KeyInquiryGreet),
		lang.T(i18n.KeyInquiryPrompt) + ": " + dishName,
	}
	if branchName != "" {
		lines = append(lines, lang.T(i18n.KeyInquiryBranch)+": "+branchName)
	}
	return strings.Join(lines, "\n")
}
