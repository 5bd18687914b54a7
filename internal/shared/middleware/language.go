package middleware

import (
	"github.com/gin-gonic/gin"

	"kahramana-backend/internal/shared/i18n"
)

const (
	LanguageCookieName = "lang"
	ContextKeyLanguage = "lang"
)

// Language resolves the display language in order: ?lang=, the lang
// cookie, Accept-Language, then fallback.
func Language(fallback i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := i18n.Parse(c.Query("lang"))
		if !ok {
			if v, err := c.Cookie(LanguageCookieName); err == nil {
				lang, ok = i18n.Parse(v)
			}
		}
		if !ok {
			lang = i18n.Negotiate(c.GetHeader("Accept-Language"), fallback)
		}

		c.Set(ContextKeyLanguage, lang)
		c.Next()
	}
}

// GetLanguage returns the language chosen by the Language middleware, or
// Arabic when the middleware did not run
func GetLanguage(c *gin.Context) i18n.Language {
	v, _ := c.Get(ContextKeyLanguage)
	if lang, ok := v.(i18n.Language); ok {
		return lang
	}
	return i18n.Default
}
