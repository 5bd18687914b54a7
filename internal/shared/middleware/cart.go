package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kahramana-backend/internal/shared/utils"
)

// ===================================
// CONSTANTS
// ===================================

const (
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	ContextKeySessionID = "session_id"
)

// CartMiddlewareConfig holds cookie settings for the cart session
type CartMiddlewareConfig struct {
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

// DefaultCartMiddlewareConfig returns secure defaults; set CookieSecure
// false for plain-http development.
func DefaultCartMiddlewareConfig() CartMiddlewareConfig {
	return CartMiddlewareConfig{
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// CartSession identifies the anonymous cart of a browser.
//
// Flow:
//  1. read session_id from the cookie
//  2. if missing or not a UUID, generate one and set the cookie
//  3. expose it to handlers via GetSessionID
func CartSession(config CartMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// ===================================
// HELPER FUNCTIONS
// ===================================

func getSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}
	// Only UUIDs are accepted so the id is safe to embed in storage keys
	if utils.ParseStringToUUID(sessionID) == uuid.Nil {
		return ""
	}
	return sessionID
}

func setSessionCookie(c *gin.Context, sessionID string, config CartMiddlewareConfig) {
	c.SetSameSite(config.CookieSameSite)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		SessionMaxAge,
		config.CookiePath,
		config.CookieDomain,
		config.CookieSecure,
		true, // httpOnly
	)
}

// GetSessionID retrieves the cart session id set by CartSession
func GetSessionID(c *gin.Context) string {
	sid, _ := c.Get(ContextKeySessionID)
	s, _ := sid.(string)
	return s
}
