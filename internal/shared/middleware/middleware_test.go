package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kahramana-backend/internal/shared/i18n"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := DefaultCartMiddlewareConfig()
	cfg.CookieSecure = false

	r := gin.New()
	r.Use(RequestID(), Recovery(), ClientIP(), Language(i18n.Arabic), CartSession(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"session": GetSessionID(c),
			"lang":    GetLanguage(c),
			"ip":      GetClientIP(c),
		})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestCartSessionIssuesCookie(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	_, err := uuid.Parse(cookies[0].Value)
	assert.NoError(t, err)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestCartSessionReusesValidCookie(t *testing.T) {
	r := newTestRouter()
	sid := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sid})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
	assert.Contains(t, w.Body.String(), sid)
}

func TestCartSessionReplacesForgedCookie(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "../../etc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Len(t, w.Result().Cookies(), 1)
	assert.NotContains(t, w.Body.String(), "etc")
}

func TestLanguageResolutionOrder(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name   string
		url    string
		cookie string
		accept string
		want   string
	}{
		{"default", "/whoami", "", "", `"lang":"ar"`},
		{"accept header", "/whoami", "", "en-GB,en;q=0.9", `"lang":"en"`},
		{"cookie beats header", "/whoami", "ar", "en", `"lang":"ar"`},
		{"query beats cookie", "/whoami?lang=en", "ar", "", `"lang":"en"`},
		{"unknown query ignored", "/whoami?lang=fr", "", "en", `"lang":"en"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"SYS_001","message":"Internal server error"}}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(key string) *gin.Engine {
		r := gin.New()
		r.Use(AdminMiddleware(key))
		r.POST("/reload", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	call := func(r *gin.Engine, header string) int {
		req := httptest.NewRequest(http.MethodPost, "/reload", nil)
		if header != "" {
			req.Header.Set(AdminKeyHeader, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	open := newRouter("")
	assert.Equal(t, http.StatusNoContent, call(open, ""))

	guarded := newRouter("s3cret")
	assert.Equal(t, http.StatusForbidden, call(guarded, ""))
	assert.Equal(t, http.StatusForbidden, call(guarded, "wrong"))
	assert.Equal(t, http.StatusNoContent, call(guarded, "s3cret"))
}
