package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gateTestSecret = []byte("middleware-test-secret")

func newGatedRouter(t *testing.T, secret []byte) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AuthGate(auth.NewGate(auth.NewVerifier(secret)), false))

	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "login"})
	})
	r.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.Request.Header.Get(constant.HeaderUserID),
			"name":  c.Request.Header.Get(constant.HeaderUserName),
			"email": c.Request.Header.Get(constant.HeaderUserEmail),
		})
	})
	r.GET("/api/posts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page": "posts",
			"id":   c.Request.Header.Get(constant.HeaderUserID),
		})
	})
	return r
}

func validToken(t *testing.T) string {
	t.Helper()
	issuer, err := auth.NewIssuer(gateTestSecret, 24*time.Hour)
	require.NoError(t, err)
	tok, err := issuer.Issue("u1", "Jamie", "jamie@example.com")
	require.NoError(t, err)
	return tok
}

func clearedCookie(res *http.Response) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == auth.CookieName {
			return ck
		}
	}
	return nil
}

func TestAdminWithoutCookieRedirectsAndClearsCookie(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?callbackUrl=%2Fadmin", w.Header().Get("Location"))

	ck := clearedCookie(w.Result())
	require.NotNil(t, ck, "response must clear the identity cookie")
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}

func TestAdminWithValidCookiePropagatesIdentity(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: validToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.Contains(t, w.Body.String(), `"name":"Jamie"`)
	assert.Contains(t, w.Body.String(), `"email":"jamie@example.com"`)
}

func TestLoginWithValidCookieRedirectsToAdmin(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: validToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestLoginWithoutCookieRenders(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicRouteIgnoresIdentityState(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	for _, cookie := range []string{"", "garbage", validToken(t)} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSpoofedIdentityHeadersAreStripped(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	// Public route: no identity, headers must arrive empty.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(constant.HeaderUserID, "attacker")
	req.Header.Set(constant.HeaderUserName, "Attacker")
	req.Header.Set(constant.HeaderUserEmail, "attacker@example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":""`)

	// Protected route with a valid cookie: the verified identity wins
	// over whatever the client sent.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req2.Header.Set(constant.HeaderUserID, "attacker")
	req2.AddCookie(&http.Cookie{Name: auth.CookieName, Value: validToken(t)})
	r.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"id":"u1"`)
}

func TestMissingSecretLocksDownAdmin(t *testing.T) {
	r := newGatedRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: validToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login"))
}

func TestTamperedCookieIsClearedNotLooped(t *testing.T) {
	r := newGatedRouter(t, gateTestSecret)

	tok := validToken(t)
	tampered := tok[:len(tok)-2] + "xx"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tampered})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	ck := clearedCookie(w.Result())
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)

	// Following the redirect without the cookie renders login: no loop.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
}
