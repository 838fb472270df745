package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, repository.ErrDuplicate
	}
	user.ID = bson.NewObjectID()
	f.byEmail[user.Email] = user
	return user, nil
}

const testPassword = "correct-horse-battery"

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: map[string]*model.User{
		"admin@example.com": {
			ID:       bson.NewObjectID(),
			Email:    "admin@example.com",
			Password: string(hash),
			Name:     "Admin",
		},
	}}

	issuer, err := auth.NewIssuer([]byte("test-secret"), 0)
	require.NoError(t, err)

	h := NewAuthHandler(service.NewAuthService(users, issuer), false)

	r := gin.New()
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.Signup)
	r.POST("/logout", h.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginJSONSuccessSetsCookie(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(r, "/login", `{"email":"admin@example.com","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := authCookie(w.Result())
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body struct {
		Data struct {
			Redirect string `json:"redirect"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/admin", body.Data.Redirect)
}

func TestLoginJSONFailuresAreIndistinguishable(t *testing.T) {
	r := newAuthTestRouter(t)

	unknown := postJSON(r, "/login", `{"email":"nobody@example.com","password":"whatever-pass"}`)
	wrongPass := postJSON(r, "/login", `{"email":"admin@example.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	// Identical bodies: no account enumeration through error text.
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())

	assert.Nil(t, authCookie(unknown.Result()))
	assert.Nil(t, authCookie(wrongPass.Result()))
}

func TestLoginFormRedirects(t *testing.T) {
	r := newAuthTestRouter(t)

	ok := postForm(r, "/login?callbackUrl=%2Fadmin%2Fposts", url.Values{
		"email":    {"admin@example.com"},
		"password": {testPassword},
	})
	require.Equal(t, http.StatusFound, ok.Code)
	assert.Equal(t, "/admin/posts", ok.Header().Get("Location"))
	assert.NotNil(t, authCookie(ok.Result()))

	bad := postForm(r, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong-password"},
	})
	require.Equal(t, http.StatusFound, bad.Code)
	assert.Equal(t, "/login?error=invalid", bad.Header().Get("Location"))
}

func TestLoginRejectsOffsiteCallback(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postForm(r, "/login?callbackUrl=https%3A%2F%2Fevil.example", url.Values{
		"email":    {"admin@example.com"},
		"password": {testPassword},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestSignupFormRedirectsToLogin(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postForm(r, "/signup", url.Values{
		"name":            {"New User"},
		"email":           {"new@example.com"},
		"password":        {"a-strong-password"},
		"confirmPassword": {"a-strong-password"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?signup=success", w.Header().Get("Location"))
	// Registration never logs the user in.
	assert.Nil(t, authCookie(w.Result()))
}

func TestSignupJSONFieldErrors(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(r, "/signup", `{
		"name": "New User",
		"email": "admin@example.com",
		"password": "a-strong-password",
		"confirmPassword": "a-strong-password"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "email")
}

func TestSignupPasswordMismatch(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postJSON(r, "/signup", `{
		"name": "New User",
		"email": "mismatch@example.com",
		"password": "a-strong-password",
		"confirmPassword": "something-else"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "confirmPassword")
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "whatever"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := authCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLoginPageShowsConfigError(t *testing.T) {
	r := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/login?error=config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestSanitizeCallback(t *testing.T) {
	assert.Equal(t, "/admin", sanitizeCallback(""))
	assert.Equal(t, "/admin", sanitizeCallback("https://evil.example"))
	assert.Equal(t, "/admin", sanitizeCallback("//evil.example"))
	assert.Equal(t, "/admin/posts", sanitizeCallback("/admin/posts"))
}
