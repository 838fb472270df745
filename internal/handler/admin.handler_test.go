package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjectRepo struct{ n int64 }

func (s *stubProjectRepo) List(ctx context.Context) ([]model.Project, error) { return nil, nil }
func (s *stubProjectRepo) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return nil, repository.ErrNotFound
}
func (s *stubProjectRepo) Create(ctx context.Context, project *model.Project) error { return nil }
func (s *stubProjectRepo) Update(ctx context.Context, slug string, project *model.Project) error {
	return nil
}
func (s *stubProjectRepo) Delete(ctx context.Context, slug string) error { return nil }
func (s *stubProjectRepo) Count(ctx context.Context) (int64, error)      { return s.n, nil }

type stubAchievementRepo struct{ n int64 }

func (s *stubAchievementRepo) List(ctx context.Context) ([]model.Achievement, error) {
	return nil, nil
}
func (s *stubAchievementRepo) GetByID(ctx context.Context, id string) (*model.Achievement, error) {
	return nil, repository.ErrNotFound
}
func (s *stubAchievementRepo) Create(ctx context.Context, a *model.Achievement) error { return nil }
func (s *stubAchievementRepo) Update(ctx context.Context, id string, a *model.Achievement) error {
	return nil
}
func (s *stubAchievementRepo) Delete(ctx context.Context, id string) error { return nil }
func (s *stubAchievementRepo) Count(ctx context.Context) (int64, error)    { return s.n, nil }

type stubTechRepo struct{ n int64 }

func (s *stubTechRepo) List(ctx context.Context) ([]model.Tech, error) { return nil, nil }
func (s *stubTechRepo) GetByID(ctx context.Context, id string) (*model.Tech, error) {
	return nil, repository.ErrNotFound
}
func (s *stubTechRepo) Create(ctx context.Context, tech *model.Tech) error             { return nil }
func (s *stubTechRepo) Update(ctx context.Context, id string, tech *model.Tech) error  { return nil }
func (s *stubTechRepo) Delete(ctx context.Context, id string) error                    { return nil }
func (s *stubTechRepo) Count(ctx context.Context) (int64, error)                       { return s.n, nil }

// newDashboardRouter wires the dashboard WITHOUT the gate middleware,
// exercising the handler's own cookie fallback.
func newDashboardRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewContentService(
		&stubPostRepo{posts: []model.BlogPost{{Slug: "one"}, {Slug: "two"}}},
		&stubProjectRepo{n: 3},
		&stubAchievementRepo{n: 1},
		&stubTechRepo{n: 5},
		nil, nil,
	)
	h := NewAdminHandler(svc, auth.NewVerifier(secret))

	r := gin.New()
	r.GET("/admin", h.Dashboard)
	return r
}

func TestDashboardWithoutIdentityRedirects(t *testing.T) {
	r := newDashboardRouter([]byte("dash-secret"))

	for _, cookie := range []string{"", "not-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// Redirect, never a crash or a 5xx.
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	}
}

func TestDashboardFallsBackToCookieVerification(t *testing.T) {
	secret := []byte("dash-secret")
	r := newDashboardRouter(secret)

	issuer, err := auth.NewIssuer(secret, 24*time.Hour)
	require.NoError(t, err)
	tok, err := issuer.Issue("u1", "Jamie", "jamie@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.Contains(t, w.Body.String(), `"posts":2`)
	assert.Contains(t, w.Body.String(), `"projects":3`)
	assert.Contains(t, w.Body.String(), `"tech":5`)
}
