package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/internal/service"
	"github.com/rajit909/portfolio-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Set(ctx context.Context, key string, value []byte) { m.data[key] = value }

func (m *memCache) SetWithTTL(ctx context.Context, key string, value []byte, ttlSeconds int) {
	m.data[key] = value
}

func (m *memCache) Delete(ctx context.Context, key string) { delete(m.data, key) }

func (m *memCache) DeletePrefix(ctx context.Context, prefix string) {
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
}

type stubPostRepo struct {
	posts []model.BlogPost
	lists int
}

func (s *stubPostRepo) List(ctx context.Context) ([]model.BlogPost, error) {
	s.lists++
	return s.posts, nil
}

func (s *stubPostRepo) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	for i := range s.posts {
		if s.posts[i].Slug == slug {
			return &s.posts[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubPostRepo) Create(ctx context.Context, post *model.BlogPost) error { return nil }

func (s *stubPostRepo) Update(ctx context.Context, slug string, post *model.BlogPost) error {
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, slug string) error { return nil }

func (s *stubPostRepo) Count(ctx context.Context) (int64, error) { return int64(len(s.posts)), nil }

func newContentTestRouter(posts *stubPostRepo, c *memCache) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewContentService(posts, nil, nil, nil, nil, c)
	h := NewContentHandler(svc, c)

	r := gin.New()
	r.GET("/api/posts", h.ListPosts)
	r.GET("/api/posts/:slug",
		validation.Validate[any, request.SlugParam, any](), h.GetPost)
	return r
}

func TestListPostsETagAndCache(t *testing.T) {
	posts := &stubPostRepo{posts: []model.BlogPost{{Slug: "hello-go", Title: "Hello Go"}}}
	cache := newMemCache()
	r := newContentTestRouter(posts, cache)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.Equal(t, http.StatusOK, first.Code)

	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Contains(t, first.Body.String(), "hello-go")

	// Second request hits the cache, not the repository.
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, etag, second.Header().Get("ETag"))
	assert.Equal(t, 1, posts.lists)

	// Conditional request with the ETag gets 304 and no body.
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("If-None-Match", etag)
	third := httptest.NewRecorder()
	r.ServeHTTP(third, req)
	require.Equal(t, http.StatusNotModified, third.Code)
	assert.Empty(t, third.Body.String())
}

func TestGetPostNotFound(t *testing.T) {
	r := newContentTestRouter(&stubPostRepo{}, newMemCache())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/missing-post", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
