package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	bySlug  map[string]*model.BlogPost
	created []*model.BlogPost
	updated map[string]*model.BlogPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		bySlug:  map[string]*model.BlogPost{},
		updated: map[string]*model.BlogPost{},
	}
}

func (f *fakePostRepo) List(ctx context.Context) ([]model.BlogPost, error) {
	out := []model.BlogPost{}
	for _, p := range f.bySlug {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePostRepo) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if p, ok := f.bySlug[slug]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePostRepo) Create(ctx context.Context, post *model.BlogPost) error {
	f.bySlug[post.Slug] = post
	f.created = append(f.created, post)
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, slug string, post *model.BlogPost) error {
	if _, ok := f.bySlug[slug]; !ok {
		return repository.ErrNotFound
	}
	f.updated[slug] = post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, slug string) error {
	if _, ok := f.bySlug[slug]; !ok {
		return repository.ErrNotFound
	}
	delete(f.bySlug, slug)
	return nil
}

func (f *fakePostRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bySlug)), nil
}

type fakeProjectRepo struct {
	bySlug map[string]*model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{bySlug: map[string]*model.Project{}}
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]model.Project, error) { return nil, nil }

func (f *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	if p, ok := f.bySlug[slug]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *model.Project) error {
	f.bySlug[project.Slug] = project
	return nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, slug string, project *model.Project) error {
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, slug string) error { return nil }

func (f *fakeProjectRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeProfileRepo struct {
	profile *model.Profile
}

func (f *fakeProfileRepo) Get(ctx context.Context) (*model.Profile, error) {
	if f.profile == nil {
		return nil, repository.ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *model.Profile) error {
	f.profile = profile
	return nil
}

func newTestContentService(posts *fakePostRepo, projects *fakeProjectRepo, profile *fakeProfileRepo) *ContentService {
	return NewContentService(posts, projects, nil, nil, profile, nil)
}

func validPostRequest(title string) request.PostRequest {
	return request.PostRequest{
		Title:    title,
		Content:  "<p>" + strings.Repeat("Go content. ", 20) + "</p>",
		Tags:     "go, web , ",
		ImageURL: "https://example.com/cover.png",
	}
}

func TestCreatePostDerivesFields(t *testing.T) {
	posts := newFakePostRepo()
	profile := &fakeProfileRepo{profile: &model.Profile{
		Name:              "Rajit Paul",
		ProfilePictureURL: "https://example.com/me.png",
	}}
	svc := newTestContentService(posts, newFakeProjectRepo(), profile)

	post, err := svc.CreatePost(context.Background(), validPostRequest("My First Go Post!"))
	require.NoError(t, err)

	assert.Equal(t, "my-first-go-post", post.Slug)
	assert.Equal(t, "Rajit Paul", post.Author)
	assert.Equal(t, "https://example.com/me.png", post.AuthorImage)
	assert.Equal(t, []string{"go", "web"}, post.Tags)
	assert.NotEmpty(t, post.Date)

	// Excerpt is tag-stripped and truncated.
	assert.NotContains(t, post.Excerpt, "<p>")
	assert.True(t, strings.HasSuffix(post.Excerpt, "..."))
	assert.LessOrEqual(t, len(post.Excerpt), excerptLength+3)
}

func TestCreatePostSlugCollisionGetsSuffix(t *testing.T) {
	posts := newFakePostRepo()
	posts.bySlug["my-first-go-post"] = &model.BlogPost{Slug: "my-first-go-post"}
	profile := &fakeProfileRepo{profile: &model.Profile{Name: "Rajit Paul"}}
	svc := newTestContentService(posts, newFakeProjectRepo(), profile)

	post, err := svc.CreatePost(context.Background(), validPostRequest("My First Go Post"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(post.Slug, "my-first-go-post-"))
	assert.Len(t, post.Slug, len("my-first-go-post-")+5)
}

func TestCreatePostWithoutProfileFails(t *testing.T) {
	svc := newTestContentService(newFakePostRepo(), newFakeProjectRepo(), &fakeProfileRepo{})

	_, err := svc.CreatePost(context.Background(), validPostRequest("Orphan Post Title"))
	assert.ErrorIs(t, err, ErrProfileMissing)
}

func TestUpdatePostRetitleOntoExistingSlugFails(t *testing.T) {
	posts := newFakePostRepo()
	posts.bySlug["old-title"] = &model.BlogPost{Slug: "old-title"}
	posts.bySlug["taken-title"] = &model.BlogPost{Slug: "taken-title"}
	profile := &fakeProfileRepo{profile: &model.Profile{Name: "Rajit Paul"}}
	svc := newTestContentService(posts, newFakeProjectRepo(), profile)

	req := validPostRequest("Taken Title")
	_, err := svc.UpdatePost(context.Background(), "old-title", req)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdatePostSameTitleKeepsSlug(t *testing.T) {
	posts := newFakePostRepo()
	posts.bySlug["stable-title"] = &model.BlogPost{Slug: "stable-title"}
	profile := &fakeProfileRepo{profile: &model.Profile{Name: "Rajit Paul"}}
	svc := newTestContentService(posts, newFakeProjectRepo(), profile)

	post, err := svc.UpdatePost(context.Background(), "stable-title", validPostRequest("Stable Title"))
	require.NoError(t, err)
	assert.Equal(t, "stable-title", post.Slug)
}

func validProjectRequest(imageURL string) request.ProjectRequest {
	return request.ProjectRequest{
		Title:           "Portfolio API",
		Description:     "A content backend.",
		LongDescription: strings.Repeat("A longer description of the project. ", 3),
		Technologies:    "Go,Gin,MongoDB",
		ImageURL:        imageURL,
	}
}

func TestCreateProjectRejectsOversizedDataURI(t *testing.T) {
	svc := newTestContentService(newFakePostRepo(), newFakeProjectRepo(), &fakeProfileRepo{})

	big := base64.StdEncoding.EncodeToString(make([]byte, maxImageBytes+1))
	_, err := svc.CreateProject(context.Background(), validProjectRequest("data:image/png;base64,"+big))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestCreateProjectAcceptsSmallDataURI(t *testing.T) {
	projects := newFakeProjectRepo()
	svc := newTestContentService(newFakePostRepo(), projects, &fakeProfileRepo{})

	small := base64.StdEncoding.EncodeToString(make([]byte, 1024))
	project, err := svc.CreateProject(context.Background(), validProjectRequest("data:image/png;base64,"+small))
	require.NoError(t, err)

	assert.Equal(t, "portfolio-api", project.Slug)
	assert.Equal(t, []string{"Go", "Gin", "MongoDB"}, project.Technologies)
}

func TestCreateProjectRejectsMalformedDataURI(t *testing.T) {
	svc := newTestContentService(newFakePostRepo(), newFakeProjectRepo(), &fakeProfileRepo{})

	_, err := svc.CreateProject(context.Background(), validProjectRequest("data:image/png;base64"))
	assert.Error(t, err)
}

func TestMakeExcerptShortContent(t *testing.T) {
	got := makeExcerpt("<p>Short.</p>")
	assert.Equal(t, "Short....", got)
}

func TestMakeExcerptTruncatesOnRuneBoundary(t *testing.T) {
	// A two-byte rune straddles the cut position; a byte-based cut
	// would split it and produce invalid UTF-8.
	content := strings.Repeat("a", excerptLength-1) + "économie and more text"
	got := makeExcerpt(content)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, excerptLength, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestMakeExcerptMultiByteContent(t *testing.T) {
	content := strings.Repeat("日", excerptLength+10)
	got := makeExcerpt(content)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("日", excerptLength)+"...", got)
}
