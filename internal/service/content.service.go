package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/repository"
	"github.com/rajit909/portfolio-api/pkg/cache"
	"github.com/rajit909/portfolio-api/util"
	"go.uber.org/zap"
)

var (
	ErrSlugTaken      = errors.New("this title creates a slug that is already in use")
	ErrImageTooLarge  = errors.New("image exceeds the 200KB size limit")
	ErrProfileMissing = errors.New("profile data not found; cannot derive post author")
)

// Cache key prefixes for public content payloads. Writes invalidate
// the whole prefix for the affected type.
const (
	CachePostsPrefix        = "content:posts"
	CacheProjectsPrefix     = "content:projects"
	CacheAchievementsPrefix = "content:achievements"
	CacheTechPrefix         = "content:tech"
	CacheProfileKey         = "content:profile"
)

const (
	excerptLength = 150
	maxImageBytes = 200 * 1024
)

var htmlTags = regexp.MustCompile(`<[^>]+>`)

// ContentService owns the write-path rules for all content types:
// slug derivation, excerpt generation, author denormalization, image
// size limits and cache invalidation.
type ContentService struct {
	posts        repository.PostRepository
	projects     repository.ProjectRepository
	achievements repository.AchievementRepository
	tech         repository.TechRepository
	profile      repository.ProfileRepository
	cache        cache.Cache // may be nil when Redis is disabled
	logger       *zap.Logger
}

func NewContentService(
	posts repository.PostRepository,
	projects repository.ProjectRepository,
	achievements repository.AchievementRepository,
	tech repository.TechRepository,
	profile repository.ProfileRepository,
	contentCache cache.Cache,
) *ContentService {
	return &ContentService{
		posts:        posts,
		projects:     projects,
		achievements: achievements,
		tech:         tech,
		profile:      profile,
		cache:        contentCache,
		logger:       zap.L().With(zap.String("service", "content")),
	}
}

// ---- Posts ----

func (s *ContentService) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.posts.List(ctx)
}

func (s *ContentService) GetPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.posts.GetBySlug(ctx, slug)
}

func (s *ContentService) CreatePost(ctx context.Context, req request.PostRequest) (*model.BlogPost, error) {
	profile, err := s.profile.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, err
	}

	slug := util.Slugify(req.Title)
	if _, err := s.posts.GetBySlug(ctx, slug); err == nil {
		slug = slug + "-" + util.RandomSlugSuffix()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	post := &model.BlogPost{
		Slug:        slug,
		Title:       req.Title,
		Content:     req.Content,
		Tags:        splitCSV(req.Tags),
		Excerpt:     makeExcerpt(req.Content),
		Author:      profile.Name,
		AuthorImage: profile.ProfilePictureURL,
		Date:        time.Now().UTC().Format(time.RFC3339),
		ImageURL:    req.ImageURL,
		AIHint:      "blog abstract",
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CachePostsPrefix)
	s.logger.Info("Post created", zap.String("slug", post.Slug))
	return post, nil
}

func (s *ContentService) UpdatePost(ctx context.Context, originalSlug string, req request.PostRequest) (*model.BlogPost, error) {
	profile, err := s.profile.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, err
	}

	newSlug := originalSlug
	if potential := util.Slugify(req.Title); potential != originalSlug {
		// A retitled post moves to a new slug, but never on top of an
		// existing one.
		if _, err := s.posts.GetBySlug(ctx, potential); err == nil {
			return nil, ErrSlugTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		newSlug = potential
	}

	post := &model.BlogPost{
		Slug:        newSlug,
		Title:       req.Title,
		Content:     req.Content,
		Tags:        splitCSV(req.Tags),
		Excerpt:     makeExcerpt(req.Content),
		Author:      profile.Name,
		AuthorImage: profile.ProfilePictureURL,
		Date:        time.Now().UTC().Format(time.RFC3339),
		ImageURL:    req.ImageURL,
	}

	if err := s.posts.Update(ctx, originalSlug, post); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CachePostsPrefix)
	s.logger.Info("Post updated",
		zap.String("slug", originalSlug), zap.String("newSlug", newSlug))
	return post, nil
}

func (s *ContentService) DeletePost(ctx context.Context, slug string) error {
	if err := s.posts.Delete(ctx, slug); err != nil {
		return err
	}
	s.invalidate(ctx, CachePostsPrefix)
	s.logger.Info("Post deleted", zap.String("slug", slug))
	return nil
}

// ---- Projects ----

func (s *ContentService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *ContentService) GetProject(ctx context.Context, slug string) (*model.Project, error) {
	return s.projects.GetBySlug(ctx, slug)
}

func (s *ContentService) CreateProject(ctx context.Context, req request.ProjectRequest) (*model.Project, error) {
	if err := checkDataURISize(req.ImageURL); err != nil {
		return nil, err
	}

	slug := util.Slugify(req.Title)
	if _, err := s.projects.GetBySlug(ctx, slug); err == nil {
		slug = slug + "-" + util.RandomSlugSuffix()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	project := &model.Project{
		Slug:            slug,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    splitCSV(req.Technologies),
		ImageURL:        req.ImageURL,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Featured:        req.Featured,
		AIHint:          "project technology",
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheProjectsPrefix)
	s.logger.Info("Project created", zap.String("slug", project.Slug))
	return project, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, originalSlug string, req request.ProjectRequest) (*model.Project, error) {
	if err := checkDataURISize(req.ImageURL); err != nil {
		return nil, err
	}

	newSlug := originalSlug
	if potential := util.Slugify(req.Title); potential != originalSlug {
		if _, err := s.projects.GetBySlug(ctx, potential); err == nil {
			return nil, ErrSlugTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		newSlug = potential
	}

	project := &model.Project{
		Slug:            newSlug,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    splitCSV(req.Technologies),
		ImageURL:        req.ImageURL,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Featured:        req.Featured,
	}

	if err := s.projects.Update(ctx, originalSlug, project); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheProjectsPrefix)
	s.logger.Info("Project updated",
		zap.String("slug", originalSlug), zap.String("newSlug", newSlug))
	return project, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, slug string) error {
	if err := s.projects.Delete(ctx, slug); err != nil {
		return err
	}
	s.invalidate(ctx, CacheProjectsPrefix)
	s.logger.Info("Project deleted", zap.String("slug", slug))
	return nil
}

// ---- Achievements ----

func (s *ContentService) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	return s.achievements.List(ctx)
}

func (s *ContentService) GetAchievement(ctx context.Context, id string) (*model.Achievement, error) {
	return s.achievements.GetByID(ctx, id)
}

func (s *ContentService) CreateAchievement(ctx context.Context, req request.AchievementRequest) (*model.Achievement, error) {
	achievement := &model.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Icon:        req.Icon,
	}
	if err := s.achievements.Create(ctx, achievement); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheAchievementsPrefix)
	return achievement, nil
}

func (s *ContentService) UpdateAchievement(ctx context.Context, id string, req request.AchievementRequest) (*model.Achievement, error) {
	achievement := &model.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Icon:        req.Icon,
	}
	if err := s.achievements.Update(ctx, id, achievement); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheAchievementsPrefix)
	return achievement, nil
}

func (s *ContentService) DeleteAchievement(ctx context.Context, id string) error {
	if err := s.achievements.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, CacheAchievementsPrefix)
	return nil
}

// ---- Tech stack ----

func (s *ContentService) ListTech(ctx context.Context) ([]model.Tech, error) {
	return s.tech.List(ctx)
}

func (s *ContentService) CreateTech(ctx context.Context, req request.TechRequest) (*model.Tech, error) {
	tech := &model.Tech{Name: req.Name, Icon: req.Icon}
	if err := s.tech.Create(ctx, tech); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheTechPrefix)
	return tech, nil
}

func (s *ContentService) UpdateTech(ctx context.Context, id string, req request.TechRequest) (*model.Tech, error) {
	tech := &model.Tech{Name: req.Name, Icon: req.Icon}
	if err := s.tech.Update(ctx, id, tech); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheTechPrefix)
	return tech, nil
}

func (s *ContentService) DeleteTech(ctx context.Context, id string) error {
	if err := s.tech.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, CacheTechPrefix)
	return nil
}

// ---- Profile ----

func (s *ContentService) GetProfile(ctx context.Context) (*model.Profile, error) {
	return s.profile.Get(ctx)
}

func (s *ContentService) UpdateProfile(ctx context.Context, req request.ProfileRequest) (*model.Profile, error) {
	profile := &model.Profile{
		Name:              req.Name,
		Headline:          req.Headline,
		Bio:               req.Bio,
		ProfilePictureURL: req.ProfilePictureURL,
		GithubURL:         req.GithubURL,
		LinkedinURL:       req.LinkedinURL,
		TwitterURL:        req.TwitterURL,
	}
	if err := s.profile.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheProfileKey)
	// Author fields on posts are denormalized from the profile, so a
	// profile change invalidates the posts payloads too.
	s.invalidate(ctx, CachePostsPrefix)
	return profile, nil
}

// ---- Dashboard ----

// Counts reports per-collection document counts for the admin
// dashboard. A failing count is reported as zero rather than failing
// the dashboard.
func (s *ContentService) Counts(ctx context.Context) map[string]int64 {
	counts := map[string]int64{}
	for name, count := range map[string]func(context.Context) (int64, error){
		"posts":        s.posts.Count,
		"projects":     s.projects.Count,
		"achievements": s.achievements.Count,
		"tech":         s.tech.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			s.logger.Warn("Count failed", zap.String("collection", name), zap.Error(err))
			n = 0
		}
		counts[name] = n
	}
	return counts
}

// ---- helpers ----

func (s *ContentService) invalidate(ctx context.Context, prefix string) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, prefix)
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := []string{}
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// makeExcerpt strips markup and truncates to the first excerptLength
// characters, mirroring how the public cards render previews. The cut
// lands on a rune boundary so multi-byte content stays valid UTF-8.
func makeExcerpt(htmlContent string) string {
	plain := htmlTags.ReplaceAllString(htmlContent, "")
	if runes := []rune(plain); len(runes) > excerptLength {
		plain = string(runes[:excerptLength])
	}
	return plain + "..."
}

// checkDataURISize enforces the 200KB cap on inline (data URI) images.
// Regular URLs pass through untouched.
func checkDataURISize(imageURL string) error {
	if !strings.HasPrefix(imageURL, "data:") {
		return nil
	}
	idx := strings.Index(imageURL, ",")
	if idx < 0 {
		return fmt.Errorf("malformed data URI")
	}
	decoded, err := base64.StdEncoding.DecodeString(imageURL[idx+1:])
	if err != nil {
		return fmt.Errorf("malformed data URI payload: %w", err)
	}
	if len(decoded) > maxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}
