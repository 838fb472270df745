package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rajit909/portfolio-api/config"
	"github.com/rajit909/portfolio-api/internal/model"
	"github.com/rajit909/portfolio-api/pkg/cache"
	"go.uber.org/zap"
)

var ErrGithubNotConfigured = errors.New("github token is not configured")

const (
	githubGraphQLEndpoint = "https://api.github.com/graphql"
	githubCacheKey        = "github:contributions"
	githubCacheTTLSeconds = 3600
)

const contributionsQuery = `query($userName: String!) {
  user(login: $userName) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
            color
          }
        }
      }
    }
  }
}`

// GithubService proxies the GitHub GraphQL contribution calendar so the
// public site never exposes the API token. Responses are cached for an
// hour.
type GithubService struct {
	httpClient *http.Client
	username   string
	token      string
	cache      cache.Cache // may be nil
	logger     *zap.Logger
}

func NewGithubService(cfg config.GithubConfig, contentCache cache.Cache) *GithubService {
	return &GithubService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		username:   cfg.Username,
		token:      cfg.Token,
		cache:      contentCache,
		logger:     zap.L().With(zap.String("service", "github")),
	}
}

type githubGraphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type githubGraphQLResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int                      `json:"totalContributions"`
					Weeks              []model.ContributionWeek `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ContributionActivity fetches the contribution calendar for the
// configured user, serving from cache when possible.
func (s *GithubService) ContributionActivity(ctx context.Context) (*model.ContributionActivity, error) {
	if s.token == "" || s.username == "" {
		return nil, ErrGithubNotConfigured
	}

	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, githubCacheKey); ok {
			var cached model.ContributionActivity
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			s.cache.Delete(ctx, githubCacheKey)
		}
	}

	activity, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(activity); err == nil {
			s.cache.SetWithTTL(ctx, githubCacheKey, payload, githubCacheTTLSeconds)
		}
	}
	return activity, nil
}

func (s *GithubService) fetch(ctx context.Context) (*model.ContributionActivity, error) {
	payload, err := json.Marshal(githubGraphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]string{"userName": s.username},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal github query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, githubGraphQLEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	res, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("GitHub request failed", zap.Error(err))
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read github response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		s.logger.Warn("GitHub returned non-OK status", zap.Int("status", res.StatusCode))
		return nil, fmt.Errorf("github api status %d", res.StatusCode)
	}

	var parsed githubGraphQLResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("github api error: %s", parsed.Errors[0].Message)
	}

	calendar := parsed.Data.User.ContributionsCollection.ContributionCalendar
	return &model.ContributionActivity{
		TotalContributions: calendar.TotalContributions,
		Weeks:              calendar.Weeks,
	}, nil
}
