// Package repository is the persistence boundary: each content type
// gets an interface the services program against, with MongoDB
// implementations alongside. Handlers and services never see driver
// types beyond the models' ObjectIDs.
package repository

import (
	"context"
	"errors"

	"github.com/rajit909/portfolio-api/internal/model"
)

var (
	ErrNotFound  = errors.New("repository: document not found")
	ErrDuplicate = errors.New("repository: document already exists")
)

// Collection names in the portfolio database.
const (
	UsersCollection        = "users"
	PostsCollection        = "posts"
	ProjectsCollection     = "projects"
	AchievementsCollection = "achievements"
	TechCollection         = "techstack"
	ProfileCollection      = "profile"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

type PostRepository interface {
	List(ctx context.Context) ([]model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, slug string, post *model.BlogPost) error
	Delete(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, slug string, project *model.Project) error
	Delete(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
}

type AchievementRepository interface {
	List(ctx context.Context) ([]model.Achievement, error)
	GetByID(ctx context.Context, id string) (*model.Achievement, error)
	Create(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, id string, achievement *model.Achievement) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type TechRepository interface {
	List(ctx context.Context) ([]model.Tech, error)
	GetByID(ctx context.Context, id string) (*model.Tech, error)
	Create(ctx context.Context, tech *model.Tech) error
	Update(ctx context.Context, id string, tech *model.Tech) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ProfileRepository interface {
	Get(ctx context.Context) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) error
}
