package repository

import (
	"context"
	"fmt"

	"github.com/rajit909/portfolio-api/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type mongoProjectRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &mongoProjectRepository{
		col:    db.Collection(ProjectsCollection),
		logger: zap.L().With(zap.String("repository", ProjectsCollection)),
	}
}

func (r *mongoProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	// Featured projects first, stable within each group.
	opts := options.Find().SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error("List projects failed", zap.Error(err))
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []model.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

func (r *mongoProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var project model.Project
	err := r.col.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("Get project failed", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("get project %q: %w", slug, err)
	}
	return &project, nil
}

func (r *mongoProjectRepository) Create(ctx context.Context, project *model.Project) error {
	res, err := r.col.InsertOne(ctx, project)
	if err != nil {
		r.logger.Error("Insert project failed", zap.Error(err))
		return fmt.Errorf("insert project: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		project.ID = id
	}
	return nil
}

func (r *mongoProjectRepository) Update(ctx context.Context, slug string, project *model.Project) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "slug", Value: project.Slug},
		{Key: "title", Value: project.Title},
		{Key: "description", Value: project.Description},
		{Key: "longDescription", Value: project.LongDescription},
		{Key: "technologies", Value: project.Technologies},
		{Key: "imageUrl", Value: project.ImageURL},
		{Key: "githubUrl", Value: project.GithubURL},
		{Key: "liveUrl", Value: project.LiveURL},
		{Key: "featured", Value: project.Featured},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "slug", Value: slug}}, update)
	if err != nil {
		r.logger.Error("Update project failed", zap.String("slug", slug), zap.Error(err))
		return fmt.Errorf("update project %q: %w", slug, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProjectRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "slug", Value: slug}})
	if err != nil {
		r.logger.Error("Delete project failed", zap.String("slug", slug), zap.Error(err))
		return fmt.Errorf("delete project %q: %w", slug, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
