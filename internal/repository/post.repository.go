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

type mongoPostRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{
		col:    db.Collection(PostsCollection),
		logger: zap.L().With(zap.String("repository", PostsCollection)),
	}
}

func (r *mongoPostRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error("List posts failed", zap.Error(err))
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []model.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *mongoPostRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.col.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("Get post failed", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("get post %q: %w", slug, err)
	}
	return &post, nil
}

func (r *mongoPostRepository) Create(ctx context.Context, post *model.BlogPost) error {
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		r.logger.Error("Insert post failed", zap.Error(err))
		return fmt.Errorf("insert post: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		post.ID = id
	}
	return nil
}

func (r *mongoPostRepository) Update(ctx context.Context, slug string, post *model.BlogPost) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "slug", Value: post.Slug},
		{Key: "title", Value: post.Title},
		{Key: "excerpt", Value: post.Excerpt},
		{Key: "content", Value: post.Content},
		{Key: "author", Value: post.Author},
		{Key: "authorImage", Value: post.AuthorImage},
		{Key: "date", Value: post.Date},
		{Key: "tags", Value: post.Tags},
		{Key: "imageUrl", Value: post.ImageURL},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "slug", Value: slug}}, update)
	if err != nil {
		r.logger.Error("Update post failed", zap.String("slug", slug), zap.Error(err))
		return fmt.Errorf("update post %q: %w", slug, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "slug", Value: slug}})
	if err != nil {
		r.logger.Error("Delete post failed", zap.String("slug", slug), zap.Error(err))
		return fmt.Errorf("delete post %q: %w", slug, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
