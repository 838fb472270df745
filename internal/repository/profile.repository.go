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

type mongoProfileRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewProfileRepository(db *mongo.Database) ProfileRepository {
	return &mongoProfileRepository{
		col:    db.Collection(ProfileCollection),
		logger: zap.L().With(zap.String("repository", ProfileCollection)),
	}
}

// Get returns the singleton profile document.
func (r *mongoProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	err := r.col.FindOne(ctx, bson.D{}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("Get profile failed", zap.Error(err))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert replaces the singleton profile document, creating it when the
// collection is empty.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: profile.Name},
		{Key: "headline", Value: profile.Headline},
		{Key: "bio", Value: profile.Bio},
		{Key: "profilePictureUrl", Value: profile.ProfilePictureURL},
		{Key: "githubUrl", Value: profile.GithubURL},
		{Key: "linkedinUrl", Value: profile.LinkedinURL},
		{Key: "twitterUrl", Value: profile.TwitterURL},
	}}}

	opts := options.UpdateOne().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, bson.D{}, update, opts); err != nil {
		r.logger.Error("Upsert profile failed", zap.Error(err))
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
