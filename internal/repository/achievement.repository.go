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

type mongoAchievementRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewAchievementRepository(db *mongo.Database) AchievementRepository {
	return &mongoAchievementRepository{
		col:    db.Collection(AchievementsCollection),
		logger: zap.L().With(zap.String("repository", AchievementsCollection)),
	}
}

func (r *mongoAchievementRepository) List(ctx context.Context) ([]model.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error("List achievements failed", zap.Error(err))
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer cursor.Close(ctx)

	achievements := []model.Achievement{}
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, fmt.Errorf("decode achievements: %w", err)
	}
	return achievements, nil
}

func (r *mongoAchievementRepository) GetByID(ctx context.Context, id string) (*model.Achievement, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var achievement model.Achievement
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&achievement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("Get achievement failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get achievement %q: %w", id, err)
	}
	return &achievement, nil
}

func (r *mongoAchievementRepository) Create(ctx context.Context, achievement *model.Achievement) error {
	res, err := r.col.InsertOne(ctx, achievement)
	if err != nil {
		r.logger.Error("Insert achievement failed", zap.Error(err))
		return fmt.Errorf("insert achievement: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		achievement.ID = id
	}
	return nil
}

func (r *mongoAchievementRepository) Update(ctx context.Context, id string, achievement *model.Achievement) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: achievement.Title},
		{Key: "description", Value: achievement.Description},
		{Key: "year", Value: achievement.Year},
		{Key: "icon", Value: achievement.Icon},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		r.logger.Error("Update achievement failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("update achievement %q: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAchievementRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		r.logger.Error("Delete achievement failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete achievement %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAchievementRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
