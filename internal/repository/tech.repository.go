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

type mongoTechRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewTechRepository(db *mongo.Database) TechRepository {
	return &mongoTechRepository{
		col:    db.Collection(TechCollection),
		logger: zap.L().With(zap.String("repository", TechCollection)),
	}
}

func (r *mongoTechRepository) List(ctx context.Context) ([]model.Tech, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error("List tech entries failed", zap.Error(err))
		return nil, fmt.Errorf("list tech entries: %w", err)
	}
	defer cursor.Close(ctx)

	techs := []model.Tech{}
	if err := cursor.All(ctx, &techs); err != nil {
		return nil, fmt.Errorf("decode tech entries: %w", err)
	}
	return techs, nil
}

func (r *mongoTechRepository) GetByID(ctx context.Context, id string) (*model.Tech, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var tech model.Tech
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&tech)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("Get tech entry failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get tech entry %q: %w", id, err)
	}
	return &tech, nil
}

func (r *mongoTechRepository) Create(ctx context.Context, tech *model.Tech) error {
	res, err := r.col.InsertOne(ctx, tech)
	if err != nil {
		r.logger.Error("Insert tech entry failed", zap.Error(err))
		return fmt.Errorf("insert tech entry: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		tech.ID = id
	}
	return nil
}

func (r *mongoTechRepository) Update(ctx context.Context, id string, tech *model.Tech) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: tech.Name},
		{Key: "icon", Value: tech.Icon},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		r.logger.Error("Update tech entry failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("update tech entry %q: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTechRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		r.logger.Error("Delete tech entry failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete tech entry %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTechRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
