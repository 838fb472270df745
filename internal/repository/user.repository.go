package repository

import (
	"context"
	"fmt"

	"github.com/rajit909/portfolio-api/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type mongoUserRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		col:    db.Collection(UsersCollection),
		logger: zap.L().With(zap.String("repository", UsersCollection)),
	}
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("FindByEmail failed", zap.Error(err))
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		r.logger.Error("Insert user failed", zap.Error(err))
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = id
	return user, nil
}
