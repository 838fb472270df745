// mongodb.go - MongoDB connection management built on Driver v2
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rajit909/portfolio-api/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// MongoDB wraps a mongo client plus the application database handle.
type MongoDB struct {
	config *config.MongoConfig
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongoDB(config *config.MongoConfig) *MongoDB {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 30
	}
	return &MongoDB{
		config: config,
		logger: zap.L(),
	}
}

func (m *MongoDB) Connect() error {
	m.logger.Info("Starting MongoDB connection",
		zap.String("database", m.config.Database),
		zap.String("auth_source", m.config.AuthSource),
		zap.Int("connect_timeout_seconds", m.config.ConnectTimeout))

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(m.config.ConnectTimeout)*time.Second,
	)
	defer cancel()

	clientOptions := options.Client().ApplyURI(m.buildMongoURI())
	m.configureClientOptions(clientOptions)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		m.logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Error("Failed to ping MongoDB", zap.Error(err))
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	m.client = client
	m.db = client.Database(m.config.Database)

	m.logger.Info("Successfully connected to MongoDB",
		zap.String("database", m.config.Database))
	return nil
}

func (m *MongoDB) buildMongoURI() string {
	if m.config.URI != "" {
		return m.config.URI
	}

	uri := fmt.Sprintf("mongodb://%s:%s@localhost:27017/%s",
		m.config.Username, m.config.Password, m.config.Database)
	if m.config.AuthSource != "" {
		uri += "?authSource=" + m.config.AuthSource
	}
	return uri
}

func (m *MongoDB) configureClientOptions(opts *options.ClientOptions) {
	m.logger.Debug("Configuring MongoDB client options",
		zap.Uint64("max_pool_size", m.config.MaxPoolSize),
		zap.Uint64("min_pool_size", m.config.MinPoolSize),
		zap.Int("connect_timeout_seconds", m.config.ConnectTimeout))

	if m.config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(m.config.MaxPoolSize)
	}
	if m.config.MinPoolSize > 0 {
		opts.SetMinPoolSize(m.config.MinPoolSize)
	}

	opts.SetRetryReads(true)
	opts.SetRetryWrites(true)
	opts.SetConnectTimeout(time.Duration(m.config.ConnectTimeout) * time.Second)
	opts.SetServerSelectionTimeout(5 * time.Second)
}

// Database returns the application database handle.
func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

func (m *MongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if m.client == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Error("MongoDB ping failed", zap.Error(err))
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *MongoDB) Close() error {
	m.logger.Info("Closing MongoDB connection")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		m.logger.Error("MongoDB disconnect error", zap.Error(err))
		return fmt.Errorf("mongo disconnect error: %w", err)
	}

	m.logger.Info("MongoDB connection closed successfully")
	return nil
}

func (m *MongoDB) IsConnected() bool {
	return m.client != nil
}
