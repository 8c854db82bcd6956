// Package database handles the document-store connection and index bootstrap.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inkwell/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Names of the unique indexes, referenced when mapping duplicate-key errors
// back to the conflicting field.
const (
	EmailIndex    = "email_unique"
	UsernameIndex = "username_unique"
	BlogIDIndex   = "blog_id_unique"
)

var (
	once    sync.Once
	client  *mongo.Client
	db      *mongo.Database
	connErr error
)

// Connect returns the shared database handle, establishing the connection on
// first use. The handle is safe for concurrent use and reused for the process
// lifetime.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, connErr = mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if connErr != nil {
			connErr = fmt.Errorf("mongo connect: %w", connErr)
			return
		}

		if connErr = client.Ping(connectCtx, readpref.Primary()); connErr != nil {
			connErr = fmt.Errorf("mongo ping: %w", connErr)
			return
		}

		db = client.Database(cfg.DBName)
		connErr = EnsureIndexes(connectCtx, db)
	})
	return db, connErr
}

// EnsureIndexes creates the unique indexes that back the email, username, and
// blog_id invariants, plus the listing index for published blogs. Uniqueness
// checks in the application layer are an optimization; these indexes are the
// guarantee.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(EmailIndex),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(UsernameIndex),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = db.Collection("blogs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "blog_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(BlogIDIndex),
		},
		{
			Keys: bson.D{{Key: "draft", Value: 1}, {Key: "publishedAt", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("blogs indexes: %w", err)
	}
	return nil
}

// Disconnect closes the shared client, if one was established.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping reports connection health for readiness checks.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("database not connected")
	}
	return client.Ping(ctx, readpref.Primary())
}
