// Package repository provides directory access over the users and blogs collections.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// userRepository implements UserRepository over a Mongo collection
type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection("users")}
}

// Create inserts the user. A duplicate email or username surfaces as a
// Conflict even when an earlier existence check passed; the unique index is
// the authority on the check-then-act race.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if duplicateKeyOn(err, database.UsernameIndex) {
				return models.NewConflictError("Username already taken")
			}
			return models.NewConflictError("Email already exists")
		}
		return models.NewInternalError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// duplicateKeyOn reports whether err carries a duplicate-key write error on
// the named index. The server puts the violated index name in each write
// error's message (there is no structured field for it), so matching against
// the explicit names set at index creation is the sturdiest check available.
func duplicateKeyOn(err error, index string) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if strings.Contains(e.Message, index) {
				return true
			}
		}
	}
	return false
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Return nil for not found, not an error
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
