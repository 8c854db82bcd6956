package repository

import (
	"context"
	"time"

	"inkwell/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BlogRepository defines the interface for blog directory operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	LatestPublished(ctx context.Context, limit int) ([]models.BlogSummary, error)
}

// blogRepository implements BlogRepository over a Mongo collection
type blogRepository struct {
	col *mongo.Collection
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &blogRepository{col: db.Collection("blogs")}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError("Blog with this ID already exists")
		}
		return models.NewInternalError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		blog.ID = oid
	}
	return nil
}

// LatestPublished returns non-draft blogs newest first, capped at limit, with
// the author joined and projected down to public profile fields only.
func (r *blogRepository) LatestPublished(ctx context.Context, limit int) ([]models.BlogSummary, error) {
	cursor, err := r.col.Aggregate(ctx, latestPublishedPipeline(limit))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer cursor.Close(ctx)

	var blogs []models.BlogSummary
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

// latestPublishedPipeline filters out drafts, sorts newest first, caps at
// limit, and joins each author down to their public profile fields.
func latestPublishedPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"draft": false}}},
		{{Key: "$sort", Value: bson.D{{Key: "publishedAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "author",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":         0,
			"blog_id":     1,
			"title":       1,
			"des":         1,
			"banner":      1,
			"tags":        1,
			"activity":    1,
			"publishedAt": 1,
			// Anonymous posts carry no author sub-document at all.
			"author": bson.M{"$cond": bson.M{
				"if": bson.M{"$gt": bson.A{"$author", nil}},
				"then": bson.M{
					"profile_img": "$author.profile_img",
					"username":    "$author.username",
					"fullname":    "$author.fullname",
				},
				"else": "$$REMOVE",
			}},
		}}},
	}
}
