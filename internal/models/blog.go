package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogContent is the structured editor output: an ordered list of blocks.
type BlogContent struct {
	Time    int64            `bson:"time" json:"time"`
	Blocks  []map[string]any `bson:"blocks" json:"blocks"`
	Version string           `bson:"version,omitempty" json:"version,omitempty"`
}

// Activity tracks per-blog engagement counters.
type Activity struct {
	TotalLikes          int64 `bson:"total_likes" json:"total_likes"`
	TotalComments       int64 `bson:"total_comments" json:"total_comments"`
	TotalReads          int64 `bson:"total_reads" json:"total_reads"`
	TotalParentComments int64 `bson:"total_parent_comments" json:"total_parent_comments"`
}

// Blog is a stored blog document. BlogID is the URL slug and carries a
// unique index. Author is optional: anonymous posting is permitted.
type Blog struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	BlogID      string              `bson:"blog_id" json:"blog_id"`
	Title       string              `bson:"title" json:"title"`
	Des         string              `bson:"des" json:"des"`
	Banner      string              `bson:"banner" json:"banner"`
	Content     BlogContent         `bson:"content" json:"content"`
	Tags        []string            `bson:"tags" json:"tags"`
	Author      *primitive.ObjectID `bson:"author,omitempty" json:"-"`
	Activity    Activity            `bson:"activity" json:"activity"`
	Draft       bool                `bson:"draft" json:"draft"`
	PublishedAt time.Time           `bson:"publishedAt" json:"publishedAt"`
}

// BlogSummary is a latest-blogs listing entry: public blog fields plus the
// author's public profile. Author is nil for anonymous posts.
type BlogSummary struct {
	BlogID      string         `bson:"blog_id" json:"blog_id"`
	Title       string         `bson:"title" json:"title"`
	Des         string         `bson:"des" json:"des"`
	Banner      string         `bson:"banner" json:"banner"`
	Tags        []string       `bson:"tags" json:"tags"`
	Activity    Activity       `bson:"activity" json:"activity"`
	PublishedAt time.Time      `bson:"publishedAt" json:"publishedAt"`
	Author      *PublicProfile `bson:"author,omitempty" json:"author,omitempty"`
}
