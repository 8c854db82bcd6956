package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLatestPublishedPipeline(t *testing.T) {
	pipeline := latestPublishedPipeline(5)
	assert.Len(t, pipeline, 6)

	match := pipeline[0][0]
	assert.Equal(t, "$match", match.Key)
	assert.Equal(t, bson.M{"draft": false}, match.Value)

	sort := pipeline[1][0]
	assert.Equal(t, "$sort", sort.Key)
	assert.Equal(t, bson.D{{Key: "publishedAt", Value: -1}}, sort.Value)

	limit := pipeline[2][0]
	assert.Equal(t, "$limit", limit.Key)
	assert.Equal(t, 5, limit.Value)

	lookup := pipeline[3][0]
	assert.Equal(t, "$lookup", lookup.Key)
	lookupSpec := lookup.Value.(bson.M)
	assert.Equal(t, "users", lookupSpec["from"])
	assert.Equal(t, "author", lookupSpec["localField"])
	assert.Equal(t, "_id", lookupSpec["foreignField"])

	unwind := pipeline[4][0]
	assert.Equal(t, "$unwind", unwind.Key)
	assert.Equal(t, true, unwind.Value.(bson.M)["preserveNullAndEmptyArrays"])

	project := pipeline[5][0]
	assert.Equal(t, "$project", project.Key)
	fields := project.Value.(bson.M)
	assert.Equal(t, 0, fields["_id"])
	for _, key := range []string{"blog_id", "title", "des", "banner", "tags", "activity", "publishedAt"} {
		assert.Equal(t, 1, fields[key], key)
	}

	// Anonymous posts must project to no author sub-document at all.
	author := fields["author"].(bson.M)["$cond"].(bson.M)
	assert.Equal(t, "$$REMOVE", author["else"])
}

func TestLatestPublishedPipeline_LimitPassedThrough(t *testing.T) {
	assert.Equal(t, 1, latestPublishedPipeline(1)[2][0].Value)
	assert.Equal(t, 20, latestPublishedPipeline(20)[2][0].Value)
}
