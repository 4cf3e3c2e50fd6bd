package mongorepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAvailableFilter(t *testing.T) {
	f := availableFilter("u1")
	assert.Equal(t, bson.D{
		{Key: "finalized", Value: true},
		{Key: "user_id", Value: bson.D{{Key: "$ne", Value: "u1"}}},
	}, f)
}

func TestPairFilter(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "interview_id", Value: "i1"},
		{Key: "user_id", Value: "u1"},
	}, pairFilter("i1", "u1"))
	assert.Equal(t, bson.D{{Key: "user_id", Value: "u9"}}, ownerFilter("u9"))
	assert.Equal(t, bson.D{{Key: "_id", Value: "f1"}}, byID("f1"))
}

func TestNewestFirst(t *testing.T) {
	opts := newestFirst("created_at", 20)
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 20, *opts.Limit)

	unbounded := newestFirst("attempt_timestamp", 0)
	assert.Nil(t, unbounded.Limit)
}
