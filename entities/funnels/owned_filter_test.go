package funnels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestOwnedFilterScopesByCoach(t *testing.T) {
	id := bson.NewObjectID()

	filter := ownedFilter(id, 42)

	assert.Equal(t, bson.D{
		{Key: "_id", Value: id},
		{Key: "coach_id", Value: 42},
	}, filter)
}
