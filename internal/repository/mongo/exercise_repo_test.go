package mongo

import (
	"testing"
	"time"

	"alcyxob/exercise-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogFilterIsInclusiveDayRange(t *testing.T) {
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)

	got := logFilter("alice", domain.LogWindow{From: from, To: to, Limit: 5})

	assert.Equal(t, bson.M{
		"username": "alice",
		"date": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}, got)
}
