package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a person exercises are logged for. Users are create-only;
// Username is not required to be unique.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}
