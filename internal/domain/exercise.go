// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity.
//
// Username is a snapshot of the owning user's name taken when the exercise
// was logged. It is not a reference to User.ID and is never cascaded.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username    string             `bson:"username" json:"username"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // minutes
	Date        time.Time          `bson:"date" json:"date"`         // calendar day, UTC midnight
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
}
