package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an exercise-tracker account and its embedded log.
// Entries live on the user document itself (one document per user),
// so appending an entry is a single atomic update on the store side.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Log       []Entry            `bson:"log" json:"log"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Entry is one logged exercise. Order within User.Log is append order,
// which is not necessarily date order.
type Entry struct {
	// ID identifies the entry inside the store only; it is never
	// exposed through the API.
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"`
	Date        time.Time          `bson:"date" json:"date"`
}
