package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a credential record in the 'users' collection. Created at
// signup, read at login, never mutated afterwards.
type User struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string        `bson:"email"         json:"email"`
	Password      string        `bson:"password"      json:"-"` // bcrypt hash, never serialized
	Name          string        `bson:"name"          json:"name"`
	EmailVerified *time.Time    `bson:"emailVerified,omitempty" json:"-"`
	Image         string        `bson:"image,omitempty"         json:"image,omitempty"`
}
