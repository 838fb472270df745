package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Tech is an entry in the 'techstack' collection.
type Tech struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string        `bson:"name" json:"name"`
	Icon string        `bson:"icon" json:"icon"`
}
