package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Achievement is a document in the 'achievements' collection.
type Achievement struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string        `bson:"title"       json:"title"`
	Description string        `bson:"description" json:"description"`
	Year        string        `bson:"year"        json:"year"`
	Icon        string        `bson:"icon"        json:"icon"`
}
