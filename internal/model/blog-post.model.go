package model

import "go.mongodb.org/mongo-driver/v2/bson"

// BlogPost is a document in the 'posts' collection. Author fields are
// denormalized from the profile at write time.
type BlogPost struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug        string        `bson:"slug"          json:"slug"`
	Title       string        `bson:"title"         json:"title"`
	Excerpt     string        `bson:"excerpt"       json:"excerpt"`
	Content     string        `bson:"content"       json:"content"` // HTML content
	Author      string        `bson:"author"        json:"author"`
	AuthorImage string        `bson:"authorImage"   json:"authorImage"`
	Date        string        `bson:"date"          json:"date"`
	Tags        []string      `bson:"tags"          json:"tags"`
	ImageURL    string        `bson:"imageUrl"      json:"imageUrl"`
	AIHint      string        `bson:"data-ai-hint,omitempty" json:"data-ai-hint,omitempty"`
}
