package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Project is a document in the 'projects' collection.
type Project struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug            string        `bson:"slug"            json:"slug"`
	Title           string        `bson:"title"           json:"title"`
	Description     string        `bson:"description"     json:"description"`
	LongDescription string        `bson:"longDescription" json:"longDescription"`
	Technologies    []string      `bson:"technologies"    json:"technologies"`
	ImageURL        string        `bson:"imageUrl"        json:"imageUrl"`
	AIHint          string        `bson:"data-ai-hint,omitempty" json:"data-ai-hint,omitempty"`
	GithubURL       string        `bson:"githubUrl,omitempty"    json:"githubUrl,omitempty"`
	LiveURL         string        `bson:"liveUrl,omitempty"      json:"liveUrl,omitempty"`
	Featured        bool          `bson:"featured,omitempty"     json:"featured,omitempty"`
}
