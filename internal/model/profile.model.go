package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Profile is the singleton document in the 'profile' collection.
type Profile struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string        `bson:"name"              json:"name"`
	Headline          string        `bson:"headline"          json:"headline"`
	Bio               string        `bson:"bio"               json:"bio"`
	ProfilePictureURL string        `bson:"profilePictureUrl" json:"profilePictureUrl"`
	AIHint            string        `bson:"data-ai-hint,omitempty" json:"data-ai-hint,omitempty"`
	GithubURL         string        `bson:"githubUrl"   json:"githubUrl"`
	LinkedinURL       string        `bson:"linkedinUrl" json:"linkedinUrl"`
	TwitterURL        string        `bson:"twitterUrl"  json:"twitterUrl"`
}
