package model

// Identity is the single session shape used across the application:
// exactly the three claims a verified token asserts. It only ever
// exists for the lifetime of the request that verified the token.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
