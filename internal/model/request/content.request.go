package request

// PostRequest creates or updates a blog post. Tags arrive as a
// comma-separated string, matching the admin form field.
type PostRequest struct {
	Title    string `json:"title"    validate:"required,min=5"`
	Content  string `json:"content"  validate:"required,min=50"`
	Tags     string `json:"tags"`
	ImageURL string `json:"imageUrl" validate:"required,url|startswith=data:"`
}

type ProjectRequest struct {
	Title           string `json:"title"           validate:"required,min=3"`
	Description     string `json:"description"     validate:"required,min=10"`
	LongDescription string `json:"longDescription" validate:"required,min=50"`
	Technologies    string `json:"technologies"    validate:"required"`
	ImageURL        string `json:"imageUrl"        validate:"required,url|startswith=data:"`
	GithubURL       string `json:"githubUrl"       validate:"omitempty,url"`
	LiveURL         string `json:"liveUrl"         validate:"omitempty,url"`
	Featured        bool   `json:"featured"`
}

type AchievementRequest struct {
	Title       string `json:"title"       validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
	Year        string `json:"year"        validate:"required,min=4"`
	Icon        string `json:"icon"        validate:"required,oneof=Trophy Award Code Users"`
}

type TechRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon" validate:"required"`
}

type ProfileRequest struct {
	Name              string `json:"name"              validate:"required,min=2"`
	Headline          string `json:"headline"          validate:"required,min=10"`
	Bio               string `json:"bio"               validate:"required,min=20"`
	ProfilePictureURL string `json:"profilePictureUrl" validate:"required,url"`
	GithubURL         string `json:"githubUrl"         validate:"omitempty,url"`
	LinkedinURL       string `json:"linkedinUrl"       validate:"omitempty,url"`
	TwitterURL        string `json:"twitterUrl"        validate:"omitempty,url"`
}

// SlugParam binds slug-addressed routes.
type SlugParam struct {
	Slug string `uri:"slug" validate:"required"`
}

// IDParam binds ObjectID-addressed routes.
type IDParam struct {
	ID string `uri:"id" validate:"required,len=24,hexadecimal"`
}
