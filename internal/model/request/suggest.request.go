package request

type SuggestTagsRequest struct {
	Content string `json:"content" validate:"required,min=20"`
}

type SuggestContentRequest struct {
	Topic string `json:"topic" validate:"required,min=3"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3"`
}

type ProjectDescriptionRequest struct {
	Title        string `json:"title"        validate:"required,min=3"`
	Technologies string `json:"technologies" validate:"required"`
}
