package request

type ContactRequest struct {
	Name    string `json:"name"    form:"name"    validate:"required,min=2"`
	Email   string `json:"email"   form:"email"   validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required,min=10"`
}
