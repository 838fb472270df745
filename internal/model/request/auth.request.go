package request

// LoginRequest is accepted as JSON or form-encoded.
type LoginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type SignupRequest struct {
	Name            string `json:"name"            form:"name"            validate:"required,min=2"`
	Email           string `json:"email"           form:"email"           validate:"required,email"`
	Password        string `json:"password"        form:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required"`
}
