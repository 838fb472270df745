package response

type ResponseData struct {
	Ec    int    `json:"ec"`
	Msg   string `json:"msg,omitempty"`
	Error string `json:"error,omitempty"`
	Total *int   `json:"total,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// FieldErrors carries per-field validation messages alongside the
// generic message, so forms can render inline errors.
type FieldErrors struct {
	Ec     int                 `json:"ec"`
	Msg    string              `json:"msg"`
	Errors map[string][]string `json:"errors,omitempty"`
}
