package constant

import (
	"net/http"

	"github.com/rajit909/portfolio-api/internal/model/response"
)

var BAD_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Bad request",
}

var INVALID_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Invalid request payload",
}

var UNAUTHORIZED = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Unauthorized",
}

// Generic credential failure. The same message covers unknown email and
// wrong password so responses cannot be used to enumerate accounts.
var INVALID_CREDENTIALS = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Invalid email or password.",
}

var NOT_FOUND = response.ResponseData{
	Ec:  http.StatusNotFound,
	Msg: "Not found",
}

var INTERNAL_SERVER_ERROR = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "An internal server error occurred. Please try again.",
}

var FORBIDDEN = response.ResponseData{
	Ec:  http.StatusForbidden,
	Msg: "Forbidden",
}

var SUGGESTION_FAILED = response.ResponseData{
	Ec:  http.StatusBadGateway,
	Msg: "Suggestion service is unavailable. Your content was not affected.",
}
