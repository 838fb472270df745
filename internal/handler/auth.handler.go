package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/rajit909/portfolio-api/internal/model/request"
	"github.com/rajit909/portfolio-api/internal/model/response"
	"github.com/rajit909/portfolio-api/internal/service"
	"github.com/rajit909/portfolio-api/internal/validation"
	"go.uber.org/zap"
)

// AuthHandler serves the public auth entry points. Login and signup
// accept both JSON (API clients) and form encoding (plain HTML forms);
// form submissions get redirects, JSON clients get payloads.
type AuthHandler struct {
	auth          *service.AuthService
	secureCookies bool
	logger        *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:          authService,
		secureCookies: secureCookies,
		logger:        zap.L().With(zap.String("handler", "auth")),
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.ContentType(), "application/json")
}

// sanitizeCallback keeps redirects on-site. Anything that is not a
// local absolute path falls back to the admin root.
func sanitizeCallback(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return auth.AdminPath
	}
	return raw
}

// Login godoc
//
//	@Summary	Log in and receive the identity cookie
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		request.LoginRequest	true	"Credentials"
//	@Success	200			{object}	response.ResponseData
//	@Failure	401			{object}	response.ResponseData
//	@Router		/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var body request.LoginRequest
	if err := c.ShouldBind(&body); err != nil {
		h.loginFailure(c, constant.INVALID_REQUEST, err.Error())
		return
	}
	if err := validation.Struct(body); err != nil {
		h.loginFailure(c, constant.INVALID_REQUEST, err.Error())
		return
	}

	token, err := h.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.loginFailure(c, constant.INVALID_CREDENTIALS, "")
		case errors.Is(err, auth.ErrNoSecret):
			h.logger.Error("Login attempted without a signing secret")
			if wantsJSON(c) {
				res := constant.INTERNAL_SERVER_ERROR
				c.JSON(res.Ec, res)
			} else {
				c.Redirect(http.StatusFound, auth.LoginPath+"?error=config")
			}
		default:
			h.logger.Error("Login failed", zap.Error(err))
			res := constant.INTERNAL_SERVER_ERROR
			c.JSON(res.Ec, res)
		}
		return
	}

	auth.SetIdentityCookie(c, token, h.secureCookies)

	target := sanitizeCallback(c.Query("callbackUrl"))
	if wantsJSON(c) {
		c.JSON(http.StatusOK, response.ResponseData{
			Ec:   http.StatusOK,
			Msg:  "Logged in",
			Data: gin.H{"redirect": target},
		})
		return
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) loginFailure(c *gin.Context, res response.ResponseData, detail string) {
	if wantsJSON(c) {
		res.Error = detail
		c.JSON(res.Ec, res)
		return
	}
	target := auth.LoginPath + "?error=invalid"
	if cb := c.Query("callbackUrl"); cb != "" {
		target += "&callbackUrl=" + url.QueryEscape(sanitizeCallback(cb))
	}
	c.Redirect(http.StatusFound, target)
}

// Signup godoc
//
//	@Summary	Register a new admin user
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		details	body		request.SignupRequest	true	"Registration details"
//	@Success	201		{object}	response.ResponseData
//	@Failure	400		{object}	response.FieldErrors
//	@Router		/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var body request.SignupRequest
	if err := c.ShouldBind(&body); err != nil {
		h.signupFailure(c, map[string][]string{"form": {err.Error()}})
		return
	}
	if err := validation.Struct(body); err != nil {
		h.signupFailure(c, fieldErrorMap(err))
		return
	}

	err := h.auth.Signup(c.Request.Context(), body.Name, body.Email, body.Password, body.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			h.signupFailure(c, map[string][]string{"confirmPassword": {err.Error()}})
		case errors.Is(err, service.ErrEmailTaken):
			h.signupFailure(c, map[string][]string{"email": {err.Error()}})
		default:
			h.logger.Error("Signup failed", zap.Error(err))
			res := constant.INTERNAL_SERVER_ERROR
			c.JSON(res.Ec, res)
		}
		return
	}

	// Registration never logs the user in; the login form is next.
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, response.ResponseData{
			Ec:   http.StatusCreated,
			Msg:  "Account created. Please log in.",
			Data: gin.H{"redirect": auth.LoginPath + "?signup=success"},
		})
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath+"?signup=success")
}

func (h *AuthHandler) signupFailure(c *gin.Context, fields map[string][]string) {
	if wantsJSON(c) {
		c.JSON(http.StatusBadRequest, response.FieldErrors{
			Ec:     http.StatusBadRequest,
			Msg:    "Invalid registration details",
			Errors: fields,
		})
		return
	}
	c.Redirect(http.StatusFound, auth.SignupPath+"?error=invalid")
}

// Logout clears the identity cookie. The token itself stays valid until
// expiry; only the browser's copy is discarded.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearIdentityCookie(c, h.secureCookies)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Msg: "Logged out"})
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

// LoginPage serves the minimal login form. Query flags from the gate
// and from failed submissions surface as banners.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	banner := ""
	switch c.Query("error") {
	case "config":
		banner = "<p class=\"error\">Server is not configured for sign-in. Contact the administrator.</p>"
	case "invalid":
		banner = "<p class=\"error\">Invalid email or password.</p>"
	}
	if c.Query("signup") == "success" {
		banner = "<p class=\"ok\">Account created. Please log in.</p>"
	}

	action := auth.LoginPath
	if cb := c.Query("callbackUrl"); cb != "" {
		action += "?callbackUrl=" + url.QueryEscape(sanitizeCallback(cb))
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(loginPageHTML, banner, action)))
}

// SignupPage serves the minimal registration form.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	banner := ""
	if c.Query("error") == "invalid" {
		banner = "<p class=\"error\">Invalid registration details.</p>"
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(signupPageHTML, banner)))
}

func fieldErrorMap(err error) map[string][]string {
	fields := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["form"] = []string{err.Error()}
		return fields
	}
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		fields[name] = append(fields[name], fmt.Sprintf("failed on the %q rule", fe.Tag()))
	}
	return fields
}

const loginPageHTML = `<!DOCTYPE html>
<html>
<head><title>Admin Login</title></head>
<body>
%s
<form method="post" action="%s">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Log in</button>
</form>
<p><a href="/signup">Create an account</a></p>
</body>
</html>`

const signupPageHTML = `<!DOCTYPE html>
<html>
<head><title>Create Account</title></head>
<body>
%s
<form method="post" action="/signup">
  <label>Name <input type="text" name="name" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <label>Confirm Password <input type="password" name="confirmPassword" required></label>
  <button type="submit">Sign up</button>
</form>
</body>
</html>`
