package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/constant"
	"github.com/rajit909/portfolio-api/internal/model"
)

// CookieName is the identity cookie carrying the signed token.
const CookieName = "auth_token"

const cookieMaxAge = 24 * 60 * 60 // seconds, matches the token TTL

// SetIdentityCookie attaches the signed token to the response.
// HTTP-only, lax same-site, path /, secure outside development.
func SetIdentityCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, cookieMaxAge, "/", "", secure, true)
}

// ClearIdentityCookie expires the identity cookie by overwriting it
// with an empty value and a negative max-age.
func ClearIdentityCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// CurrentIdentity re-derives the request identity for render-time use:
// preferred source is the gin context set by the gate, fallback is a
// fresh verification of the cookie. Returns nil rather than failing —
// the gate, not this helper, is authoritative on reachability.
func CurrentIdentity(c *gin.Context, verifier *Verifier) *model.Identity {
	if v, ok := c.Get(constant.IdentityKey); ok {
		if identity, ok := v.(*model.Identity); ok {
			return identity
		}
	}

	if verifier == nil {
		return nil
	}
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	identity, ok := verifier.Verify(raw)
	if !ok {
		return nil
	}
	return identity
}
