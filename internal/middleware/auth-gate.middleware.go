package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/internal/auth"
	"github.com/rajit909/portfolio-api/internal/constant"
	"go.uber.org/zap"
)

// AuthGate applies the gate's decision for every request: redirects on
// auth-entry/protected policy violations, clears the identity cookie
// where required, and propagates the verified identity into the gin
// context and request headers for downstream handlers.
func AuthGate(gate *auth.Gate, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Identity headers are owned by the gate; client-supplied
		// values never pass through, on any route.
		c.Request.Header.Del(constant.HeaderUserID)
		c.Request.Header.Del(constant.HeaderUserName)
		c.Request.Header.Del(constant.HeaderUserEmail)

		rawToken, _ := c.Cookie(auth.CookieName)

		decision, identity := gate.Decide(c.Request.URL.Path, rawToken)

		switch decision.Kind {
		case auth.ClearCookieAndRedirect:
			auth.ClearIdentityCookie(c, secureCookies)
			zap.L().Debug("Gate denied request",
				zap.String("path", c.Request.URL.Path),
				zap.String("redirect", decision.Location))
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
			return
		case auth.Redirect:
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
			return
		}

		if identity != nil {
			c.Set(constant.IdentityKey, identity)
			c.Request.Header.Set(constant.HeaderUserID, identity.ID)
			c.Request.Header.Set(constant.HeaderUserName, identity.Name)
			c.Request.Header.Set(constant.HeaderUserEmail, identity.Email)
		}

		c.Next()
	}
}
