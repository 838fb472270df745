package auth

import (
	"net/url"
	"strings"

	"github.com/rajit909/portfolio-api/internal/model"
)

// Route classes the gate cares about. Everything else passes through
// untouched regardless of identity state.
const (
	LoginPath  = "/login"
	SignupPath = "/signup"
	AdminPath  = "/admin"
)

type DecisionKind int

const (
	// Allow lets the request proceed, possibly with an identity.
	Allow DecisionKind = iota
	// Redirect short-circuits to Location.
	Redirect
	// ClearCookieAndRedirect additionally expires the identity cookie
	// on the response, so a stale or tampered token cannot cause
	// repeated failed verifications or a redirect loop.
	ClearCookieAndRedirect
)

// Decision is the gate's verdict for one request. The transport layer
// applies it; the gate itself never touches the response.
type Decision struct {
	Kind     DecisionKind
	Location string
}

// Gate applies the route policy: auth-entry routes bounce
// authenticated callers to the admin area, protected routes bounce
// unauthenticated callers to login, and a missing signing secret
// fails closed.
type Gate struct {
	verifier *Verifier
}

func NewGate(verifier *Verifier) *Gate {
	return &Gate{verifier: verifier}
}

// Decide classifies the request path and runs token verification.
// The returned identity is non-nil only for an allowed protected
// request; it was derived from the token in this request cycle and
// must not be cached.
func (g *Gate) Decide(path, rawToken string) (Decision, *model.Identity) {
	if !g.verifier.Configured() {
		// Missing configuration must never be read as "allow access".
		if isProtected(path) {
			return Decision{ClearCookieAndRedirect, LoginPath + "?error=config"}, nil
		}
		return Decision{Kind: Allow}, nil
	}

	identity, verified := g.verifier.Verify(rawToken)

	if isAuthEntry(path) && verified {
		// Never render the login/signup form to an authenticated
		// caller. Redirecting to /admin converges: the next request is
		// a verified protected request and is allowed.
		return Decision{Redirect, AdminPath}, nil
	}

	if isProtected(path) {
		if !verified {
			loc := LoginPath + "?callbackUrl=" + url.QueryEscape(path)
			return Decision{ClearCookieAndRedirect, loc}, nil
		}
		return Decision{Kind: Allow}, identity
	}

	return Decision{Kind: Allow}, nil
}

func isAuthEntry(path string) bool {
	return path == LoginPath || path == SignupPath
}

func isProtected(path string) bool {
	return path == AdminPath || strings.HasPrefix(path, AdminPath+"/")
}
