package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTestToken(t *testing.T) string {
	t.Helper()
	issuer, err := NewIssuer(testSecret, DefaultTokenTTL)
	require.NoError(t, err)
	tok, err := issuer.Issue("user-1", "Jamie", "jamie@example.com")
	require.NoError(t, err)
	return tok
}

func TestGateProtectedWithoutToken(t *testing.T) {
	gate := NewGate(NewVerifier(testSecret))

	decision, identity := gate.Decide("/admin", "")
	assert.Equal(t, ClearCookieAndRedirect, decision.Kind)
	assert.Equal(t, "/login?callbackUrl=%2Fadmin", decision.Location)
	assert.Nil(t, identity)
}

func TestGateProtectedWithInvalidToken(t *testing.T) {
	gate := NewGate(NewVerifier(testSecret))

	decision, identity := gate.Decide("/admin/blog", "garbage-token")
	assert.Equal(t, ClearCookieAndRedirect, decision.Kind)
	assert.Equal(t, "/login?callbackUrl=%2Fadmin%2Fblog", decision.Location)
	assert.Nil(t, identity)
}

func TestGateProtectedWithValidToken(t *testing.T) {
	gate := NewGate(NewVerifier(testSecret))

	decision, identity := gate.Decide("/admin/projects", issueTestToken(t))
	assert.Equal(t, Allow, decision.Kind)
	require.NotNil(t, identity)
	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "Jamie", identity.Name)
	assert.Equal(t, "jamie@example.com", identity.Email)
}

func TestGateEntryRouteWithValidTokenRedirectsToAdmin(t *testing.T) {
	gate := NewGate(NewVerifier(testSecret))
	tok := issueTestToken(t)

	for _, path := range []string{"/login", "/signup"} {
		decision, identity := gate.Decide(path, tok)
		assert.Equal(t, Redirect, decision.Kind, path)
		assert.Equal(t, "/admin", decision.Location, path)
		assert.Nil(t, identity)
	}

	// Convergence: the redirect target itself is allowed, so repeating
	// requests settle rather than oscillate.
	decision, identity := gate.Decide("/admin", tok)
	assert.Equal(t, Allow, decision.Kind)
	assert.NotNil(t, identity)
}

func TestGateEntryRouteWithoutTokenPassesThrough(t *testing.T) {
	gate := NewGate(NewVerifier(testSecret))

	decision, identity := gate.Decide("/login", "")
	assert.Equal(t, Allow, decision.Kind)
	assert.Nil(t, identity)
}

func TestGatePublicRoutesUnaffected(t *testing.T) {
	gate := NewGate(NewVerifier(testSecret))
	tok := issueTestToken(t)

	for _, raw := range []string{"", "garbage", tok} {
		decision, identity := gate.Decide("/api/posts", raw)
		assert.Equal(t, Allow, decision.Kind)
		assert.Nil(t, identity)
	}
}

func TestGateMissingSecretFailsClosed(t *testing.T) {
	gate := NewGate(NewVerifier(nil))

	decision, identity := gate.Decide("/admin", issueTestToken(t))
	assert.Equal(t, ClearCookieAndRedirect, decision.Kind)
	assert.Equal(t, "/login?error=config", decision.Location)
	assert.Nil(t, identity)

	// Non-protected routes still pass through in the locked-down state.
	decision, _ = gate.Decide("/api/posts", "")
	assert.Equal(t, Allow, decision.Kind)
}

func TestGatePathClassification(t *testing.T) {
	assert.True(t, isProtected("/admin"))
	assert.True(t, isProtected("/admin/blog/some-slug/edit"))
	assert.False(t, isProtected("/administrator")) // prefix must match a path segment
	assert.True(t, isAuthEntry("/login"))
	assert.True(t, isAuthEntry("/signup"))
	assert.False(t, isAuthEntry("/logout"))
}
