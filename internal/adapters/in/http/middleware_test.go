package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(t *testing.T) *auth.TokenService {
	t.Helper()

	tokens, err := auth.NewTokenService("test-secret-test-secret-test1234", "catering-test")
	require.NoError(t, err)

	return tokens
}

func issueTestToken(t *testing.T, tokens *auth.TokenService, r role.Role) (string, auth.Principal) {
	t.Helper()

	principal, err := auth.NewPrincipal(kernel.NewUUID(), "user@example.com", r)
	require.NoError(t, err)

	token, err := tokens.Issue(principal, auth.StaffTokenTTL)
	require.NoError(t, err)

	return token, principal
}

func runSessionMiddleware(t *testing.T, tokens *auth.TokenService, req *http.Request) echo.Context {
	t.Helper()

	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(echo.Context) error { return nil }
	require.NoError(t, sessionMiddleware(tokens)(next)(c))

	return c
}

func Test_SessionMiddleware_ResolvesCookieToken(t *testing.T) {
	tokens := testTokenService(t)
	token, principal := issueTestToken(t, tokens, role.Admin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})

	c := runSessionMiddleware(t, tokens, req)

	resolved, err := principalFrom(c)
	require.NoError(t, err)
	assert.Equal(t, principal, resolved)
}

func Test_SessionMiddleware_ResolvesBearerToken(t *testing.T) {
	tokens := testTokenService(t)
	token, principal := issueTestToken(t, tokens, role.Courier)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	c := runSessionMiddleware(t, tokens, req)

	resolved, err := principalFrom(c)
	require.NoError(t, err)
	assert.Equal(t, principal, resolved)
}

func Test_SessionMiddleware_CookieWinsOverHeader(t *testing.T) {
	tokens := testTokenService(t)
	cookieToken, cookiePrincipal := issueTestToken(t, tokens, role.Owner)
	headerToken, _ := issueTestToken(t, tokens, role.Customer)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookieToken})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+headerToken)

	c := runSessionMiddleware(t, tokens, req)

	resolved, err := principalFrom(c)
	require.NoError(t, err)
	assert.Equal(t, cookiePrincipal, resolved)
}

func Test_SessionMiddleware_InvalidTokenLeavesRequestAnonymous(t *testing.T) {
	tokens := testTokenService(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-token"})

	c := runSessionMiddleware(t, tokens, req)

	_, err := principalFrom(c)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func Test_SessionMiddleware_TokenFromAnotherSecretIsRejected(t *testing.T) {
	tokens := testTokenService(t)

	otherTokens, err := auth.NewTokenService("other-secret-other-secret-other1", "catering-test")
	require.NoError(t, err)
	foreignToken, _ := issueTestToken(t, otherTokens, role.Admin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: foreignToken})

	c := runSessionMiddleware(t, tokens, req)

	_, err = principalFrom(c)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func Test_PrincipalFrom_NoSession(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := principalFrom(c)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func Test_SetSessionCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	setSessionCookie(c, "session-token", 3600)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "session-token", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}
