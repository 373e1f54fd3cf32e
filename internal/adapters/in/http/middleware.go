package http

import (
	"fmt"
	"net/http"
	"strings"

	"catering/internal/core/application/auth"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where the session middleware stores the verified
// principal on the echo context.
const principalContextKey = "principal"

// sessionCookieName is the http-only cookie carrying the session token.
const sessionCookieName = "token"

// sessionMiddleware resolves the session token into a Principal. The cookie
// wins over the Authorization header. Requests without a valid token pass
// through anonymously; each handler decides whether a principal is required.
func sessionMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := sessionToken(c); token != "" {
				if principal, err := tokens.Verify(token); err == nil {
					c.Set(principalContextKey, principal)
				}
			}
			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if bearer, ok := strings.CutPrefix(header, "Bearer "); ok {
		return bearer
	}
	return ""
}

// principalFrom returns the verified principal of the request, or
// ErrUnauthenticated when the request carries no valid session.
func principalFrom(c echo.Context) (auth.Principal, error) {
	principal, ok := c.Get(principalContextKey).(auth.Principal)
	if !ok {
		return auth.Principal{}, fmt.Errorf("%w: no session", errs.ErrUnauthenticated)
	}
	return principal, nil
}

// setSessionCookie attaches the issued token as an http-only cookie so
// browser clients keep their session without handling the header themselves.
func setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
