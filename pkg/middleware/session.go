package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "INVE_SID"
	SessionHeader = "X-Inve-Session"
	sessionKey    = "sid"
)

// Session makes sure every request carries a session id. Browsers get it as a
// cookie; API clients may send it in X-Inve-Session instead. Anything that is
// not a UUID is replaced with a fresh one.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := c.Request().Header.Get(SessionHeader)
			if sid == "" {
				if ck, err := c.Cookie(SessionCookie); err == nil {
					sid = ck.Value
				}
			}
			if _, err := uuid.Parse(sid); err != nil {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Response().Header().Set(SessionHeader, sid)
			c.Set(sessionKey, sid)
			return next(c)
		}
	}
}

// SessionID returns the id set by Session, or "" outside of it.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionKey).(string)
	return sid
}
