package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var seen string
	h := Session()(func(c echo.Context) error {
		seen = SessionID(c)
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestSession_IssuesCookie(t *testing.T) {
	rec, sid := run(t, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(sid)
	require.NoError(t, err)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, sid, cookies[0].Value)
	assert.Equal(t, sid, rec.Header().Get(SessionHeader))
}

func TestSession_KeepsValidCookie(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})

	rec, sid := run(t, req)
	assert.Equal(t, id, sid)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_HeaderWins(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, id)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: uuid.NewString()})

	_, sid := run(t, req)
	assert.Equal(t, id, sid)
}

func TestSession_ReplacesGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "../../etc/passwd"})

	rec, sid := run(t, req)
	assert.NotEqual(t, "../../etc/passwd", sid)
	assert.Len(t, rec.Result().Cookies(), 1)
}
