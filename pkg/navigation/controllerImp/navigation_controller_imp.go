package controllerImp

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BorromeoLara/INVE/pkg/middleware"
	"github.com/BorromeoLara/INVE/pkg/navigation"
	"github.com/BorromeoLara/INVE/pkg/navigation/controller"
	"github.com/BorromeoLara/INVE/pkg/render"
	"github.com/BorromeoLara/INVE/pkg/session"
	"github.com/BorromeoLara/INVE/pkg/view"
)

type NavCtrl struct {
	sessions *session.Manager
	screens  view.Composer
}

var _ controller.NavigationController = (*NavCtrl)(nil)

func New(sessions *session.Manager, screens view.Composer) *NavCtrl {
	return &NavCtrl{sessions: sessions, screens: screens}
}

type stateResp struct {
	State navigation.State `json:"state"`
	Error string           `json:"error,omitempty"`
}

func (h *NavCtrl) State(c echo.Context) error {
	st, err := h.sessions.Current(c.Request().Context(), middleware.SessionID(c))
	return h.reply(c, st, err)
}

func (h *NavCtrl) SelectSite(c echo.Context) error {
	id := c.Param("id")
	st, err := h.sessions.Do(c.Request().Context(), middleware.SessionID(c), func(m *navigation.Machine) error {
		return m.SelectSite(id)
	})
	return h.reply(c, st, err)
}

func (h *NavCtrl) SelectView(c echo.Context) error {
	v, err := navigation.ParseView(c.Param("view"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	st, err := h.sessions.Do(c.Request().Context(), middleware.SessionID(c), func(m *navigation.Machine) error {
		return m.SelectView(v)
	})
	return h.reply(c, st, err)
}

func (h *NavCtrl) Roster(c echo.Context) error {
	st, err := h.sessions.Do(c.Request().Context(), middleware.SessionID(c), func(m *navigation.Machine) error {
		m.ReturnToRoster()
		return nil
	})
	return h.reply(c, st, err)
}

func (h *NavCtrl) Screen(c echo.Context) error {
	st, err := h.sessions.Current(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return h.reply(c, st, err)
	}
	return c.JSON(http.StatusOK, h.screens.Screen(st))
}

func (h *NavCtrl) ScreenHTML(c echo.Context) error {
	st, err := h.sessions.Current(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return h.reply(c, st, err)
	}
	var buf bytes.Buffer
	if err := render.HTML(&buf, h.screens.Screen(st)); err != nil {
		log.Printf("[nav] render: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "render failed"})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// reply maps navigation errors onto status codes. Forms posted from the HTML
// page (return=html) are always sent back to it: a rejected transition leaves
// the state unchanged, so the page simply shows the same screen again.
func (h *NavCtrl) reply(c echo.Context, st navigation.State, err error) error {
	var nf *navigation.SiteNotFoundError
	var it *navigation.InvalidTransitionError
	recoverable := errors.As(err, &nf) || errors.As(err, &it)
	if c.FormValue("return") == "html" && (err == nil || recoverable) {
		if err != nil {
			log.Printf("[nav] session %s: %v", middleware.SessionID(c), err)
		}
		return c.Redirect(http.StatusSeeOther, "/screen.html")
	}
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, stateResp{State: st})
	case nf != nil:
		return c.JSON(http.StatusNotFound, stateResp{State: st, Error: err.Error()})
	case it != nil:
		return c.JSON(http.StatusConflict, stateResp{State: st, Error: err.Error()})
	default:
		log.Printf("[nav] session %s: %v", middleware.SessionID(c), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session store unavailable"})
	}
}
