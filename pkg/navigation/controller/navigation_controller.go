package controller

import "github.com/labstack/echo/v4"

type NavigationController interface {
	State(c echo.Context) error
	SelectSite(c echo.Context) error
	SelectView(c echo.Context) error
	Roster(c echo.Context) error
	Screen(c echo.Context) error
	ScreenHTML(c echo.Context) error
}
