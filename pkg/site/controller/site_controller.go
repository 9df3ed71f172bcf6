package controller

import "github.com/labstack/echo/v4"

type SiteController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Series(c echo.Context) error
	Map(c echo.Context) error
	MapAll(c echo.Context) error
}
