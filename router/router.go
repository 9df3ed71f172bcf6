package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BorromeoLara/INVE/pkg/middleware"
	navCtrl "github.com/BorromeoLara/INVE/pkg/navigation/controller"
	siteCtrl "github.com/BorromeoLara/INVE/pkg/site/controller"
)

func New(
	e *echo.Echo,
	sites siteCtrl.SiteController,
	nav navCtrl.NavigationController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.GET("/sites", sites.List)
	e.GET("/sites.geojson", sites.MapAll)
	e.GET("/sites/:id", sites.Get)
	e.GET("/sites/:id/series/:kind", sites.Series) // :kind may end in .png
	e.GET("/sites/:id/map.geojson", sites.Map)

	// navigation is per session
	api := e.Group("", middleware.Session())
	api.GET("/", func(c echo.Context) error { return c.Redirect(http.StatusFound, "/screen.html") })
	api.GET("/nav", nav.State)
	api.POST("/nav/sites/:id", nav.SelectSite)
	api.POST("/nav/views/:view", nav.SelectView)
	api.POST("/nav/roster", nav.Roster)
	api.GET("/screen", nav.Screen)
	api.GET("/screen.html", nav.ScreenHTML)
	return e
}
