package controllerImp

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BorromeoLara/INVE/pkg/render"
	"github.com/BorromeoLara/INVE/pkg/series"
	"github.com/BorromeoLara/INVE/pkg/site/controller"
	"github.com/BorromeoLara/INVE/pkg/site/repository"
	"github.com/BorromeoLara/INVE/pkg/view"
)

const mimeGeoJSON = "application/geo+json"

type SiteCtrl struct {
	repo          repository.SiteRepository
	width, height int
}

var _ controller.SiteController = (*SiteCtrl)(nil)

func New(repo repository.SiteRepository, chartWidth, chartHeight int) *SiteCtrl {
	return &SiteCtrl{repo: repo, width: chartWidth, height: chartHeight}
}

func (h *SiteCtrl) List(c echo.Context) error {
	sites := h.repo.ListAll()
	out := make([]view.SiteSummary, 0, len(sites))
	for _, s := range sites {
		out = append(out, view.Summarize(s))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SiteCtrl) Get(c echo.Context) error {
	s, ok := h.repo.Find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "site not found"})
	}
	return c.JSON(http.StatusOK, s)
}

// Series serves /sites/:id/series/:kind as JSON, or as a PNG chart when the
// kind carries a .png suffix.
func (h *SiteCtrl) Series(c echo.Context) error {
	raw := c.Param("kind")
	png := strings.HasSuffix(raw, ".png")
	kind, ok := series.ParseKind(strings.TrimSuffix(raw, ".png"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown series " + raw})
	}
	s, ok := h.repo.Find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "site not found"})
	}
	sr, _ := series.Of(s, kind)
	if !png {
		return c.JSON(http.StatusOK, sr)
	}

	var buf bytes.Buffer
	if err := render.SeriesPNG(&buf, sr, h.width, h.height); err != nil {
		if errors.Is(err, render.ErrEmptySeries) {
			return c.NoContent(http.StatusNoContent)
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (h *SiteCtrl) Map(c echo.Context) error {
	s, ok := h.repo.Find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "site not found"})
	}
	b, err := render.SiteFeature(s)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, mimeGeoJSON, b)
}

func (h *SiteCtrl) MapAll(c echo.Context) error {
	b, err := render.SitesCollection(h.repo.ListAll())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, mimeGeoJSON, b)
}
