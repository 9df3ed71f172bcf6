package render

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/BorromeoLara/INVE/entities"
)

const SRID = 4326

// SitePoint is the site location as a WGS84 point (x = lon, y = lat).
func SitePoint(s *entities.Site) *geom.Point {
	c := s.Coordinates()
	p := geom.NewPointFlat(geom.XY, []float64{c.Lon, c.Lat})
	p.SetSRID(SRID)
	return p
}

func siteFeature(s *entities.Site) (*geojson.Feature, error) {
	p := SitePoint(s)
	w, err := wkt.Marshal(p)
	if err != nil {
		return nil, err
	}
	return &geojson.Feature{
		ID:       s.ID(),
		Geometry: p,
		Properties: map[string]interface{}{
			"name":         s.Name(),
			"location":     s.Location(),
			"crop_type":    s.CropType(),
			"seed_variety": s.SeedVariety(),
			"wkt":          w,
		},
	}, nil
}

func SiteFeature(s *entities.Site) ([]byte, error) {
	f, err := siteFeature(s)
	if err != nil {
		return nil, err
	}
	return f.MarshalJSON()
}

// SitesCollection puts every site on one map, in roster order.
func SitesCollection(sites []*entities.Site) ([]byte, error) {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(sites))}
	for _, s := range sites {
		f, err := siteFeature(s)
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, f)
	}
	return fc.MarshalJSON()
}
