package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/BorromeoLara/INVE/pkg/series"
)

// ErrEmptySeries is returned instead of drawing an empty chart; callers show
// a "no data" placeholder.
var ErrEmptySeries = errors.New("series has no points")

const maxTicks = 10

// SeriesPNG draws s as a line chart. Points are plotted by position so two
// readings on the same day stay two points.
func SeriesPNG(w io.Writer, s series.Series, width, height int) error {
	if s.Empty() {
		return ErrEmptySeries
	}

	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
	}
	lo, hi := yRange(ys)

	graph := chart.Chart{
		Title: fmt.Sprintf("%s (%s)", s.Title, s.Unit),
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 8, TextRotationDegrees: 45},
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(xs)) - 0.5},
			Ticks: ticks(s.Points),
		},
		YAxis: chart.YAxis{
			Name:      s.Unit,
			NameStyle: chart.Style{FontSize: 10},
			Style:     chart.Style{FontSize: 9},
			Range:     &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: s.Title,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 46, G: 125, B: 50, A: 255},
					StrokeWidth: 2,
					DotColor:    drawing.Color{R: 46, G: 125, B: 50, A: 255},
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %s chart: %w", s.Kind, err)
	}
	return nil
}

// yRange pads the data range by 10% and never returns a zero-width range.
func yRange(ys []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range ys {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return lo - pad, hi + pad
}

func ticks(pts []series.Point) []chart.Tick {
	step := 1
	if len(pts) > maxTicks {
		step = (len(pts) + maxTicks - 1) / maxTicks
	}
	out := make([]chart.Tick, 0, maxTicks+1)
	for i := 0; i < len(pts); i += step {
		out = append(out, chart.Tick{Value: float64(i), Label: pts[i].Label})
	}
	return out
}
