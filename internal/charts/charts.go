// Package charts renders dashboard PNGs with go-chart. Rendering is pure:
// records in, image bytes out.
package charts

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ly2xxx/gco/internal/models"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// The dashboard's colors: plotly blue for lines, sea green for bars.
var (
	colorLine = drawing.ColorFromHex("1f77b4")
	colorBar  = drawing.ColorFromHex("2e8b57")
	colorPar  = drawing.ColorFromHex("999999")
	colorText = drawing.ColorFromHex("333333")
)

// TODO: bundle a CJK-capable font; the default go-chart font renders the
// Chinese player and cup names in titles and axis labels as placeholder
// boxes.

// TrendChart plots one player's net score across their games in playing
// order, with a dashed line at par. Fewer than two games cannot make a line,
// so those render as a placeholder image.
func TrendChart(player string, points []models.TrendPoint) ([]byte, error) {
	if len(points) < 2 {
		return renderNoData(fmt.Sprintf("Not enough games to chart %s", player))
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	parValues := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))

	for i, p := range points {
		xValues[i] = float64(i + 1)
		yValues[i] = float64(p.NetScore)
		ticks[i] = chart.Tick{Value: float64(i + 1), Label: p.Game}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - Performance Trend", player),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{FontColor: colorText},
		},
		YAxis: chart.YAxis{
			Name:  "Net Score",
			Style: chart.Style{FontColor: colorText},
			Range: paddedRange(yValues),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Net Score",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: colorLine,
					StrokeWidth: 3,
					DotWidth:    4,
					DotColor:    colorLine,
				},
			},
			chart.ContinuousSeries{
				Name:    "Par",
				XValues: xValues,
				YValues: parValues,
				Style: chart.Style{
					StrokeColor:     colorPar,
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}

	return render(graph.Render)
}

// LeaderboardChart draws total net score bars for the top ten of a
// tournament leaderboard, keeping the board's own order.
func LeaderboardChart(tournament string, entries []models.LeaderboardEntry) ([]byte, error) {
	if len(entries) == 0 {
		return renderNoData(fmt.Sprintf("No games played in %s yet", tournament))
	}
	if len(entries) > 10 {
		entries = entries[:10]
	}

	bars := make([]chart.Value, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{
			Value: float64(e.TotalScore),
			Label: e.Player,
			Style: chart.Style{FillColor: colorBar, StrokeColor: colorBar},
		}
		values[i] = float64(e.TotalScore)
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s - Total Net Score", tournament),
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: colorText},
			Range: paddedRange(values),
		},
		Bars: bars,
	}

	return render(graph.Render)
}

// ComparisonChart draws average net score bars for the compared players.
// The JSON comparison carries the full table; the chart shows the headline
// number side by side.
func ComparisonChart(comparisons []models.PlayerComparison) ([]byte, error) {
	if len(comparisons) == 0 {
		return renderNoData("No players to compare")
	}

	bars := make([]chart.Value, len(comparisons))
	values := make([]float64, len(comparisons))
	for i, c := range comparisons {
		bars[i] = chart.Value{
			Value: c.AvgNetScore,
			Label: c.Player,
			Style: chart.Style{FillColor: colorLine, StrokeColor: colorLine},
		}
		values[i] = c.AvgNetScore
	}

	graph := chart.BarChart{
		Title:    "Average Net Score",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: colorText},
			Range: paddedRange(values),
		},
		Bars: bars,
	}

	return render(graph.Render)
}

// paddedRange gives the y-axis breathing room and keeps the renderer away
// from the degenerate zero-width range it refuses to draw.
func paddedRange(values []float64) *chart.ContinuousRange {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	// Always include par so scores keep their sign visually.
	if min > 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}

// renderNoData draws a small placeholder image with a centered message. The
// renderer refuses charts without a series and hidden series are excluded
// from range computation, so it gets a transparent one.
func renderNoData(msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:  400,
		Height: 200,
		XAxis:  chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis:  chart.YAxis{Style: chart.Style{Hidden: true}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(colorText)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	return render(graph.Render)
}

func render(fn func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	buffer := bytes.NewBuffer([]byte{})
	if err := fn(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buffer.Bytes(), nil
}
