// Package charts renders the dashboard's proportional charts as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// minLabelShare is the slice share below which the segment label is
// suppressed; tiny slices have no room to render text legibly.
const minLabelShare = 0.03

// Slice is one chart segment before percentage labeling.
type Slice struct {
	Label string
	Value float64
}

// FromCounts converts a category frequency map into slices sorted by label.
func FromCounts(counts map[string]int) []Slice {
	slices := make([]Slice, 0, len(counts))
	for label, count := range counts {
		slices = append(slices, Slice{Label: label, Value: float64(count)})
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Label < slices[j].Label })
	return slices
}

// Pie renders the slices as a PNG pie chart. Each segment is labeled with
// its category and percentage share, except segments below minLabelShare.
// An empty input renders a single blank segment rather than failing, so
// empty filter results still produce a chart.
func Pie(title string, slices []Slice) ([]byte, error) {
	pie := chart.PieChart{
		Title:  title,
		Width:  512,
		Height: 512,
		Values: pieValues(slices),
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

func pieValues(slices []Slice) []chart.Value {
	var total float64
	for _, s := range slices {
		total += s.Value
	}

	if len(slices) == 0 || total == 0 {
		// go-chart refuses to render an empty value set.
		return []chart.Value{{Value: 1, Label: ""}}
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		share := s.Value / total
		label := fmt.Sprintf("%s (%.1f%%)", s.Label, share*100)
		if share < minLabelShare {
			label = ""
		}
		values = append(values, chart.Value{Value: s.Value, Label: label})
	}
	return values
}
