package linsys

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GrowthProfile records how fast a rule set grows a given axiom: the
// length of every generation up to a sampled horizon.
type GrowthProfile struct {
	Axiom   string
	Lengths []int
}

// AnalyseGrowth samples up to generations+1 elements of the generation
// sequence for axiom and records their lengths. Systems that hit a fixed
// point early produce a shorter profile.
func (rs *RuleSet) AnalyseGrowth(axiom string, generations int) GrowthProfile {
	profile := GrowthProfile{Axiom: axiom, Lengths: make([]int, 0, generations+1)}
	gen := rs.Generations(axiom)
	for i := 0; i <= generations; i++ {
		current, ok := gen.Next()
		if !ok {
			break
		}
		profile.Lengths = append(profile.Lengths, len([]rune(current)))
	}
	return profile
}

// GrowthRates returns the length ratio between each pair of successive
// generations, or nil when fewer than two were sampled.
func (p GrowthProfile) GrowthRates() []float64 {
	if len(p.Lengths) < 2 {
		return nil
	}
	rates := make([]float64, len(p.Lengths)-1)
	for i := 1; i < len(p.Lengths); i++ {
		rates[i-1] = float64(p.Lengths[i]) / float64(p.Lengths[i-1])
	}
	return rates
}

// RenderChart writes the profile as a bar chart of string length per
// generation.
func (p GrowthProfile) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Generation Growth",
		Subtitle: "String length per generation for axiom " + strconv.Quote(p.Axiom) + " over " + strconv.Itoa(len(p.Lengths)) + " generations",
	}))

	barItems := make([]opts.BarData, len(p.Lengths))
	labels := make([]string, len(p.Lengths))
	for i, length := range p.Lengths {
		barItems[i] = opts.BarData{Value: length}
		labels[i] = strconv.Itoa(i)
	}

	bar.SetXAxis(labels).AddSeries("length", barItems)
	return bar.Render(w)
}

// HandleGrowthChart serves the profile chart over HTTP.
func (p GrowthProfile) HandleGrowthChart(w http.ResponseWriter, _ *http.Request) {
	if err := p.RenderChart(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
