package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jmaeso/linsys"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	iterations = flag.Int("n", 7, "number of generations to apply")
	system     = flag.String("system", "tree", "l-system to draw (tree or koch)")
	out        = flag.String("out", "trace.html", "output file for the trace chart")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	var (
		rules  map[string]string
		axiom  string
		turtle linsys.Turtle
	)
	switch *system {
	case "tree":
		rules = map[string]string{"1": "11", "0": "1[0]0"}
		axiom = "0"
		turtle = linsys.NewFractalTree()
	case "koch":
		rules = map[string]string{"F": "F+F-F-F+F"}
		axiom = "F"
		turtle = linsys.NewKochCurve()
	default:
		log.Fatalf("unknown system %q", *system)
	}

	rs, err := linsys.NewRuleSet(rules)
	if err != nil {
		log.Fatal(err)
	}

	symbols := rs.ApplyN(axiom, *iterations)
	if err := linsys.Interpret(turtle, symbols); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := renderTrace(f, turtle.Trace()); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d trace points to %s", len(turtle.Trace()), *out)
}

func renderTrace(w io.Writer, trace []linsys.Point) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Turtle Trace"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	data := make([]opts.ScatterData, len(trace))
	for i, p := range trace {
		data[i] = opts.ScatterData{Value: []interface{}{p.X, p.Y}}
	}
	scatter.AddSeries("trace", data)
	return scatter.Render(w)
}
