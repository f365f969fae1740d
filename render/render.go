package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/mapgraph/mapper"
)

// Ramp interpolates stops hex colors between lowHex and highHex in Lab
// space, which keeps the gradient perceptually even.
//
// Errors: ErrRampStops for stops < 2, or a wrapped parse error for a
// malformed hex color.
func Ramp(lowHex, highHex string, stops int) ([]string, error) {
	if stops < 2 {
		return nil, fmt.Errorf("render: %d stops: %w", stops, ErrRampStops)
	}
	lo, err := colorful.Hex(lowHex)
	if err != nil {
		return nil, fmt.Errorf("render: low ramp color %q: %w", lowHex, err)
	}
	hi, err := colorful.Hex(highHex)
	if err != nil {
		return nil, fmt.Errorf("render: high ramp color %q: %w", highHex, err)
	}

	out := make([]string, stops)
	for i := range out {
		t := float64(i) / float64(stops-1)
		out[i] = lo.BlendLab(hi, t).Clamped().Hex()
	}
	return out, nil
}

// defaultRamp builds the package ramp; the endpoints are compile-time
// constants, so the parse cannot fail.
func defaultRamp() []string {
	ramp, _ := Ramp(defaultRampLow, defaultRampHigh, defaultRampStops)
	return ramp
}

// HTML builds the force-directed chart for the assembled graph.
//
// Per graph node, the chart gets one named node whose symbol size grows with
// the member count, whose value is the node's color statistic, and whose
// tooltip lists the member records through the supplied per-record tooltip
// strings. Per graph edge, one link weighted by the shared-member count. The
// continuous visual map spans the observed color statistics over the ramp.
//
// Errors: ErrNilGraph, ErrTooltipLength when a member index has no tooltip.
func HTML(g *mapper.Graph, tooltips []string, o Options) (*charts.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, node := range g.Nodes {
		for _, rec := range node.Members {
			if rec < 0 || rec >= len(tooltips) {
				return nil, fmt.Errorf("render: member %d with %d tooltips: %w",
					rec, len(tooltips), ErrTooltipLength)
			}
		}
	}

	ramp := o.Ramp
	if len(ramp) == 0 {
		ramp = defaultRamp()
	}

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: subtitle(o),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithVisualMapOpts(visualMap(g, ramp)),
	)

	nodes := make([]opts.GraphNode, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = opts.GraphNode{
			Name:       n.ID,
			Value:      float32(n.Color),
			SymbolSize: float32(baseSymbolSize + perMemberSymbolSize*n.Size()),
			Tooltip:    &opts.Tooltip{Formatter: types.FuncStr(nodeTooltip(n, tooltips))},
		}
	}
	links := make([]opts.GraphLink, len(g.Edges))
	for i, e := range g.Edges {
		links[i] = opts.GraphLink{
			Source: g.Nodes[e.A].ID,
			Target: g.Nodes[e.B].ID,
			Value:  float32(e.Weight),
		}
	}

	chart.AddSeries("mapper", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Force: &opts.GraphForce{
				Repulsion:  forceRepulsion,
				EdgeLength: forceEdgeLength,
			},
			Roam: opts.Bool(true),
		}),
	)
	return chart, nil
}

// Render writes the chart page for the graph to w.
func Render(w io.Writer, g *mapper.Graph, tooltips []string, o Options) error {
	chart, err := HTML(g, tooltips, o)
	if err != nil {
		return err
	}
	return chart.Render(w)
}

// WriteFile renders the page into a file at path.
func WriteFile(path string, g *mapper.Graph, tooltips []string, o Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Render(f, g, tooltips, o); err != nil {
		return err
	}
	return f.Close()
}

// subtitle appends the sorted Meta annotations to the configured subtitle.
func subtitle(o Options) string {
	if len(o.Meta) == 0 {
		return o.Subtitle
	}

	keys := make([]string, 0, len(o.Meta))
	for k := range o.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	if o.Subtitle != "" {
		b.WriteString(o.Subtitle)
	}
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", k, o.Meta[k])
	}
	return b.String()
}

// visualMap spans the observed node color statistics over the ramp.
func visualMap(g *mapper.Graph, ramp []string) opts.VisualMap {
	var lo, hi float64
	if len(g.Nodes) > 0 {
		lo, hi = g.Nodes[0].Color, g.Nodes[0].Color
		for _, n := range g.Nodes[1:] {
			if n.Color < lo {
				lo = n.Color
			}
			if n.Color > hi {
				hi = n.Color
			}
		}
	}
	if hi == lo {
		// A flat statistic would collapse the map; widen a hair so echarts
		// still renders a legend.
		hi = lo + 1
	}
	return opts.VisualMap{
		Calculable: opts.Bool(true),
		Min:        float32(lo),
		Max:        float32(hi),
		InRange:    &opts.VisualMapInRange{Color: ramp},
	}
}

// nodeTooltip renders a node's hover card: header plus one entry per member.
func nodeTooltip(n mapper.Node, tooltips []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>: %d member(s), color %.3f<hr>", n.ID, n.Size(), n.Color)
	for i, rec := range n.Members {
		if i > 0 {
			b.WriteString("<hr>")
		}
		b.WriteString(tooltips[rec])
	}
	return b.String()
}
