package sankey

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/transition"
)

// pageTmpl is a self-contained plotly document. The flow library is loaded
// from a CDN reference; node positions are pinned (arrangement "fixed") so
// the layout computed here survives rendering.
var pageTmpl = template.Must(template.New("sankey").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
</head>
<body>
<div id="sankey"></div>
<script>
var data = [{
  type: "sankey",
  arrangement: "fixed",
  node: {
    pad: 30,
    thickness: 26,
    line: {color: "rgba(0,0,0,0.25)", width: 0.6},
    label: {{.Labels}},
    color: {{.NodeColors}},
    x: {{.X}},
    y: {{.Y}},
    hovertemplate: "%{label}<extra></extra>"
  },
  link: {
    source: {{.Sources}},
    target: {{.Targets}},
    value: {{.Values}},
    color: {{.LinkColors}},
    customdata: {{.Custom}},
    hovertemplate: "From %{customdata[0]} → %{customdata[1]}: %{customdata[2]} students<extra></extra>"
  }
}];
var layout = {
  title: {text: {{.Title}}},
  font: {size: 13},
  height: 650,
  margin: {l: 30, r: 30, t: 60, b: 30}
};
Plotly.newPlot("sankey", data, layout);
</script>
</body>
</html>
`))

type pageData struct {
	Title      string
	Labels     []string
	NodeColors []string
	X          []float64
	Y          []float64
	Sources    []int
	Targets    []int
	Values     []int
	LinkColors []string
	Custom     [][]interface{}
}

// RenderHTML writes the diagram as an interactive HTML page.
func (d *Diagram) RenderHTML(w io.Writer) error {
	data := pageData{Title: d.Title}
	for _, n := range d.Nodes {
		data.Labels = append(data.Labels, n.Display)
		data.NodeColors = append(data.NodeColors, n.Color)
		data.X = append(data.X, n.X)
		data.Y = append(data.Y, n.Y)
	}
	for _, l := range d.Links {
		data.Sources = append(data.Sources, l.Source)
		data.Targets = append(data.Targets, l.Target)
		data.Values = append(data.Values, l.Count)
		data.Custom = append(data.Custom, []interface{}{
			d.Nodes[l.Source].Label, d.Nodes[l.Target].Label, l.Count,
		})
		data.LinkColors = append(data.LinkColors, l.Color)
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render sankey: %w", err)
	}
	return nil
}

// WriteCountsCSV writes the aggregated edge table as source,target,count.
func WriteCountsCSV(edges []transition.Edge, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "count"}); err != nil {
		return err
	}
	for _, e := range edges {
		if err := cw.Write([]string{e.Source, e.Target, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
