// Package sankey lays out aggregated transition edges as a flow diagram
// with pinned node positions and renders it as a self-contained HTML page.
package sankey

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/config"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/term"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/transition"
)

// Node is one positioned diagram node. X and Y are fractions of the canvas
// in [0,1]; Color is an rgba() string.
type Node struct {
	Label   string
	Display string
	X       float64
	Y       float64
	Color   string
}

// Link is one weighted edge between node indices.
type Link struct {
	Source int
	Target int
	Count  int
	Color  string
}

// Diagram is a renderable flow diagram.
type Diagram struct {
	Title string
	Nodes []Node
	Links []Link
}

const (
	laneMin = 0.02
	laneMax = 0.98
)

// Layout assigns every node a stable order, column, lane, color, and
// decorated display label. The ordering depends only on the edge set and
// the configured tables, never on map iteration order.
func Layout(edges []transition.Edge, cfg *config.Config) *Diagram {
	labels := orderLabels(edges, cfg)
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	terms := termColumns(labels, cfg)
	outTotals, inTotals := flowTotals(edges)

	nodes := make([]Node, len(labels))
	for i, lbl := range labels {
		nodes[i] = Node{
			Label:   lbl,
			Display: displayLabel(lbl, outTotals, inTotals, cfg),
			X:       nodeX(lbl, terms),
			Y:       nodeY(lbl, cfg),
			Color:   nodeColor(lbl, cfg),
		}
	}

	links := make([]Link, len(edges))
	for i, e := range edges {
		links[i] = Link{
			Source: index[e.Source],
			Target: index[e.Target],
			Count:  e.Count,
			Color:  linkColor(e.Source, cfg),
		}
	}

	return &Diagram{
		Title: "Student Major Transitions (with Entry/Exit)",
		Nodes: nodes,
		Links: links,
	}
}

// orderLabels fixes the node order: Entered first, then each term's nodes
// (terms chronological, programs by priority then code), then the terminal
// buckets (program priority, Current before Exited, then code).
func orderLabels(edges []transition.Edge, cfg *config.Config) []string {
	seen := make(map[string]struct{})
	var all []string
	for _, e := range edges {
		for _, l := range []string{e.Source, e.Target} {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				all = append(all, l)
			}
		}
	}

	terms := termColumns(all, cfg)

	labels := make([]string, 0, len(all))
	labels = append(labels, transition.Entered)

	for _, tc := range terms {
		var termNodes []string
		for _, l := range all {
			if lt, ok := transition.NodeTerm(l); ok && lt == tc {
				termNodes = append(termNodes, l)
			}
		}
		sort.Slice(termNodes, func(i, j int) bool {
			pi, _ := transition.NodeProgram(termNodes[i])
			pj, _ := transition.NodeProgram(termNodes[j])
			if prioOf(pi, cfg) != prioOf(pj, cfg) {
				return prioOf(pi, cfg) < prioOf(pj, cfg)
			}
			return pi < pj
		})
		labels = append(labels, termNodes...)
	}

	var endNodes []string
	for _, l := range all {
		if _, ok := transition.TerminalBucket(l); ok {
			endNodes = append(endNodes, l)
		}
	}
	sort.Slice(endNodes, func(i, j int) bool {
		bi, _ := transition.TerminalBucket(endNodes[i])
		bj, _ := transition.TerminalBucket(endNodes[j])
		pi, _ := transition.NodeProgram(endNodes[i])
		pj, _ := transition.NodeProgram(endNodes[j])
		if prioOf(pi, cfg) != prioOf(pj, cfg) {
			return prioOf(pi, cfg) < prioOf(pj, cfg)
		}
		if bi != bj {
			return bi == transition.BucketCurrent
		}
		return pi < pj
	})
	labels = append(labels, endNodes...)
	return labels
}

const unknownPriority = 99

func prioOf(program string, cfg *config.Config) int {
	if p, ok := cfg.ProgramPriority[program]; ok {
		return p
	}
	return unknownPriority
}

// termColumns collects the distinct term codes present among labels, in
// chronological order.
func termColumns(labels []string, cfg *config.Config) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, l := range labels {
		if tc, ok := transition.NodeTerm(l); ok {
			if _, dup := seen[tc]; !dup {
				seen[tc] = struct{}{}
				terms = append(terms, tc)
			}
		}
	}
	term.SortCodes(terms, cfg.TermRanks)
	return terms
}

// nodeX places Entered at 0, terminals at 1, and the i-th of N term columns
// at i/(N+1).
func nodeX(label string, terms []string) float64 {
	if label == transition.Entered {
		return 0.0
	}
	if _, ok := transition.TerminalBucket(label); ok {
		return 1.0
	}
	tc, ok := transition.NodeTerm(label)
	if !ok {
		return 0.5
	}
	for i, t := range terms {
		if t == tc {
			return float64(i+1) / float64(len(terms)+1)
		}
	}
	return 0.5
}

// nodeY places a term:program node on its program's baseline lane; terminal
// nodes re-base on the configured end lane (if any) and split Current/Exited
// apart by the program's offset override or the default pair. Everything is
// clamped to [laneMin, laneMax].
func nodeY(label string, cfg *config.Config) float64 {
	if label == transition.Entered {
		return 0.5
	}
	prog, _ := transition.NodeProgram(label)
	base, hasLane := cfg.ProgramLanes[prog]
	if !hasLane {
		base = 0.5
	}

	bucket, terminal := transition.TerminalBucket(label)
	if !terminal {
		return clampLane(base)
	}

	if end, ok := cfg.EndLanes[prog]; ok {
		base = end
	}
	off := cfg.DefaultEndOffset
	if o, ok := cfg.EndOffsets[prog]; ok {
		off = o
	}
	if bucket == transition.BucketCurrent {
		return clampLane(base + off.Current)
	}
	return clampLane(base + off.Exited)
}

func clampLane(y float64) float64 {
	if y < laneMin {
		return laneMin
	}
	if y > laneMax {
		return laneMax
	}
	return y
}

// flowTotals sums edge counts per source and per target label.
func flowTotals(edges []transition.Edge) (out, in map[string]int) {
	out = make(map[string]int)
	in = make(map[string]int)
	for _, e := range edges {
		out[e.Source] += e.Count
		in[e.Target] += e.Count
	}
	return out, in
}

// displayLabel decorates a node label with the friendly program name and its
// aggregate flow: the outgoing sum when the node has outgoing edges, else
// the incoming sum, else 0.
func displayLabel(label string, out, in map[string]int, cfg *config.Config) string {
	total := out[label]
	if total == 0 {
		total = in[label]
	}

	if label == transition.Entered {
		return fmt.Sprintf("%s (%d)", transition.Entered, total)
	}
	prog, _ := transition.NodeProgram(label)
	friendly := prog
	if f, ok := cfg.FriendlyNames[prog]; ok {
		friendly = f
	}
	if bucket, ok := transition.TerminalBucket(label); ok {
		return fmt.Sprintf("%s: %s (%d)", bucket, friendly, total)
	}
	if tc, ok := transition.NodeTerm(label); ok {
		return fmt.Sprintf("%s %s (%d)", tc, friendly, total)
	}
	return fmt.Sprintf("%s (%d)", label, total)
}

func nodeColor(label string, cfg *config.Config) string {
	if label == transition.Entered {
		return cfg.EnteredColor
	}
	if prog, ok := transition.NodeProgram(label); ok {
		if c, ok := cfg.ProgramColors[prog]; ok {
			return c
		}
	}
	return cfg.DefaultNodeColor
}

// linkColor is the source program's color at reduced opacity; edges leaving
// Entered use a neutral gray.
func linkColor(source string, cfg *config.Config) string {
	if source == transition.Entered {
		return cfg.EnteredLinkColor
	}
	prog, _ := transition.NodeProgram(source)
	base, ok := cfg.ProgramColors[prog]
	if !ok {
		base = "rgba(160,160,160,1)"
	}
	return fadeRGBA(base, cfg.LinkAlpha)
}

var rgbaRe = regexp.MustCompile(`rgba\((\d+),\s*(\d+),\s*(\d+),\s*[0-9.]+\)`)

// fadeRGBA rewrites an rgba() color with the given alpha, falling back to a
// neutral gray for anything unparseable.
func fadeRGBA(rgba string, alpha float64) string {
	m := rgbaRe.FindStringSubmatch(rgba)
	if m == nil {
		return fmt.Sprintf("rgba(160,160,160,%g)", alpha)
	}
	return fmt.Sprintf("rgba(%s,%s,%s,%g)", m[1], m[2], m[3], alpha)
}
