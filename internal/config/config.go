// Package config holds the per-institution lookup tables driving the
// analysis pipelines: term ordering, program aliases, Sankey lane layout and
// colors, and the LMS-export cleaning rules.
//
// Defaults cover the programs and export formats the tool was built against;
// a TOML file supplied with --config overrides any table wholesale without a
// code change.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/term"
)

// EndOffset shifts a program's Current/Exited terminal nodes vertically away
// from each other so sibling nodes never fully overlap.
type EndOffset struct {
	Current float64 `toml:"current"`
	Exited  float64 `toml:"exited"`
}

// Config is the full analysis configuration.
type Config struct {
	// IDColumn and ProgramColumn are the two required roster columns.
	IDColumn      string `toml:"id_column"`
	ProgramColumn string `toml:"program_column"`

	// TermRanks orders season abbreviations within a year.
	TermRanks map[string]int `toml:"term_ranks"`

	// ProgramAliases collapses known spelling/format variants to canonical
	// program codes. Unknown codes pass through unchanged.
	ProgramAliases map[string]string `toml:"program_aliases"`

	// ProgramPriority fixes display order within a diagram column.
	ProgramPriority map[string]int `toml:"program_priority"`

	// ProgramLanes is the baseline vertical lane per program, in [0,1].
	ProgramLanes map[string]float64 `toml:"program_lanes"`

	// EndLanes optionally re-bases a program's terminal nodes on a lane
	// different from its intermediate one.
	EndLanes map[string]float64 `toml:"end_lanes"`

	// EndOffsets overrides the Current/Exited vertical split per program;
	// programs without an entry use DefaultEndOffset.
	EndOffsets       map[string]EndOffset `toml:"end_offsets"`
	DefaultEndOffset EndOffset            `toml:"default_end_offset"`

	// ProgramColors maps program codes to rgba() node colors.
	ProgramColors    map[string]string `toml:"program_colors"`
	EnteredColor     string            `toml:"entered_color"`
	DefaultNodeColor string            `toml:"default_node_color"`
	EnteredLinkColor string            `toml:"entered_link_color"`
	LinkAlpha        float64           `toml:"link_alpha"`

	// FriendlyNames decorates node labels with human-readable program names.
	FriendlyNames map[string]string `toml:"friendly_names"`

	Clean CleanConfig `toml:"clean"`
}

// CleanConfig controls the LMS-export sanitation pipeline.
type CleanConfig struct {
	FinalColumn  string   `toml:"final_column"`
	IDColumns    []string `toml:"id_columns"`
	MinValidFrac float64  `toml:"min_valid_frac"`

	// ExcludePatterns removes circular/post-hoc grading proxies from the
	// predictor feature space. Case-insensitive regular expressions.
	ExcludePatterns []string `toml:"exclude_patterns"`

	// MinPredictors is the minimum number of predictor columns that must
	// survive the exclusions.
	MinPredictors int `toml:"min_predictors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		IDColumn:      "Student Program Student ID",
		ProgramColumn: "Program",
		TermRanks:     term.DefaultRanks(),
		ProgramAliases: map[string]string{
			"AS.CBSC":            "AS.CYBR",
			"AS.CYBER":           "AS.CYBR",
			"CYBERSECURITY":      "AS.CYBR",
			"A.S. CYBERSECURITY": "AS.CYBR",
			"CYBER FORENSICS":    "AAS.CYBF",
			"CYBERFORENSICS":     "AAS.CYBF",
			"DATA SCIENCE":       "AS.DATA",
			"DATASCIENCE":        "AS.DATA",
		},
		ProgramPriority: map[string]int{
			"AS.CYBR":  0,
			"AAS.CYBF": 1,
			"AS.DATA":  2,
		},
		ProgramLanes: map[string]float64{
			"AS.CYBR":  0.32,
			"AAS.CYBF": 0.70,
			"AS.DATA":  0.86,
		},
		EndLanes: map[string]float64{
			"AAS.CYBF": 0.76,
			"AS.DATA":  0.94,
		},
		EndOffsets: map[string]EndOffset{
			// The cybersecurity lane is dense enough that the default split
			// still collides; push Exited well below it.
			"AS.CYBR": {Current: -0.06, Exited: 0.31},
		},
		DefaultEndOffset: EndOffset{Current: -0.05, Exited: 0.05},
		ProgramColors: map[string]string{
			"AS.CYBR":  "rgba(56, 189, 248, 0.85)",
			"AAS.CYBF": "rgba(251, 146, 60, 0.85)",
			"AS.DATA":  "rgba(244, 114, 182, 0.85)",
		},
		EnteredColor:     "rgba(99, 102, 241, 0.85)",
		DefaultNodeColor: "rgba(148, 163, 184, 0.7)",
		EnteredLinkColor: "rgba(160,160,160,0.25)",
		LinkAlpha:        0.22,
		FriendlyNames: map[string]string{
			"AS.CYBR":  "Cybersecurity",
			"AAS.CYBF": "Cyber Forensics",
			"AS.DATA":  "Data Science",
		},
		Clean: CleanConfig{
			FinalColumn:   "Final Score",
			IDColumns:     []string{"ID", "SIS User ID"},
			MinValidFrac:  0.50,
			MinPredictors: 5,
			ExcludePatterns: []string{
				`\bcurrent score\b`,
				`\bunposted\b`,
				`\bweighted\b`,
				`\bcategory\b`,
				`\bfinal exam\b.*\bfinal score\b`,
				`\bmidterm\b.*\bfinal score\b`,
				`\bwebassign\b.*\bfinal score\b`,
				`\battendance\b.*\bfinal score\b`,
				`\bhomework\b.*\bfinal score\b`,
				`\bquiz(?:zes)?\b.*\bfinal score\b`,
				`\(\s*\d+%\s*\).*\bfinal score\b`,
				`\(\s*\d+%\s*\).*\bcurrent score\b`,
				`\(\s*\d+%\s*\).*\bunposted\b`,
			},
		},
	}
}

// Load returns the defaults overridden by the TOML file at path. An empty
// path returns the defaults unchanged. Tables present in the file replace
// the corresponding default table wholesale.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(&file)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.IDColumn != "" {
		c.IDColumn = o.IDColumn
	}
	if o.ProgramColumn != "" {
		c.ProgramColumn = o.ProgramColumn
	}
	if len(o.TermRanks) > 0 {
		c.TermRanks = o.TermRanks
	}
	if len(o.ProgramAliases) > 0 {
		c.ProgramAliases = o.ProgramAliases
	}
	if len(o.ProgramPriority) > 0 {
		c.ProgramPriority = o.ProgramPriority
	}
	if len(o.ProgramLanes) > 0 {
		c.ProgramLanes = o.ProgramLanes
	}
	if len(o.EndLanes) > 0 {
		c.EndLanes = o.EndLanes
	}
	if len(o.EndOffsets) > 0 {
		c.EndOffsets = o.EndOffsets
	}
	if o.DefaultEndOffset != (EndOffset{}) {
		c.DefaultEndOffset = o.DefaultEndOffset
	}
	if len(o.ProgramColors) > 0 {
		c.ProgramColors = o.ProgramColors
	}
	if o.EnteredColor != "" {
		c.EnteredColor = o.EnteredColor
	}
	if o.DefaultNodeColor != "" {
		c.DefaultNodeColor = o.DefaultNodeColor
	}
	if o.EnteredLinkColor != "" {
		c.EnteredLinkColor = o.EnteredLinkColor
	}
	if o.LinkAlpha != 0 {
		c.LinkAlpha = o.LinkAlpha
	}
	if len(o.FriendlyNames) > 0 {
		c.FriendlyNames = o.FriendlyNames
	}
	if o.Clean.FinalColumn != "" {
		c.Clean.FinalColumn = o.Clean.FinalColumn
	}
	if len(o.Clean.IDColumns) > 0 {
		c.Clean.IDColumns = o.Clean.IDColumns
	}
	if o.Clean.MinValidFrac != 0 {
		c.Clean.MinValidFrac = o.Clean.MinValidFrac
	}
	if len(o.Clean.ExcludePatterns) > 0 {
		c.Clean.ExcludePatterns = o.Clean.ExcludePatterns
	}
	if o.Clean.MinPredictors != 0 {
		c.Clean.MinPredictors = o.Clean.MinPredictors
	}
}
