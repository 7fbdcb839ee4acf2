package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/artifact"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/chart"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/stats"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/table"
)

var chaptersCmd = &cobra.Command{
	Use:     "chapters",
	Short:   "Aggregate chapter HW/Quiz scores and correlate with the final score",
	GroupID: "curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		finalCol, _ := cmd.Flags().GetString("final-col")
		outCSV, _ := cmd.Flags().GetString("out-csv")
		fig, _ := cmd.Flags().GetString("fig")
		topN, _ := cmd.Flags().GetInt("top-n")

		if finalCol == "" {
			finalCol = cfg.Clean.FinalColumn
		}

		numeric, err := loadNumeric(input, finalCol)
		if err != nil {
			return err
		}

		aggregates, err := stats.ChapterAggregates(numeric, finalCol)
		if err != nil {
			return err
		}
		rows, err := stats.CorrelateWithTarget(aggregates, finalCol)
		if err != nil {
			return err
		}

		if err := artifact.WriteAtomic(outCSV, func(w io.Writer) error {
			return stats.WriteSummaryCSV(rows, w)
		}); err != nil {
			return err
		}

		top := rows
		if len(top) > topN {
			top = top[:topN]
		}
		if err := artifact.WriteAtomic(fig, func(w io.Writer) error {
			return chart.CorrelationBar(top, "Top Chapter Aggregate Correlations (HW vs Quiz)", w)
		}); err != nil {
			return err
		}

		printSaved([]string{outCSV, fig})
		return nil
	},
}

func init() {
	chaptersCmd.Flags().String("input", "outputs/predictors_only.csv", "predictors-only table from the clean command")
	chaptersCmd.Flags().String("final-col", "", "target column name (default from config)")
	chaptersCmd.Flags().String("out-csv", "outputs/chapter_aggregates_summary_hw_quiz.csv", "correlation summary CSV")
	chaptersCmd.Flags().String("fig", "figures/chapter_aggregates_top.html", "bar chart of the top aggregates")
	chaptersCmd.Flags().Int("top-n", 20, "number of aggregates to chart")
}

// loadNumeric reads an already-numeric table (the clean command's output)
// with no identifier columns left to drop.
func loadNumeric(path, target string) (*table.Numeric, error) {
	raw, err := table.Load(path)
	if err != nil {
		return nil, err
	}
	return table.Coerce(raw, target, nil)
}
