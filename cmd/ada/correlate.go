package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/artifact"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/chart"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/stats"
)

var correlateCmd = &cobra.Command{
	Use:     "correlate",
	Short:   "Rank predictors by Spearman and Pearson correlation with the final score",
	GroupID: "curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		finalCol, _ := cmd.Flags().GetString("final-col")
		topNBar, _ := cmd.Flags().GetInt("top-n-bar")
		topNHeat, _ := cmd.Flags().GetInt("top-n-heatmap")
		outCSV, _ := cmd.Flags().GetString("out-csv")
		barFig, _ := cmd.Flags().GetString("bar-fig")
		heatFig, _ := cmd.Flags().GetString("heatmap-fig")
		metaPath, _ := cmd.Flags().GetString("metadata")

		if finalCol == "" {
			finalCol = cfg.Clean.FinalColumn
		}

		numeric, err := loadNumeric(input, finalCol)
		if err != nil {
			return err
		}
		rows, err := stats.CorrelateWithTarget(numeric, finalCol)
		if err != nil {
			return err
		}

		if err := artifact.WriteAtomic(outCSV, func(w io.Writer) error {
			return stats.WriteSummaryCSV(rows, w)
		}); err != nil {
			return err
		}

		top := rows
		if len(top) > topNBar {
			top = top[:topNBar]
		}
		title := fmt.Sprintf("Top %d Predictor Correlations with %s", len(top), finalCol)
		if err := artifact.WriteAtomic(barFig, func(w io.Writer) error {
			return chart.CorrelationBar(top, title, w)
		}); err != nil {
			return err
		}

		// Focused heatmap: the target plus the strongest predictors.
		heatCols := []string{finalCol}
		for i := 0; i < topNHeat && i < len(rows); i++ {
			heatCols = append(heatCols, rows[i].Feature)
		}
		matrix, err := stats.SpearmanMatrix(numeric, heatCols)
		if err != nil {
			return err
		}
		heatTitle := fmt.Sprintf("Focused Spearman Heatmap (%s + Top %d Predictors)", finalCol, len(heatCols)-1)
		if err := artifact.WriteAtomic(heatFig, func(w io.Writer) error {
			return chart.SpearmanHeatmap(matrix, heatCols, heatTitle, w)
		}); err != nil {
			return err
		}

		if err := artifact.WriteAtomic(metaPath, func(w io.Writer) error {
			return writeCorrelateMetadata(w, input, finalCol, topNBar, topNHeat)
		}); err != nil {
			return err
		}

		printSaved([]string{outCSV, barFig, heatFig, metaPath})
		return nil
	},
}

func writeCorrelateMetadata(w io.Writer, input, finalCol string, topNBar, topNHeat int) error {
	_, err := fmt.Fprintf(w, "input=%s\nfinal_col=%s\ntop_n_bar=%d\ntop_n_heatmap=%d\n\nNotes:\n- Input is predictors-only (circular metrics excluded by the clean command)\n- Spearman used for ranking due to bounded/non-linear grade distributions\n",
		input, finalCol, topNBar, topNHeat)
	return err
}

func init() {
	correlateCmd.Flags().String("input", "outputs/predictors_only.csv", "predictors-only table from the clean command")
	correlateCmd.Flags().String("final-col", "", "target column name (default from config)")
	correlateCmd.Flags().Int("top-n-bar", 25, "predictors shown in the bar chart")
	correlateCmd.Flags().Int("top-n-heatmap", 12, "predictors shown in the heatmap")
	correlateCmd.Flags().String("out-csv", "outputs/finalscore_correlations_predictors_only.csv", "correlation summary CSV")
	correlateCmd.Flags().String("bar-fig", "figures/finalscore_top_predictors_bar.html", "bar chart output")
	correlateCmd.Flags().String("heatmap-fig", "figures/heatmap_top_predictors_spearman.html", "heatmap output")
	correlateCmd.Flags().String("metadata", "outputs/analysis_run_metadata.txt", "run-settings summary")
}
