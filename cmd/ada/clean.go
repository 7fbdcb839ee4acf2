package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/artifact"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/table"
)

var cleanCmd = &cobra.Command{
	Use:     "clean",
	Short:   "Sanitize an LMS export into numeric and predictors-only tables",
	GroupID: "curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		out, _ := cmd.Flags().GetString("out")
		predsOut, _ := cmd.Flags().GetString("predictors-out")
		finalCol, _ := cmd.Flags().GetString("final-col")
		minValidFrac, _ := cmd.Flags().GetFloat64("min-valid-frac")

		cc := cfg.Clean
		if finalCol != "" {
			cc.FinalColumn = finalCol
		}
		if minValidFrac > 0 {
			cc.MinValidFrac = minValidFrac
		}

		raw, err := table.Load(input)
		if err != nil {
			return err
		}

		// Coerce before dropping sparse columns, so non-null garbage strings
		// do not keep a column alive.
		numeric, err := table.Coerce(raw, cc.FinalColumn, cc.IDColumns)
		if err != nil {
			return err
		}
		numeric.FillMean(cc.FinalColumn)
		numeric.DropSparse(cc.MinValidFrac, []string{cc.FinalColumn})

		predictors, err := numeric.PredictorView(cc.FinalColumn, cc.ExcludePatterns, cc.MinPredictors)
		if err != nil {
			return err
		}

		if err := artifact.WriteAtomic(out, func(w io.Writer) error {
			return numeric.WriteCSV(w)
		}); err != nil {
			return err
		}
		if err := artifact.WriteAtomic(predsOut, func(w io.Writer) error {
			return predictors.WriteCSV(w)
		}); err != nil {
			return err
		}

		printSaved([]string{out, predsOut})
		return nil
	},
}

func init() {
	cleanCmd.Flags().String("input", "", "local LMS export (.csv or .xlsx)")
	cleanCmd.Flags().String("out", "outputs/clean_numeric.csv", "cleaned numeric table")
	cleanCmd.Flags().String("predictors-out", "outputs/predictors_only.csv", "predictors-only table")
	cleanCmd.Flags().String("final-col", "", "target column name (default from config)")
	cleanCmd.Flags().Float64("min-valid-frac", 0, "minimum valid-value fraction per kept column (default from config)")
	cleanCmd.MarkFlagRequired("input")
}
