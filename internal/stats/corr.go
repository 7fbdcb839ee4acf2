// Package stats computes rank and linear correlations against a target
// column, plus the chapter-level aggregation of assessment scores.
package stats

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/table"
)

// CorrRow pairs one feature's Spearman and Pearson correlation with the
// target.
type CorrRow struct {
	Feature  string
	Spearman float64
	Pearson  float64
}

// Pearson computes the linear correlation over pairwise-complete
// observations. NaN when fewer than two complete pairs exist or either
// side is constant.
func Pearson(x, y []float64) float64 {
	xs, ys := completePairs(x, y)
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// Spearman computes the rank correlation: average ranks of the
// pairwise-complete observations fed through the linear correlation.
func Spearman(x, y []float64) float64 {
	xs, ys := completePairs(x, y)
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(RankAverage(xs), RankAverage(ys), nil)
}

func completePairs(x, y []float64) ([]float64, []float64) {
	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// RankAverage returns 1-based ranks with ties assigned their average rank.
func RankAverage(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	ranks := make([]float64, len(v))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && v[idx[j+1]] == v[idx[i]] {
			j++
		}
		// ranks i+1..j+1 averaged across the tie run
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// CorrelateWithTarget computes every column's Spearman and Pearson
// correlation with the target column, sorted by |Spearman| descending with
// the feature name as tiebreak. Columns with no defined correlation are
// dropped, mirroring a dropna over the comparison table.
func CorrelateWithTarget(n *table.Numeric, target string) ([]CorrRow, error) {
	tcol, ok := n.Column(target)
	if !ok {
		return nil, &table.MissingColumnError{Column: target}
	}

	var rows []CorrRow
	for i, name := range n.Columns {
		if name == target {
			continue
		}
		s := Spearman(n.Cols[i], tcol)
		p := Pearson(n.Cols[i], tcol)
		if math.IsNaN(s) && math.IsNaN(p) {
			continue
		}
		rows = append(rows, CorrRow{Feature: name, Spearman: s, Pearson: p})
	}
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := math.Abs(rows[i].Spearman), math.Abs(rows[j].Spearman)
		if ai != aj {
			return ai > aj
		}
		return rows[i].Feature < rows[j].Feature
	})
	return rows, nil
}

// SpearmanMatrix computes the symmetric rank-correlation matrix over the
// named columns.
func SpearmanMatrix(n *table.Numeric, cols []string) ([][]float64, error) {
	data := make([][]float64, len(cols))
	for i, name := range cols {
		c, ok := n.Column(name)
		if !ok {
			return nil, &table.MissingColumnError{Column: name}
		}
		data[i] = c
	}

	mat := make([][]float64, len(cols))
	for i := range mat {
		mat[i] = make([]float64, len(cols))
		mat[i][i] = 1
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := Spearman(data[i], data[j])
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return mat, nil
}

// WriteSummaryCSV writes correlation rows as Feature,Spearman,Pearson.
func WriteSummaryCSV(rows []CorrRow, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Feature", "Spearman", "Pearson"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Feature, formatCorr(r.Spearman), formatCorr(r.Pearson)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCorr(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
