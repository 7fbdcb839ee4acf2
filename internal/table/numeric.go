package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Numeric is a column-major numeric dataset. Missing or non-numeric cells
// are NaN.
type Numeric struct {
	Columns []string
	Cols    [][]float64
}

// Coerce converts a raw table to numeric form, dropping the identifier
// columns outright. Cells that do not parse as numbers (LMS artifacts like
// "(read only)") become NaN instead of failing the run. Errors only when
// the target column is absent.
func Coerce(t *Table, target string, idCols []string) (*Numeric, error) {
	skip := make(map[string]bool, len(idCols))
	for _, c := range idCols {
		skip[c] = true
	}

	n := &Numeric{}
	hasTarget := false
	for j, name := range t.Columns {
		if skip[name] {
			continue
		}
		if name == target {
			hasTarget = true
		}
		col := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			col[i] = parseCell(cell(row, j))
		}
		n.Columns = append(n.Columns, name)
		n.Cols = append(n.Cols, col)
	}
	if !hasTarget {
		return nil, &MissingColumnError{Column: target}
	}
	return n, nil
}

func parseCell(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Rows returns the number of rows.
func (n *Numeric) Rows() int {
	if len(n.Cols) == 0 {
		return 0
	}
	return len(n.Cols[0])
}

// Column returns the values of the named column.
func (n *Numeric) Column(name string) ([]float64, bool) {
	for i, c := range n.Columns {
		if c == name {
			return n.Cols[i], true
		}
	}
	return nil, false
}

// FillMean replaces missing values in the named column with the column mean.
// Keeps the correlation target stable when a few rows lack a final score.
func (n *Numeric) FillMean(name string) {
	col, ok := n.Column(name)
	if !ok {
		return
	}
	sum, cnt := 0.0, 0
	for _, v := range col {
		if !math.IsNaN(v) {
			sum += v
			cnt++
		}
	}
	if cnt == 0 {
		return
	}
	mean := sum / float64(cnt)
	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = mean
		}
	}
}

// DropSparse removes columns whose valid (non-NaN) count is below
// minValidFrac of the row count. Columns named in keep always survive.
func (n *Numeric) DropSparse(minValidFrac float64, keep []string) {
	keepSet := make(map[string]bool, len(keep))
	for _, c := range keep {
		keepSet[c] = true
	}
	thresh := int(float64(n.Rows()) * minValidFrac)

	var cols []string
	var data [][]float64
	for i, name := range n.Columns {
		if keepSet[name] || validCount(n.Cols[i]) >= thresh {
			cols = append(cols, name)
			data = append(data, n.Cols[i])
		}
	}
	n.Columns, n.Cols = cols, data
}

func validCount(col []float64) int {
	cnt := 0
	for _, v := range col {
		if !math.IsNaN(v) {
			cnt++
		}
	}
	return cnt
}

// PredictorView returns a new dataset holding only predictor columns plus
// the target (last). Columns matching any exclusion pattern are removed;
// the patterns are matched case-insensitively. Errors when fewer than
// minPredictors predictors survive, which usually means the exclusion list
// does not match this export's column naming.
func (n *Numeric) PredictorView(target string, excludePatterns []string, minPredictors int) (*Numeric, error) {
	pats := make([]*regexp.Regexp, 0, len(excludePatterns))
	for _, p := range excludePatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		pats = append(pats, re)
	}

	out := &Numeric{}
	for i, name := range n.Columns {
		if name == target || excluded(name, pats) {
			continue
		}
		out.Columns = append(out.Columns, name)
		out.Cols = append(out.Cols, n.Cols[i])
	}
	if len(out.Columns) < minPredictors {
		return nil, fmt.Errorf("too few predictor columns (%d) after exclusions; adjust the exclude patterns to match this dataset", len(out.Columns))
	}

	tcol, ok := n.Column(target)
	if !ok {
		return nil, &MissingColumnError{Column: target}
	}
	out.Columns = append(out.Columns, target)
	out.Cols = append(out.Cols, tcol)
	return out, nil
}

func excluded(name string, pats []*regexp.Regexp) bool {
	c := strings.TrimSpace(name)
	for _, p := range pats {
		if p.MatchString(c) {
			return true
		}
	}
	return false
}

// WriteCSV writes the dataset row-wise. NaN cells are written empty.
func (n *Numeric) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(n.Columns); err != nil {
		return err
	}
	rows := n.Rows()
	rec := make([]string, len(n.Columns))
	for i := 0; i < rows; i++ {
		for j := range n.Columns {
			v := n.Cols[j][i]
			if math.IsNaN(v) {
				rec[j] = ""
			} else {
				rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
