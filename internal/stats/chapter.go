package stats

import (
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/table"
)

var (
	chapterRe = regexp.MustCompile(`(?i)(?:Chapter|Chap\.?)\s*([0-9]+(?:\.[0-9]+)?)`)
	hwRe      = regexp.MustCompile(`(?i)\bHW\b|Homework`)
	quizRe    = regexp.MustCompile(`(?i)\bQuiz\b`)
	videoRe   = regexp.MustCompile(`(?i)\bVideos?\b`)
)

// Assessment type tokens recognized in column names.
const (
	TypeHW     = "HW"
	TypeQuiz   = "Quiz"
	TypeVideos = "Videos"
	TypeOther  = "Other"
)

// ParseChapter extracts the chapter token (e.g. "1.2") and assessment type
// from an LMS column name. ok is false when the name carries no chapter.
func ParseChapter(col string) (chapter, typ string, ok bool) {
	m := chapterRe.FindStringSubmatch(col)
	if m == nil {
		return "", "", false
	}
	chapter = m[1]
	switch {
	case hwRe.MatchString(col):
		typ = TypeHW
	case quizRe.MatchString(col):
		typ = TypeQuiz
	case videoRe.MatchString(col):
		typ = TypeVideos
	default:
		typ = TypeOther
	}
	return chapter, typ, true
}

// ChapterAggregates builds per-chapter HW and Quiz mean columns ("Chapter
// 1.2 HW Avg") from the sub-assignment columns, carrying the target column
// through unchanged. Only HW and Quiz columns aggregate; video and other
// chapter columns are ignored.
func ChapterAggregates(n *table.Numeric, target string) (*table.Numeric, error) {
	tcol, ok := n.Column(target)
	if !ok {
		return nil, &table.MissingColumnError{Column: target}
	}

	groups := make(map[string][]int) // "chapter\x00type" -> column indices
	var order []string
	for i, name := range n.Columns {
		if name == target {
			continue
		}
		chap, typ, ok := ParseChapter(name)
		if !ok || (typ != TypeHW && typ != TypeQuiz) {
			continue
		}
		key := chap + "\x00" + typ
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}
	sort.Strings(order)

	out := &table.Numeric{}
	for _, key := range order {
		var chap, typ string
		for i := range key {
			if key[i] == 0 {
				chap, typ = key[:i], key[i+1:]
				break
			}
		}
		out.Columns = append(out.Columns, fmt.Sprintf("Chapter %s %s Avg", chap, typ))
		out.Cols = append(out.Cols, rowMeans(n, groups[key]))
	}
	out.Columns = append(out.Columns, target)
	out.Cols = append(out.Cols, tcol)
	return out, nil
}

// rowMeans averages the given columns per row, skipping missing values;
// rows with no valid value stay missing.
func rowMeans(n *table.Numeric, cols []int) []float64 {
	rows := n.Rows()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum, cnt := 0.0, 0
		for _, j := range cols {
			if v := n.Cols[j][i]; !math.IsNaN(v) {
				sum += v
				cnt++
			}
		}
		if cnt == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(cnt)
		}
	}
	return out
}
