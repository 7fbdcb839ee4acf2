package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/stats"
)

func TestCorrelationBar(t *testing.T) {
	rows := []stats.CorrRow{
		{Feature: "Chapter 1 HW Avg (103456)", Spearman: 0.81, Pearson: 0.77},
		{Feature: "Chapter 2 Quiz Avg", Spearman: 0.5, Pearson: math.NaN()},
	}
	var buf bytes.Buffer
	if err := CorrelationBar(rows, "Top Predictors", &buf); err != nil {
		t.Fatalf("CorrelationBar: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Top Predictors", "Spearman", "Pearson", "Chapter 1 HW Avg"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
	if strings.Contains(html, "(103456)") {
		t.Error("LMS assignment id should be stripped from axis labels")
	}
}

func TestSpearmanHeatmap(t *testing.T) {
	matrix := [][]float64{
		{1, -0.4},
		{-0.4, 1},
	}
	labels := []string{"Chapter 1 HW Avg", "Final Score"}
	var buf bytes.Buffer
	if err := SpearmanHeatmap(matrix, labels, "Correlation Matrix", &buf); err != nil {
		t.Fatalf("SpearmanHeatmap: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Correlation Matrix", "Final Score", "-0.4"} {
		if !strings.Contains(html, want) {
			t.Errorf("heatmap HTML missing %q", want)
		}
	}
}

func TestCorrValue(t *testing.T) {
	if got := corrValue(0.123456); got != 0.123 {
		t.Errorf("corrValue = %v", got)
	}
	if got := corrValue(math.NaN()); got != nil {
		t.Errorf("NaN should map to nil, got %v", got)
	}
}
