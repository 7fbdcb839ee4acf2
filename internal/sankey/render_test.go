package sankey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/config"
)

func TestRenderHTML(t *testing.T) {
	d := Layout(scenarioEdges(), config.Default())
	var buf bytes.Buffer
	if err := d.RenderHTML(&buf); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"cdn.plot.ly/plotly-",
		`arrangement: "fixed"`,
		"Student Major Transitions (with Entry/Exit)",
		"Entered (2)",
		"2023FA Cybersecurity (1)",
		"Exited: Data Science (1)",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestWriteCountsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCountsCSV(scenarioEdges(), &buf); err != nil {
		t.Fatalf("WriteCountsCSV: %v", err)
	}
	want := "source,target,count\n" +
		"2023FA: AS.CYBR,2024SP: AS.CYBR,1\n" +
		"2023FA: AS.DATA,Exited: AS.DATA,1\n" +
		"2024SP: AS.CYBR,Current: AS.CYBR,1\n" +
		"Entered,2023FA: AS.CYBR,1\n" +
		"Entered,2023FA: AS.DATA,1\n"
	if got := buf.String(); got != want {
		t.Errorf("csv output:\n%s\nwant:\n%s", got, want)
	}
}
