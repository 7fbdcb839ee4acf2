package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeRoster(t *testing.T, dir, name string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, name)); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
}

func TestPathwaysCommand_EndToEnd(t *testing.T) {
	folder := t.TempDir()
	outdir := filepath.Join(t.TempDir(), "outputs")

	writeRoster(t, folder, "fall_2023FA.xlsx", [][]interface{}{
		{"Student Program Student ID", "Program"},
		{"12345", "A.S. Cybersecurity"},
		{"67890", "AS.DATA"},
	})
	writeRoster(t, folder, "spring_2024SP.xlsx", [][]interface{}{
		{"Student Program Student ID", "Program"},
		{"12345", "AS.CYBR"},
	})

	rootCmd.SetArgs([]string{"pathways", "--folder", folder, "--outdir", outdir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("pathways: %v", err)
	}

	counts, err := os.ReadFile(filepath.Join(outdir, "transition_counts.csv"))
	if err != nil {
		t.Fatalf("read counts: %v", err)
	}
	want := "source,target,count\n" +
		"2023FA: AS.CYBR,2024SP: AS.CYBR,1\n" +
		"2023FA: AS.DATA,Exited: AS.DATA,1\n" +
		"2024SP: AS.CYBR,Current: AS.CYBR,1\n" +
		"Entered,2023FA: AS.CYBR,1\n" +
		"Entered,2023FA: AS.DATA,1\n"
	if got := string(counts); got != want {
		t.Errorf("counts csv:\n%s\nwant:\n%s", got, want)
	}

	if _, err := os.Stat(filepath.Join(outdir, "program_pathways_sankey.html")); err != nil {
		t.Errorf("sankey html not written: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outdir, "metadata.json"))
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	var meta map[string]interface{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatalf("metadata is not valid JSON: %v", err)
	}
	if meta["unique_students"] != float64(2) {
		t.Errorf("unique_students = %v, want 2", meta["unique_students"])
	}
	if meta["counts_rows"] != float64(5) {
		t.Errorf("counts_rows = %v, want 5", meta["counts_rows"])
	}
	if meta["write_only_aggregates"] != true {
		t.Error("write_only_aggregates should always record true")
	}
}
