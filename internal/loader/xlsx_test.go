package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tw-event-radar/radar/internal/models"
	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name string
	rows [][]string
}

func writeWorkbook(t *testing.T, sheets ...sheet) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("new sheet %s: %v", s.name, err)
		}
		for i, row := range s.rows {
			if row == nil {
				continue
			}
			cells := make([]interface{}, len(row))
			for j, v := range row {
				cells[j] = v
			}
			if err := f.SetSheetRow(s.name, fmt.Sprintf("A%d", i+1), &cells); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "radar.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func fullWorkbook(t *testing.T) string {
	return writeWorkbook(t,
		sheet{"News", [][]string{
			{"提及公司", "事件類型", "信心等級", "監控分數", "主題分數", "發布時間", "標題", "來源", "連結", "額外"},
			{"台積電,聯電", "擴產", "高", "5", "3.2", "2026-02-09 08:00", "台積電擴產", "經濟日報", "https://example.com/1", "x"},
			nil,
			{"鴻海", "", "低"},
		}},
		sheet{"EventRadarPlus", [][]string{
			{"事件", "極性", "公司", "主題", "NEW", "今日熱度", "熱度變化", "篇數", "高信心篇數", "命中詞"},
			{"擴產", "正向", "台積電", "先進封裝", "NEW", "12.5", "3", "4", "2", "CoWoS"},
		}},
		sheet{"CompanyHeat", [][]string{
			{"公司", "熱度", "出現篇數", "高信心篇數", "主要主題", "主要子題"},
			{"台積電", "30", "10", "6", "先進封裝", "CoWoS"},
		}},
		sheet{"RunLog", [][]string{
			{"run_at", "cutoff_dt", "keywords", "domains", "candidates_grouped", "rows_fetched", "fallback_rate_pct", "cache_path"},
			{"2026-02-08 07:00", "2026-02-05 07:00", "10", "4", "200", "90", "2", "cache/a.json"},
			{"2026-02-09 07:00", "2026-02-06 07:00", "12", "5", "300", "120", "1.5", "cache/b.json"},
		}},
	)
}

func TestLoadWorkbook(t *testing.T) {
	b, err := LoadWorkbook(fullWorkbook(t))
	if err != nil {
		t.Fatalf("LoadWorkbook: %v", err)
	}

	wantNews := []models.NewsRecord{
		{
			Companies: "台積電,聯電", EventTypes: "擴產", Confidence: "高", MonitorScore: "5", TopicScore: "3.2",
			PublishedAt: "2026-02-09 08:00", Title: "台積電擴產", Source: "經濟日報", Link: "https://example.com/1",
		},
		{Companies: "鴻海", Confidence: "低"},
	}
	if diff := cmp.Diff(wantNews, b.News); diff != "" {
		t.Errorf("news mismatch (-want +got):\n%s", diff)
	}

	wantEvents := []models.RankedEvent{{
		Event: "擴產", Polarity: "正向", Company: "台積電", Topic: "先進封裝", New: "NEW",
		Heat: "12.5", Delta: "3", Articles: "4", HighConfidence: "2", Keywords: "CoWoS",
	}}
	if diff := cmp.Diff(wantEvents, b.RankedEvents); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	if len(b.CompanyHeat) != 1 || b.CompanyHeat[0].MainSubTopic != "CoWoS" {
		t.Errorf("heat = %+v", b.CompanyHeat)
	}
	if len(b.RunLog) != 2 {
		t.Fatalf("run log = %d rows, want 2", len(b.RunLog))
	}
	if run := b.LatestRun(); run.CachePath != "cache/b.json" {
		t.Errorf("latest run cache_path = %q, want cache/b.json", run.CachePath)
	}
}

func TestLoadWorkbookEmptySheets(t *testing.T) {
	path := writeWorkbook(t,
		sheet{"News", nil},
		sheet{"EventRadarPlus", [][]string{{"事件", "公司"}}},
		sheet{"CompanyHeat", nil},
		sheet{"RunLog", nil},
	)

	b, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook: %v", err)
	}
	if len(b.News) != 0 || len(b.RankedEvents) != 0 || len(b.CompanyHeat) != 0 || len(b.RunLog) != 0 {
		t.Errorf("expected empty tables, got %+v", b)
	}
	if b.LatestRun() != nil {
		t.Error("LatestRun should be nil for an empty log")
	}
}

func TestLoadWorkbookMissingColumns(t *testing.T) {
	path := writeWorkbook(t,
		sheet{"News", [][]string{{"標題"}, {"only a title"}}},
		sheet{"EventRadarPlus", nil},
		sheet{"CompanyHeat", nil},
		sheet{"RunLog", nil},
	)

	b, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook: %v", err)
	}
	want := []models.NewsRecord{{Title: "only a title"}}
	if diff := cmp.Diff(want, b.News); diff != "" {
		t.Errorf("news mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadWorkbookMissingInput(t *testing.T) {
	tests := []struct {
		name      string
		path      func(t *testing.T) string
		wantSheet bool
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.xlsx") },
		},
		{
			name: "missing sheet",
			path: func(t *testing.T) string {
				return writeWorkbook(t, sheet{"News", nil}, sheet{"EventRadarPlus", nil}, sheet{"CompanyHeat", nil})
			},
			wantSheet: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWorkbook(tt.path(t))
			if !errors.Is(err, ErrMissingInput) {
				t.Fatalf("err = %v, want ErrMissingInput", err)
			}
			if errors.Is(err, ErrMissingSheet) != tt.wantSheet {
				t.Errorf("errors.Is(err, ErrMissingSheet) = %v, want %v", !tt.wantSheet, tt.wantSheet)
			}
			if tt.wantSheet && !strings.Contains(err.Error(), "RunLog") {
				t.Errorf("error %q should name the missing sheet", err)
			}
		})
	}
}
