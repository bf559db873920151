package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tw-event-radar/radar/internal/constants"
	"github.com/tw-event-radar/radar/internal/models"
)

var reportDay = time.Date(2026, 2, 9, 10, 0, 0, 0, constants.Location())

func rankedEvents(n int) []models.RankedEvent {
	events := make([]models.RankedEvent, n)
	for i := range events {
		events[i] = models.RankedEvent{
			Event:   fmt.Sprintf("E%d", i+1),
			Company: "A",
			Heat:    fmt.Sprint(100 - i),
			Delta:   "0",
		}
	}
	return events
}

func TestComposeEmptyEvents(t *testing.T) {
	r := NewComposer(nil).Compose(Input{Today: reportDay})

	if diff := cmp.Diff(Summary{}, r.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if r.TopEvent != nil {
		t.Errorf("TopEvent = %+v, want nil", r.TopEvent)
	}
	if r.TopLine() != "" {
		t.Errorf("TopLine = %q, want empty", r.TopLine())
	}
	if len(r.Events) != 0 {
		t.Errorf("Events = %d, want 0", len(r.Events))
	}
	if got := r.Sections()[2].Placeholder; got != placeholderEvents {
		t.Errorf("events placeholder = %q, want %q", got, placeholderEvents)
	}
}

func TestComposeFewerEventsThanTop(t *testing.T) {
	events := rankedEvents(5)
	events[1].New = "NEW"
	events[3].Delta = "2.5"

	r := NewComposer(nil).Compose(Input{RankedEvents: events, TopEvents: 20, Today: reportDay})

	if len(r.Events) != 5 {
		t.Fatalf("Events = %d, want 5", len(r.Events))
	}
	for i, b := range r.Events {
		if b.Rank != i+1 {
			t.Errorf("block %d rank = %d, want %d", i, b.Rank, i+1)
		}
		if b.Event.Event != events[i].Event {
			t.Errorf("block %d event = %q, want %q", i, b.Event.Event, events[i].Event)
		}
	}
	want := Summary{TotalEvents: 5, NewEvents: 1, TrendingEvents: 1}
	if diff := cmp.Diff(want, r.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeCountsIgnoreTruncation(t *testing.T) {
	events := rankedEvents(30)
	for i := range events {
		if i%2 == 0 {
			events[i].New = "NEW"
		}
		events[i].Delta = "1"
	}

	r := NewComposer(nil).Compose(Input{RankedEvents: events, TopEvents: 3, Today: reportDay})

	if len(r.Events) != 3 {
		t.Errorf("Events = %d, want 3", len(r.Events))
	}
	want := Summary{TotalEvents: 30, NewEvents: 15, TrendingEvents: 30}
	if diff := cmp.Diff(want, r.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if r.TopEvent == nil || r.TopEvent.Event != "E1" {
		t.Errorf("TopEvent = %+v, want E1", r.TopEvent)
	}
}

func TestComposeDefaultTopEvents(t *testing.T) {
	r := NewComposer(nil).Compose(Input{RankedEvents: rankedEvents(25), Today: reportDay})
	if len(r.Events) != constants.DefaultTopEvents {
		t.Errorf("Events = %d, want %d", len(r.Events), constants.DefaultTopEvents)
	}
}

func TestComposeTrendingDelta(t *testing.T) {
	events := []models.RankedEvent{
		{Event: "up", Delta: "0.1"},
		{Event: "flat", Delta: "0"},
		{Event: "down", Delta: "-3"},
		{Event: "missing", Delta: ""},
		{Event: "garbage", Delta: "n/a"},
	}
	if got := Summarize(events).TrendingEvents; got != 1 {
		t.Errorf("TrendingEvents = %d, want 1", got)
	}
}

func TestComposeHeatRowsCapped(t *testing.T) {
	heat := make([]models.CompanyHeatRow, 25)
	for i := range heat {
		heat[i] = models.CompanyHeatRow{Company: fmt.Sprintf("C%02d", i)}
	}

	r := NewComposer(nil).Compose(Input{CompanyHeat: heat, Today: reportDay})

	if len(r.Heat) != constants.DefaultHeatRows {
		t.Fatalf("Heat = %d, want %d", len(r.Heat), constants.DefaultHeatRows)
	}
	if r.Heat[0].Company != "C00" || r.Heat[19].Company != "C19" {
		t.Errorf("heat order changed: first %q last %q", r.Heat[0].Company, r.Heat[19].Company)
	}
}

func TestComposeEvidencePerEvent(t *testing.T) {
	news := []models.NewsRecord{
		{Companies: "A", EventTypes: "E1", Confidence: "高", Title: "n1", Link: "L1"},
		{Companies: "A", EventTypes: "E2", Confidence: "高", Title: "n2", Link: "L2"},
		{Companies: "B", EventTypes: "E1", Confidence: "高", Title: "n3", Link: "L3"},
	}
	events := []models.RankedEvent{
		{Event: "E1", Company: "A"},
		{Event: "E2", Company: "A"},
		{Event: "E3", Company: "A"},
		{Event: " E1 ", Company: " B "},
	}

	r := NewComposer(nil).Compose(Input{News: news, RankedEvents: events, Today: reportDay})

	want := [][]string{{"n1"}, {"n2"}, {}, {"n3"}}
	for i, b := range r.Events {
		got := []string{}
		for _, n := range b.Evidence {
			got = append(got, n.Title)
		}
		if diff := cmp.Diff(want[i], got); diff != "" {
			t.Errorf("event %d evidence mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestComposeDateInReportZone(t *testing.T) {
	utcLate := time.Date(2026, 2, 8, 20, 0, 0, 0, time.UTC)
	r := NewComposer(nil).Compose(Input{Today: utcLate})
	if r.Date != "2026-02-09" {
		t.Errorf("Date = %q, want 2026-02-09", r.Date)
	}
}

func TestInputFromBundleUsesLatestRun(t *testing.T) {
	b := &models.Bundle{RunLog: []models.RunStatus{{RunAt: "first"}, {RunAt: "last"}}}
	in := InputFromBundle(b, 0, reportDay)
	if in.Run == nil || in.Run.RunAt != "last" {
		t.Errorf("Run = %+v, want last row", in.Run)
	}
}
