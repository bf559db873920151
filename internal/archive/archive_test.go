package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tw-event-radar/radar/internal/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "archive.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveUpsertsByDate(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	if err := s.Save(ctx, &models.DailySummary{Date: "2026-02-09", TotalEvents: 3, RunID: "a"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, &models.DailySummary{Date: "2026-02-09", TotalEvents: 5, NewEvents: 2, RunID: "b"}); err != nil {
		t.Fatalf("Save again: %v", err)
	}

	got, err := s.Get(ctx, "2026-02-09")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalEvents != 5 || got.NewEvents != 2 || got.RunID != "b" {
		t.Errorf("summary not replaced: %+v", got)
	}

	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List = %d rows, want 1", len(all))
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	for _, d := range []string{"2026-02-07", "2026-02-09", "2026-02-08"} {
		if err := s.Save(ctx, &models.DailySummary{Date: d}); err != nil {
			t.Fatalf("Save %s: %v", d, err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"2026-02-09", "2026-02-08", "2026-02-07"}},
		{"limited", 2, []string{"2026-02-09", "2026-02-08"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.limit)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			var dates []string
			for _, g := range got {
				dates = append(dates, g.Date)
			}
			if diff := cmp.Diff(tt.want, dates); diff != "" {
				t.Errorf("dates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetNotFound(t *testing.T) {
	s := openStore(t)
	if _, err := s.Get(context.Background(), "2026-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
