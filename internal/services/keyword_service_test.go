package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tw-event-radar/radar/internal/keywords"
)

func TestKeywordServiceIndex(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("2026-02-08.md", "CoWoS")

	catalog := &keywords.Catalog{Version: "v9", Categories: []keywords.Category{{Key: "k", Items: []string{"CoWoS"}}}}
	s := NewKeywordService(catalog, dir)
	now := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	s.cache.now = func() time.Time { return now }

	idx, err := s.Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if idx.Version != "v9" || idx.Hits["CoWoS"].HitDays != 1 {
		t.Fatalf("index = %+v", idx)
	}

	write("2026-02-09.md", "cowos")
	cached, _ := s.Index()
	if cached.Hits["CoWoS"].HitDays != 1 {
		t.Error("cached index should be served until it expires")
	}

	now = now.Add(keywordIndexTTL + time.Second)
	fresh, _ := s.Index()
	if fresh.Hits["CoWoS"].HitDays != 2 || fresh.Hits["CoWoS"].LastSeen != "2026-02-09" {
		t.Errorf("fresh hits = %+v", fresh.Hits["CoWoS"])
	}
}
