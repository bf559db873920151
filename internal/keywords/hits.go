package keywords

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tw-event-radar/radar/internal/utils"
)

// Hit counts the dated reports mentioning a keyword.
type Hit struct {
	Keyword      string `json:"keyword"`
	HitDays      int    `json:"hit_days"`
	FirstSeen    string `json:"first_seen,omitempty"`
	LastSeen     string `json:"last_seen,omitempty"`
	LastSeenSlug string `json:"last_seen_slug,omitempty"`
}

// BuildHits scans the YYYY-MM-DD.md and .mdx files of dir. Each file that
// contains a keyword, compared after folding, counts as one hit day. Every
// catalog keyword has an entry, so a missing dir yields all-zero hits.
func (c *Catalog) BuildHits(dir string) (map[string]*Hit, error) {
	all := c.Keywords()
	hits := make(map[string]*Hit, len(all))
	for _, k := range all {
		hits[k] = &Hit{Keyword: k}
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return hits, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	folded := make(map[string]string, len(all))
	for _, k := range all {
		folded[k] = utils.Fold(k)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		slug, ok := utils.SlugFromFilename(e.Name())
		if !ok || !utils.IsDateSlug(slug) {
			continue
		}
		date := slug

		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		text := utils.Fold(string(raw))

		for _, k := range all {
			if folded[k] == "" || !strings.Contains(text, folded[k]) {
				continue
			}
			h := hits[k]
			h.HitDays++
			if h.FirstSeen == "" || date < h.FirstSeen {
				h.FirstSeen = date
			}
			if h.LastSeen == "" || date > h.LastSeen {
				h.LastSeen = date
				h.LastSeenSlug = slug
			}
		}
	}
	return hits, nil
}
