// Package notes holds the research notes published next to the daily reports.
package notes

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed notes.yaml
var notesYAML []byte

type Note struct {
	Slug     string   `yaml:"slug" json:"slug"`
	Title    string   `yaml:"title" json:"title"`
	Date     string   `yaml:"date" json:"date"`
	Summary  string   `yaml:"summary" json:"summary"`
	Tags     []string `yaml:"tags" json:"tags"`
	Theme    string   `yaml:"theme,omitempty" json:"theme,omitempty"`
	SubTheme string   `yaml:"sub_theme,omitempty" json:"sub_theme,omitempty"`
	Weight   float64  `yaml:"weight,omitempty" json:"weight,omitempty"`
	Body     []string `yaml:"body" json:"body"`
}

type Collection struct {
	notes []Note
}

// Load parses the embedded notes.
func Load() (*Collection, error) {
	return Parse(notesYAML)
}

// Parse decodes a YAML list of notes.
func Parse(data []byte) (*Collection, error) {
	var notes []Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("parse notes: %w", err)
	}
	return &Collection{notes: notes}, nil
}

// All returns the notes newest first.
func (c *Collection) All() []Note {
	out := append([]Note{}, c.notes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// BySlug returns the note named slug.
func (c *Collection) BySlug(slug string) (Note, bool) {
	for _, n := range c.notes {
		if n.Slug == slug {
			return n, true
		}
	}
	return Note{}, false
}
