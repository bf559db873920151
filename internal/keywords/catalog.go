// Package keywords holds the monitored keyword catalog and counts on how many
// daily reports each keyword appears.
package keywords

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Category groups related keywords.
type Category struct {
	Key   string   `yaml:"key" json:"key"`
	Title string   `yaml:"title" json:"title"`
	Desc  string   `yaml:"desc,omitempty" json:"desc,omitempty"`
	Items []string `yaml:"items" json:"items"`
}

// ChangelogEntry records one revision of the catalog.
type ChangelogEntry struct {
	Date  string   `yaml:"date" json:"date"`
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

type Catalog struct {
	Version    string           `yaml:"version" json:"version"`
	Categories []Category       `yaml:"categories" json:"categories"`
	Changelog  []ChangelogEntry `yaml:"changelog" json:"changelog"`
	// Synonyms are groups of keywords searched as one term.
	Synonyms   [][]string       `yaml:"synonyms" json:"synonyms,omitempty"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse keyword catalog: %w", err)
	}
	return &c, nil
}

// Keywords lists every item in catalog order. A keyword listed under several
// categories appears once.
func (c *Catalog) Keywords() []string {
	seen := make(map[string]bool)
	var out []string
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
