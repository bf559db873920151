// Package daily serves the exported report documents of the content directory.
package daily

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tw-event-radar/radar/internal/constants"
	"github.com/tw-event-radar/radar/internal/utils"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound    = errors.New("daily report not found")
	ErrInvalidSlug = errors.New("invalid daily report slug")
)

const ext = ".md"

// Meta describes one daily document.
type Meta struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Document is a daily report with its body rendered to HTML.
type Document struct {
	Meta
	Body string `json:"-"`
	HTML string `json:"content_html"`
}

type frontMatter struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

type Store struct {
	dir string
}

// NewStore reads documents from dir; an empty dir uses content/daily.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = constants.DefaultContentDir
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

// Slugs returns the names of the .md files in the content directory whose
// name is a valid slug; other files cannot be served and are skipped.
// A missing directory has no documents.
func (s *Store) Slugs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", s.dir, err)
	}

	slugs := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ext)
		if !utils.ValidSlug(slug) {
			continue
		}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// List returns the metadata of every document, newest date first.
func (s *Store) List() ([]Meta, error) {
	slugs, err := s.Slugs()
	if err != nil {
		return nil, err
	}

	items := make([]Meta, 0, len(slugs))
	for _, slug := range slugs {
		raw, err := os.ReadFile(s.path(slug))
		if err != nil {
			return nil, fmt.Errorf("read daily report %s: %w", slug, err)
		}
		meta, _ := parse(slug, raw)
		items = append(items, meta)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].Slug > items[j].Slug
	})
	return items, nil
}

// Get loads one document and renders it.
func (s *Store) Get(slug string) (*Document, error) {
	if !utils.ValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	raw, err := os.ReadFile(s.path(slug))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("read daily report %s: %w", slug, err)
	}

	meta, body := parse(slug, raw)
	return &Document{Meta: meta, Body: body, HTML: utils.RenderHTML(body)}, nil
}

// Latest returns the newest document, or nil when there is none.
func (s *Store) Latest() (*Meta, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (s *Store) path(slug string) string {
	return filepath.Join(s.dir, slug+ext)
}

// parse splits the YAML front matter from the body. Missing title and date
// default to the report title prefix plus slug and to the slug itself. A front
// matter block that is not valid YAML is treated as empty.
func parse(slug string, raw []byte) (Meta, string) {
	meta := Meta{Slug: slug}
	head, body, ok := splitFrontMatter(raw)

	var fm frontMatter
	if ok {
		_ = yaml.Unmarshal([]byte(head), &fm)
	}

	meta.Title = fm.Title
	if meta.Title == "" {
		meta.Title = constants.ReportTitlePrefix + slug
	}
	meta.Date = fm.Date
	if meta.Date == "" {
		meta.Date = slug
	}
	return meta, body
}

func splitFrontMatter(raw []byte) (string, string, bool) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", text, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", text, false
}
