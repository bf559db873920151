// Package typesense indexes daily reports for full-text search.
package typesense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tw-event-radar/radar/internal/config"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

var (
	ErrDisabled      = errors.New("report index is not configured")
	ErrIndexFailed   = errors.New("communication with Typesense failed")
	ErrEmptyDocument = errors.New("document without id")
)

const (
	queryBy        = "title,top_event,content"
	queryByWeights = "3,2,1"
	snippetLength  = 160
	maxPerPage     = 100
	defaultPerPage = 10
	healthTimeout  = 2 * time.Second
	dateUnixLayout = "2006-01-02"
	fieldDateUnix  = "date_unix"
	fieldTopEvent  = "top_event"
	fieldContent   = "content"
)

// Document is the indexed form of one daily report. ID is the report slug.
type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	DateUnix int64  `json:"date_unix"`
	TopEvent string `json:"top_event"`
	Content  string `json:"content"`
}

// Hit is one search result.
type Hit struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	TopEvent string `json:"top_event,omitempty"`
	Snippet  string `json:"snippet"`
}

type SearchResult struct {
	Query   string `json:"query"`
	Found   int    `json:"found"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Hits    []Hit  `json:"hits"`
}

// Index wraps a Typesense collection of daily reports. A nil *Index is a
// disabled index: every method returns ErrDisabled.
type Index struct {
	client     *typesense.Client
	collection string
}

// NewIndex connects to Typesense, or returns ErrDisabled when no API key is set.
func NewIndex(cfg config.TypesenseConfig) (*Index, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL()),
		typesense.WithAPIKey(cfg.APIKey),
	)
	return &Index{client: client, collection: cfg.Collection}, nil
}

func (i *Index) Collection() string {
	if i == nil {
		return ""
	}
	return i.collection
}

// Health checks that the server answers.
func (i *Index) Health(ctx context.Context) error {
	if i == nil {
		return ErrDisabled
	}
	ok, err := i.client.Health(ctx, healthTimeout)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexFailed, err)
	}
	if !ok {
		return ErrIndexFailed
	}
	return nil
}

// EnsureCollection creates the collection when it does not exist yet.
func (i *Index) EnsureCollection(ctx context.Context) error {
	if i == nil {
		return ErrDisabled
	}
	_, err := i.client.Collection(i.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("%w: retrieve collection %s: %v", ErrIndexFailed, i.collection, err)
	}

	schema := &api.CollectionSchema{
		Name: i.collection,
		Fields: []api.Field{
			{Name: "title", Type: "string"},
			{Name: "date", Type: "string", Facet: pointer.True()},
			{Name: fieldDateUnix, Type: "int64", Sort: pointer.True()},
			{Name: fieldTopEvent, Type: "string", Optional: pointer.True()},
			{Name: fieldContent, Type: "string"},
		},
		DefaultSortingField: pointer.String(fieldDateUnix),
	}
	if _, err := i.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("%w: create collection %s: %v", ErrIndexFailed, i.collection, err)
	}
	return nil
}

// Upsert indexes or replaces one report.
func (i *Index) Upsert(ctx context.Context, doc Document) error {
	if i == nil {
		return ErrDisabled
	}
	if doc.ID == "" {
		return ErrEmptyDocument
	}
	if _, err := i.client.Collection(i.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("%w: upsert %s: %v", ErrIndexFailed, doc.ID, err)
	}
	return nil
}

// Search runs a full-text query, most relevant and then newest first.
// page starts at 1; perPage is clamped to [1, 100].
func (i *Index) Search(ctx context.Context, q string, page, perPage int) (*SearchResult, error) {
	if i == nil {
		return nil, ErrDisabled
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	params := &api.SearchCollectionParams{
		Q:              pointer.String(q),
		QueryBy:        pointer.String(queryBy),
		QueryByWeights: pointer.String(queryByWeights),
		SortBy:         pointer.String("_text_match:desc," + fieldDateUnix + ":desc"),
		Page:           pointer.Int(page),
		PerPage:        pointer.Int(perPage),
	}
	res, err := i.client.Collection(i.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", ErrIndexFailed, q, err)
	}

	out := &SearchResult{Query: q, Page: page, PerPage: perPage, Hits: []Hit{}}
	if res.Found != nil {
		out.Found = *res.Found
	}
	if res.Hits != nil {
		for _, h := range *res.Hits {
			if h.Document == nil {
				continue
			}
			out.Hits = append(out.Hits, hitFromDocument(*h.Document))
		}
	}
	return out, nil
}

func hitFromDocument(doc map[string]interface{}) Hit {
	str := func(key string) string {
		if v, ok := doc[key].(string); ok {
			return v
		}
		return ""
	}
	return Hit{
		Slug:     str("id"),
		Title:    str("title"),
		Date:     str("date"),
		TopEvent: str(fieldTopEvent),
		Snippet:  snippet(str(fieldContent), snippetLength),
	}
}

// snippet returns the first n runes of s with whitespace collapsed.
func snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}

func isNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "Not found") || strings.Contains(msg, "Not Found")
}
