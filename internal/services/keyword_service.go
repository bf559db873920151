package services

import (
	"time"

	"github.com/tw-event-radar/radar/internal/keywords"
)

const (
	keywordIndexKey = "keywords:index"
	keywordIndexTTL = time.Minute
)

// KeywordIndex is the catalog together with its hit statistics.
type KeywordIndex struct {
	Version    string                    `json:"version"`
	Categories []keywords.Category       `json:"categories"`
	Changelog  []keywords.ChangelogEntry `json:"changelog"`
	Hits       map[string]*keywords.Hit  `json:"hits"`
}

// KeywordService computes keyword hits over the daily reports, caching the
// result briefly since it reads every document.
type KeywordService struct {
	catalog    *keywords.Catalog
	contentDir string
	cache      *LRUCache[*KeywordIndex]
}

func NewKeywordService(catalog *keywords.Catalog, contentDir string) *KeywordService {
	return &KeywordService{
		catalog:    catalog,
		contentDir: contentDir,
		cache:      NewLRUCache[*KeywordIndex](1),
	}
}

func (s *KeywordService) Index() (*KeywordIndex, error) {
	if idx, ok := s.cache.Get(keywordIndexKey); ok {
		return idx, nil
	}

	hits, err := s.catalog.BuildHits(s.contentDir)
	if err != nil {
		return nil, err
	}
	idx := &KeywordIndex{
		Version:    s.catalog.Version,
		Categories: s.catalog.Categories,
		Changelog:  s.catalog.Changelog,
		Hits:       hits,
	}
	s.cache.Set(keywordIndexKey, idx, keywordIndexTTL)
	return idx, nil
}
