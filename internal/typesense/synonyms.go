package typesense

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v3/typesense/api"
)

// UpsertSynonyms registers each group as a multi-way synonym of the
// collection and returns how many groups were stored. Groups with fewer than
// two terms are skipped.
func (i *Index) UpsertSynonyms(ctx context.Context, groups [][]string) (int, error) {
	if i == nil {
		return 0, ErrDisabled
	}

	loaded := 0
	for n, group := range groups {
		if len(group) < 2 {
			continue
		}
		id := synonymID(n)
		schema := &api.SearchSynonymSchema{Synonyms: group}
		if _, err := i.client.Collection(i.collection).Synonyms().Upsert(ctx, id, schema); err != nil {
			return loaded, fmt.Errorf("%w: upsert synonym %s: %v", ErrIndexFailed, id, err)
		}
		loaded++
	}
	return loaded, nil
}

// synonymID numbers groups by catalog position; keywords are mostly CJK and
// do not make readable ids.
func synonymID(n int) string {
	return fmt.Sprintf("catalog-%02d", n+1)
}
