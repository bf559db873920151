package evidence

import (
	"strings"

	"github.com/tw-event-radar/radar/internal/constants"
)

// TokenSet is the set of trimmed values of a multi-value field.
type TokenSet map[string]struct{}

// ParseTokens splits a delimited field into its trimmed, non-empty values.
func ParseTokens(field string) TokenSet {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, constants.ListDelimiter)
	set := make(TokenSet, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether value is one of the set's tokens. Matching is exact.
func (s TokenSet) Has(value string) bool {
	if value == "" {
		return false
	}
	_, ok := s[value]
	return ok
}

// Matches reports whether the record mentions both the company and the event.
func Matches(companies, events TokenSet, company, event string) bool {
	return companies.Has(company) && events.Has(event)
}
