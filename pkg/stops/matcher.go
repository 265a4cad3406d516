package stops

import (
	"strings"

	"github.com/travigo/stopfinder/pkg/stoperrors"
)

const (
	// MaxCandidates bounds how much of a large corpus is scanned for one query
	MaxCandidates = 50
	MaxResults    = 10
)

type Matcher struct {
	MaxCandidates int
	MaxResults    int
}

func NewMatcher() *Matcher {
	return &Matcher{
		MaxCandidates: MaxCandidates,
		MaxResults:    MaxResults,
	}
}

var defaultMatcher = NewMatcher()

// Match returns up to MaxResults records whose common name or locality contains
// the query, case-insensitively, in corpus order.
func Match(corpus Corpus, query string) ([]StopRecord, error) {
	return defaultMatcher.Match(corpus, query)
}

func (m *Matcher) Match(corpus Corpus, query string) ([]StopRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, stoperrors.NewValidationError("query", query, "a non-empty search term")
	}
	if corpus == nil {
		return nil, stoperrors.NewParseError("corpus", 0, "no corpus loaded")
	}

	needle := strings.ToLower(query)
	candidates := []StopRecord{}

	err := corpus.Scan(func(record StopRecord) bool {
		if matchesQuery(record, needle) {
			candidates = append(candidates, record)
		}

		return len(candidates) < m.MaxCandidates
	})
	if err != nil {
		return nil, err
	}

	if len(candidates) > m.MaxResults {
		candidates = candidates[:m.MaxResults]
	}

	return candidates, nil
}

func matchesQuery(record StopRecord, needle string) bool {
	return strings.Contains(strings.ToLower(record.CommonName), needle) ||
		strings.Contains(strings.ToLower(record.LocalityName), needle)
}
