package catalog

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MinMatchScore is the floor below which fuzzy hits are discarded.
// Treat as configuration, not a derived constant.
const MinMatchScore = 60.0

// matcher scores free-text terms against catalog names on a 0-100 scale.
// An exact case-insensitive match always scores 100.
type matcher struct {
	lev *metrics.Levenshtein
	jw  *metrics.JaroWinkler
}

func newMatcher() *matcher {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	return &matcher{lev: lev, jw: jw}
}

// score computes a weighted similarity between a search term and a
// candidate name. The weighting mirrors a token-aware ratio: full-string
// edit similarity, token-sorted similarity for reordered words, and a
// discounted best-token similarity so "burger" still reaches
// "Veggie Burger".
func (m *matcher) score(term, candidate string) float64 {
	term = strings.ToLower(strings.TrimSpace(term))
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if term == "" || candidate == "" {
		return 0
	}
	if term == candidate {
		return 100
	}

	best := strutil.Similarity(term, candidate, m.lev)
	if jw := strutil.Similarity(term, candidate, m.jw); jw > best {
		best = jw
	}

	sortedTerm := sortTokens(term)
	sortedCandidate := sortTokens(candidate)
	if s := strutil.Similarity(sortedTerm, sortedCandidate, m.lev) * 0.95; s > best {
		best = s
	}

	for _, tok := range strings.Fields(candidate) {
		if s := strutil.Similarity(term, tok, m.lev) * 0.9; s > best {
			best = s
		}
	}

	return best * 100
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// rankNames scores term against every name and returns the indexes of the
// top hits at or above MinMatchScore, best first. Ties keep input order so
// ranking stays deterministic.
func (m *matcher) rankNames(term string, names []string, limit int) []scoredIndex {
	hits := make([]scoredIndex, 0, len(names))
	for i, name := range names {
		if s := m.score(term, name); s >= MinMatchScore {
			hits = append(hits, scoredIndex{Index: i, Score: s})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

type scoredIndex struct {
	Index int
	Score float64
}
