package nlp

import (
	"sort"
	"strings"
)

// Matcher resolves a free-text phrase to a catalog SKU with a confidence
// score in [0,1]. Strategies run in order: exact synonym hit, longest
// contained synonym, then bigram similarity against every key. The first
// strategy that accepts wins.
type Matcher struct {
	cfg        MatcherConfig
	synonyms   map[string][]string // normalized key -> SKUs
	sortedKeys []string            // normalized keys, longest first
	fallback   map[string]struct{}
	strategies []matchStrategy
}

type matchStrategy interface {
	match(normalized string) (sku string, confidence float64, ok bool)
}

func NewMatcher(table SynonymTable, cfg MatcherConfig) *Matcher {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}

	m := &Matcher{
		cfg:      cfg,
		synonyms: make(map[string][]string, len(table)),
		fallback: make(map[string]struct{}, len(cfg.FallbackSKUs)),
	}

	for key, skus := range table {
		norm := Normalize(key)
		if norm == "" || len(skus) == 0 {
			continue
		}
		m.synonyms[norm] = skus
		m.sortedKeys = append(m.sortedKeys, norm)
	}
	sort.Slice(m.sortedKeys, func(i, j int) bool {
		if len(m.sortedKeys[i]) != len(m.sortedKeys[j]) {
			return len(m.sortedKeys[i]) > len(m.sortedKeys[j])
		}
		return m.sortedKeys[i] < m.sortedKeys[j]
	})

	for _, sku := range cfg.FallbackSKUs {
		m.fallback[sku] = struct{}{}
	}

	m.strategies = []matchStrategy{
		&exactStrategy{m},
		&containsStrategy{m},
		&similarityStrategy{m},
	}

	return m
}

// Match returns the best SKU for the phrase and the matcher's confidence.
// An empty SKU means no synonym key cleared the threshold; the returned
// confidence is then the best sub-threshold score, useful for diagnostics.
func (m *Matcher) Match(phrase string) (string, float64) {
	normalized := Normalize(phrase)
	if normalized == "" {
		return "", 0
	}

	for _, s := range m.strategies {
		if sku, confidence, ok := s.match(normalized); ok {
			return sku, confidence
		}
	}

	// Fell through every strategy: report the best fuzzy score anyway.
	_, best := m.bestSimilarity(normalized)
	return "", best
}

func (m *Matcher) Threshold() float64 { return m.cfg.Threshold }

type exactStrategy struct{ m *Matcher }

func (s *exactStrategy) match(normalized string) (string, float64, bool) {
	if skus, ok := s.m.synonyms[normalized]; ok {
		return skus[0], 1.0, true
	}
	return "", 0, false
}

// containsStrategy matches when a synonym key appears whole inside the
// phrase, e.g. "shiny white folding chair" contains "white folding chair".
// Longer keys are tried first so the most specific synonym wins.
type containsStrategy struct{ m *Matcher }

func (s *containsStrategy) match(normalized string) (string, float64, bool) {
	padded := " " + normalized + " "
	for _, key := range s.m.sortedKeys {
		if strings.Contains(padded, " "+key+" ") {
			confidence := 0.85 + float64(len(key))/50
			if confidence > 1.0 {
				confidence = 1.0
			}
			return s.m.synonyms[key][0], confidence, true
		}
	}
	return "", 0, false
}

type similarityStrategy struct{ m *Matcher }

func (s *similarityStrategy) match(normalized string) (string, float64, bool) {
	key, score := s.m.bestSimilarity(normalized)
	if key == "" || score < s.m.cfg.Threshold {
		return "", 0, false
	}
	return s.m.synonyms[key][0], score, true
}

// bestSimilarity scans every synonym key and keeps the top Dice score.
// Ties go to the longer key; a still-tied key whose SKU sits in the
// fallback set wins over one whose SKU does not.
func (m *Matcher) bestSimilarity(normalized string) (string, float64) {
	bestKey := ""
	bestScore := 0.0

	for _, key := range m.sortedKeys {
		score := DiceCoefficient(normalized, key)
		if score < bestScore {
			continue
		}
		if score > bestScore {
			bestKey, bestScore = key, score
			continue
		}
		// Equal score. sortedKeys is longest-first, so the incumbent is
		// already at least as long; replace only on the fallback rule.
		if len(key) == len(bestKey) {
			if _, ok := m.fallback[m.synonyms[key][0]]; ok {
				if _, incumbent := m.fallback[m.synonyms[bestKey][0]]; !incumbent {
					bestKey = key
				}
			}
		}
	}

	return bestKey, bestScore
}
