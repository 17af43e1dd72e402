package nlp

// SynonymTable maps a normalized phrase to its catalog SKU candidates,
// most preferred first. Built once at startup and never mutated afterwards.
type SynonymTable map[string][]string

// WordNumberTable maps spelled-out quantity words to integers, including
// multi-word compounds such as "half dozen".
type WordNumberTable map[string]int

type ParsedLineItem struct {
	RawText       string  `json:"raw_text"`
	SKU           string  `json:"sku,omitempty"`
	Quantity      int     `json:"quantity"`
	Confidence    float64 `json:"confidence"`
	Matched       bool    `json:"matched"`
	UnmatchedName string  `json:"unmatched_name,omitempty"`
}

type MatcherConfig struct {
	// Threshold is the minimum similarity score accepted by the fuzzy
	// strategy. Scores below it are returned with an empty SKU so callers
	// can still report how close the best candidate came.
	Threshold float64

	// FallbackSKUs breaks ties between equally scored synonym keys of equal
	// length: a key resolving into this set wins.
	FallbackSKUs []string
}

const DefaultThreshold = 0.62
