package nlp

import (
	"regexp"
	"strings"
)

var (
	reInchQuote  = regexp.MustCompile(`(\d+)["\x{201d}\x{201c}]`)
	reInchDash   = regexp.MustCompile(`(\d+)-inch\b`)
	reInchShort  = regexp.MustCompile(`(\d+)in\b`)
	reFootDash   = regexp.MustCompile(`(\d+)-foot\b`)
	reFootShort  = regexp.MustCompile(`(\d+)\s*ft\b`)
	rePunct      = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reDigitsOnly = regexp.MustCompile(`^\d+$`)
)

// Normalize lowercases a phrase, canonicalizes size notation (60", 60-inch,
// 60in -> "60 inch"; 8ft, 8-foot -> "8 foot"), strips punctuation and
// singularizes each word so "folding chairs" and "folding chair" hit the
// same synonym key.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))

	s = reInchQuote.ReplaceAllString(s, "$1 inch")
	s = reInchDash.ReplaceAllString(s, "$1 inch")
	s = reInchShort.ReplaceAllString(s, "$1 inch")
	s = reFootDash.ReplaceAllString(s, "$1 foot")
	s = reFootShort.ReplaceAllString(s, "$1 foot")

	s = rePunct.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = singularize(w)
	}

	return strings.Join(words, " ")
}

func singularize(word string) string {
	if len(word) < 3 || reDigitsOnly.MatchString(word) {
		return word
	}
	if strings.HasSuffix(word, "ies") {
		return word[:len(word)-3] + "y"
	}
	if strings.HasSuffix(word, "ss") {
		return word
	}
	if strings.HasSuffix(word, "s") {
		return word[:len(word)-1]
	}
	return word
}

// DiceCoefficient scores two strings by shared character bigrams, 0 to 1.
func DiceCoefficient(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	bigrams := func(s string) []string {
		r := []rune(s)
		if len(r) < 2 {
			return nil
		}
		out := make([]string, 0, len(r)-1)
		for i := 0; i < len(r)-1; i++ {
			out = append(out, string(r[i:i+2]))
		}
		return out
	}

	aPairs := bigrams(a)
	bPairs := bigrams(b)
	if len(aPairs) == 0 || len(bPairs) == 0 {
		return 0
	}

	counts := map[string]int{}
	for _, p := range bPairs {
		counts[p]++
	}
	inter := 0
	for _, p := range aPairs {
		if counts[p] > 0 {
			inter++
			counts[p]--
		}
	}

	return float64(2*inter) / float64(len(aPairs)+len(bPairs))
}
