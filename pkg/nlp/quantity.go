package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reQtyDigits = regexp.MustCompile(`^(\d+)(?:\s+|$)`)
	reQtyTimes  = regexp.MustCompile(`^(\d+)x(?:\s+|$)`)
	reQtyPrefix = regexp.MustCompile(`^qty[:\s]*(\d+)(?:\s+|$)`)
)

// QuantityParser extracts a count from the front of an item fragment.
// Recognized, in priority order: a leading digit run ("50 chairs"), the
// "<n>x" notation ("5x tables"), a "qty n" prefix, spelled-out numbers
// including two-word compounds ("twenty five", "half dozen", "a dozen").
// Anything else means no quantity token: the count defaults to 1.
type QuantityParser struct {
	numbers WordNumberTable
}

func NewQuantityParser(numbers WordNumberTable) *QuantityParser {
	return &QuantityParser{numbers: numbers}
}

// Parse returns the quantity found in text, defaulting to 1.
func (q *QuantityParser) Parse(text string) int {
	qty, _ := q.Split(text)
	return qty
}

// Split returns the quantity and the fragment with its quantity token
// removed. Fractional and negative forms never match the patterns here,
// so they fall through to the (1, unchanged) default by construction.
func (q *QuantityParser) Split(text string) (int, string) {
	s := strings.ToLower(strings.TrimSpace(text))

	if m := reQtyTimes.FindStringSubmatch(s); m != nil {
		return q.toInt(m[1], s, m[0])
	}
	if m := reQtyPrefix.FindStringSubmatch(s); m != nil {
		return q.toInt(m[1], s, m[0])
	}
	if m := reQtyDigits.FindStringSubmatch(s); m != nil {
		return q.toInt(m[1], s, m[0])
	}

	return q.splitWords(s)
}

func (q *QuantityParser) toInt(digits, full, consumed string) (int, string) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 1, full
	}
	return n, strings.TrimSpace(strings.TrimPrefix(full, consumed))
}

func (q *QuantityParser) splitWords(s string) (int, string) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 1, s
	}

	// Articles introduce a compound ("a dozen", "a hundred") or count as
	// one on their own ("a mixer").
	if words[0] == "a" || words[0] == "an" {
		if len(words) > 1 {
			if n, ok := q.numbers[words[0]+" "+words[1]]; ok {
				return n, strings.Join(words[2:], " ")
			}
			if n, ok := q.numbers[words[1]]; ok && n > 1 {
				return n, strings.Join(words[2:], " ")
			}
		}
		return 1, strings.Join(words[1:], " ")
	}

	// Two-word forms first so "twenty five chairs" does not stop at 20 and
	// "half dozen" is not read as an item name.
	if len(words) > 1 {
		if n, ok := q.numbers[words[0]+" "+words[1]]; ok {
			return n, strings.Join(words[2:], " ")
		}
		if tens, ok := q.numbers[words[0]]; ok && tens >= 20 && tens <= 90 {
			if unit, ok := q.numbers[words[1]]; ok && unit >= 1 && unit <= 9 {
				return tens + unit, strings.Join(words[2:], " ")
			}
		}
	}

	if n, ok := q.numbers[words[0]]; ok {
		return n, strings.Join(words[1:], " ")
	}

	return 1, s
}
