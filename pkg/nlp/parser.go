package nlp

import (
	"regexp"
	"strings"
)

var (
	reSegments = regexp.MustCompile(`\s*[,;]\s*|\s+and\s+`)
	rePrefix   = regexp.MustCompile(`^(?:i\s+)?(?:need|want|require|looking\s+for|give\s+me|get\s+me|get|send|order)\s+`)
)

// Parser turns a raw customer message into ordered line items. Each
// fragment between commas, semicolons or "and" is stripped of its leading
// quantity token and resolved through the matcher. Fragments that resolve
// nowhere are kept with an empty SKU so callers can surface what was not
// understood; the parser itself never invents items.
type Parser struct {
	matcher  *Matcher
	quantity *QuantityParser
}

func NewParser(matcher *Matcher, quantity *QuantityParser) *Parser {
	return &Parser{matcher: matcher, quantity: quantity}
}

func (p *Parser) Parse(text string) []ParsedLineItem {
	// Lowercase only here; full normalization happens per fragment inside
	// the matcher, after the commas this split needs are gone.
	lowered := strings.ToLower(strings.TrimSpace(text))
	lowered = rePrefix.ReplaceAllString(lowered, "")

	segments := reSegments.Split(lowered, -1)

	items := make([]ParsedLineItem, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(rePrefix.ReplaceAllString(strings.TrimSpace(segment), ""))
		if segment == "" {
			continue
		}
		items = append(items, p.parseSegment(segment))
	}

	if len(items) == 0 && lowered != "" {
		items = append(items, p.parseSegment(lowered))
	}

	return dedupeBySKU(items)
}

func (p *Parser) parseSegment(segment string) ParsedLineItem {
	qty, rest := p.quantity.Split(segment)
	if rest == "" {
		// The whole fragment was a quantity token; nothing to match.
		rest = segment
		qty = 1
	}

	sku, confidence := p.matcher.Match(rest)

	item := ParsedLineItem{
		RawText:    segment,
		SKU:        sku,
		Quantity:   qty,
		Confidence: confidence,
		Matched:    sku != "",
	}
	if sku == "" {
		item.UnmatchedName = rest
	}
	return item
}

// dedupeBySKU collapses repeated SKUs, keeping the occurrence with the
// highest confidence in its original position. Unmatched items are never
// merged; each one is its own diagnostic.
func dedupeBySKU(items []ParsedLineItem) []ParsedLineItem {
	seen := map[string]int{}
	out := make([]ParsedLineItem, 0, len(items))

	for _, item := range items {
		if item.SKU == "" {
			out = append(out, item)
			continue
		}
		if idx, ok := seen[item.SKU]; ok {
			if item.Confidence > out[idx].Confidence {
				out[idx] = item
			}
			continue
		}
		seen[item.SKU] = len(out)
		out = append(out, item)
	}

	return out
}
