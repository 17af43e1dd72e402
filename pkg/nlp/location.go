package nlp

import (
	"fmt"
	"regexp"
	"strings"
)

// knownLocations maps canonical service-area names to the spellings
// customers actually type.
var knownLocations = map[string][]string{
	"Dallas, TX":     {"dallas", "dallas tx", "dallas, tx", "dallas metro", "dallas area", "dallas metro area"},
	"Fort Worth, TX": {"fort worth", "fort worth tx", "fort worth, tx", "ft worth", "ft. worth", "fortworth"},
	"Plano, TX":      {"plano", "plano tx", "plano, tx"},
	"Arlington, TX":  {"arlington", "arlington tx", "arlington, tx"},
	"Southlake, TX":  {"southlake", "southlake tx", "southlake, tx"},
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(dallas|fort\s*worth|plano|arlington|southlake)(?:\s*,?\s*(?:tx|texas))?\b`),
	regexp.MustCompile(`(?i)\b(austin|houston|san\s*antonio)(?:\s*,?\s*(?:tx|texas))?\b`),
	regexp.MustCompile(`\bin\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:,\s*[A-Z]{2})?)\b`),
	regexp.MustCompile(`\bat\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:,\s*[A-Z]{2})?)\b`),
	regexp.MustCompile(`\bnear\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?(?:,\s*[A-Z]{2})?)\b`),
}

// fillerLocationWords carry no identity on their own, so they are ignored
// when comparing two location phrases word by word.
var fillerLocationWords = map[string]struct{}{
	"tx": {}, "texas": {}, "metro": {}, "area": {}, "downtown": {},
	"north": {}, "south": {}, "east": {}, "west": {},
}

var reLocationWord = regexp.MustCompile(`\b\w+\b`)

// ResolvedLocation is the reconciled outcome of every location hint on a
// request. Final is the one pricing should use; Conflict is set when the
// customer wrote one place but selected another.
type ResolvedLocation struct {
	FreeText        string `json:"free_text,omitempty"`
	Selected        string `json:"selected,omitempty"`
	Final           string `json:"final"`
	Conflict        bool   `json:"conflict"`
	ConflictMessage string `json:"conflict_message,omitempty"`
	Rationale       string `json:"rationale"`
}

// LocationResolver reconciles the free text of a request, an explicitly
// selected service location, and a postal code into one final location.
// Precedence: selected label, then free text, then postal code.
type LocationResolver struct {
	threshold float64
}

const locationSimilarityThreshold = 0.6

func NewLocationResolver() *LocationResolver {
	return &LocationResolver{threshold: locationSimilarityThreshold}
}

func (r *LocationResolver) Resolve(message, selected, postalCode string) ResolvedLocation {
	freeText := r.extractFromText(message)

	if selected != "" {
		if freeText == "" {
			return ResolvedLocation{
				Selected:  selected,
				Final:     selected,
				Rationale: fmt.Sprintf("Service location '%s' selected by customer.", selected),
			}
		}
		if r.locationsMatch(freeText, selected) {
			return ResolvedLocation{
				FreeText:  freeText,
				Selected:  selected,
				Final:     selected,
				Rationale: fmt.Sprintf("Service location '%s' confirmed by customer request.", selected),
			}
		}
		return ResolvedLocation{
			FreeText: freeText,
			Selected: selected,
			Final:    selected,
			Conflict: true,
			ConflictMessage: fmt.Sprintf(
				"Location mismatch: customer wrote '%s' but selected '%s'. Using selected location for pricing.",
				freeText, selected),
			Rationale: fmt.Sprintf(
				"Selected service location '%s' used for pricing. Customer mentioned '%s' in their request - please confirm.",
				selected, freeText),
		}
	}

	if freeText != "" {
		return ResolvedLocation{
			FreeText:  freeText,
			Final:     freeText,
			Rationale: fmt.Sprintf("Location '%s' identified from customer request.", freeText),
		}
	}

	if postalCode != "" {
		return ResolvedLocation{
			Final:     "ZIP " + postalCode,
			Rationale: fmt.Sprintf("Location based on postal code %s.", postalCode),
		}
	}

	return ResolvedLocation{
		Final:     "Unknown / Not provided",
		Rationale: "No specific location provided. Default service area assumed.",
	}
}

// extractFromText pulls a location mention out of a request message.
// Known aliases win over the generic patterns.
func (r *LocationResolver) extractFromText(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	for canonical, aliases := range knownLocations {
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				return canonical
			}
		}
	}

	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if loc := normalizeLocation(strings.TrimSpace(m[1])); loc != "" {
				return loc
			}
		}
	}

	return ""
}

func normalizeLocation(location string) string {
	if location == "" {
		return ""
	}
	if canonical := canonicalLocation(strings.ToLower(strings.TrimSpace(location))); canonical != "" {
		return canonical
	}
	return titleCase(location)
}

// locationsMatch reports whether two phrases plausibly name the same
// place. Cheap checks run first; bigram similarity and word overlap
// catch spellings like "Dallas metro area" vs "Dallas, TX".
func (r *LocationResolver) locationsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	aLower := strings.ToLower(strings.TrimSpace(a))
	bLower := strings.ToLower(strings.TrimSpace(b))

	if aLower == bLower {
		return true
	}
	if strings.Contains(aLower, bLower) || strings.Contains(bLower, aLower) {
		return true
	}

	aCanonical := canonicalLocation(aLower)
	bCanonical := canonicalLocation(bLower)
	if aCanonical != "" && aCanonical == bCanonical {
		return true
	}

	if DiceCoefficient(aLower, bLower) >= r.threshold {
		return true
	}

	aWords := meaningfulLocationWords(aLower)
	bWords := meaningfulLocationWords(bLower)
	for word := range aWords {
		if _, ok := bWords[word]; ok {
			return true
		}
	}

	return false
}

func canonicalLocation(lower string) string {
	for canonical, aliases := range knownLocations {
		if strings.ToLower(canonical) == lower {
			return canonical
		}
		for _, alias := range aliases {
			if alias == lower {
				return canonical
			}
		}
	}
	return ""
}

func meaningfulLocationWords(lower string) map[string]struct{} {
	words := map[string]struct{}{}
	for _, word := range reLocationWord.FindAllString(lower, -1) {
		if _, filler := fillerLocationWords[word]; !filler {
			words[word] = struct{}{}
		}
	}
	return words
}

func titleCase(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, field := range fields {
		fields[i] = strings.ToUpper(field[:1]) + field[1:]
	}
	return strings.Join(fields, " ")
}
