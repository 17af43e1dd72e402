package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDays       = regexp.MustCompile(`\b(\d+)[-\s]*days?\b`)
	reFriSun     = regexp.MustCompile(`\bfriday\s+(?:through|thru|to|-)\s+sunday\b`)
	reWeekend    = regexp.MustCompile(`\bweekend\b`)
	reWeek       = regexp.MustCompile(`\bweek\b`)
	reMonth      = regexp.MustCompile(`\bmonth\b`)
	durationKeys = []struct {
		re   *regexp.Regexp
		days int
	}{
		{reFriSun, 3},
		{reWeekend, 3},
		{reWeek, 7},
		{reMonth, 30},
	}
)

// ExtractDuration scans a message for a rental length in days. Explicit
// numeric phrases ("for 5 days", "2-day wedding") win; otherwise duration
// keywords are tried in priority order as whole words, so "weekend" is
// never read as "week". With no hint at all, fallback is returned.
// Callers holding explicit start/end dates convert those to days before
// this runs; dates always take precedence over text.
func ExtractDuration(message string, fallback int) int {
	s := strings.ToLower(message)

	if m := reDays.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n
		}
	}

	for _, k := range durationKeys {
		if k.re.MatchString(s) {
			return k.days
		}
	}

	if fallback < 1 {
		fallback = 1
	}
	return fallback
}
