package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Normalizers for hand-maintained spreadsheet exports. Each parser
// returns an error instead of guessing; callers decide whether a
// malformed field degrades to zero.

var (
	floatPrefixPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
	intPrefixPattern   = regexp.MustCompile(`^[+-]?\d+`)
	nonAlphaNumPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Currency parses currency strings like "$1,234.50", "-$500" and the
// accounting form "($500)" for negatives.
func Currency(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") && len(cleaned) > 2 {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}
	prefix := floatPrefixPattern.FindString(cleaned)
	if prefix == "" {
		return 0, fmt.Errorf("not a currency value: %q", s)
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return 0, fmt.Errorf("not a currency value: %q", s)
	}
	return d.InexactFloat64(), nil
}

// Percent parses percent strings like "+12.34%" or "-5%".
func Percent(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), "%", "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	prefix := floatPrefixPattern.FindString(cleaned)
	if prefix == "" {
		return 0, fmt.Errorf("not a percent value: %q", s)
	}
	return strconv.ParseFloat(prefix, 64)
}

// Count parses integer counts that may carry thousands separators or a
// trailing percent sign ("1,234", "85%"). Fractions are truncated.
func Count(s string) (int, error) {
	cleaned := strings.NewReplacer(",", "", "%", "").Replace(strings.TrimSpace(s))
	prefix := intPrefixPattern.FindString(cleaned)
	if prefix == "" {
		return 0, fmt.Errorf("not a count value: %q", s)
	}
	return cast.ToIntE(prefix)
}

// Number parses plain decimal numbers that may carry thousands
// separators ("1,234.56").
func Number(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	prefix := floatPrefixPattern.FindString(cleaned)
	if prefix == "" {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return strconv.ParseFloat(prefix, 64)
}

// fallbackLayouts are tried when a date is not in the M/D/YY form.
var fallbackLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
}

// Date parses spreadsheet dates like "12/30/25" or "5/4/25 11:54p ET".
// Anything after the first whitespace is a time/timezone suffix and is
// ignored. Two-digit years are interpreted as 20YY.
func Date(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, fmt.Errorf("empty date")
	}
	parts := strings.Split(fields[0], "/")
	if len(parts) == 3 {
		month, err := cast.ToIntE(parts[0])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad month in date %q", s)
		}
		day, err := cast.ToIntE(parts[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad day in date %q", s)
		}
		year, err := cast.ToIntE(parts[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad year in date %q", s)
		}
		if year < 100 {
			year += 2000
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}

// Slugify lowercases a name and collapses runs of non-alphanumeric
// characters into single hyphens. Used as the URL-safe player key.
func Slugify(name string) string {
	slug := nonAlphaNumPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
