package vubresto

import (
	"strconv"
	"strings"
	"time"
)

// sentinelDate seeds the carry-forward cursor before any date has been
// parsed for a restaurant.
var sentinelDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// CheckDate parses a day heading of the form D(D).M(M).(YY)YY with an
// optional trailing colon. Tokens that are not purely numeric are
// discarded; exactly three numeric tokens must remain. Two-digit years
// expand to 2000+YY, but remainders below 18 are rejected as garbage
// rather than interpreted as a century rollover. Returns false for
// anything that does not yield a real calendar date.
func CheckDate(line string) (time.Time, bool) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ":")

	var nums []int
	for _, part := range strings.Split(line, ".") {
		if !isDigits(part) {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	if len(nums) != 3 {
		return time.Time{}, false
	}

	day, month, year := nums[0], nums[1], nums[2]
	if year%1000 < 18 {
		return time.Time{}, false
	}
	year = 2000 + year%1000

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (31.02 becomes early
	// March), so require the round trip to agree.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, false
	}
	return date, true
}

// isDigits reports whether s is non-empty and consists solely of ASCII
// digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DateCursor tracks the last successfully parsed date of a weekly section
// so that days with unparseable headings can be inferred as consecutive
// calendar days following the last known-good date.
type DateCursor struct {
	prev time.Time
}

// NewDateCursor returns a cursor seeded with the year-2000 sentinel.
func NewDateCursor() *DateCursor {
	return &DateCursor{prev: sentinelDate}
}

// Set records a successfully parsed date for subsequent inference.
func (c *DateCursor) Set(date time.Time) {
	c.prev = date
}

// Next infers the date of a day whose heading did not parse: one day after
// the cursor, which then advances with it. An unset cursor cannot infer
// anything and leaves the cursor unchanged.
func (c *DateCursor) Next() (time.Time, bool) {
	if c.prev.IsZero() {
		return time.Time{}, false
	}
	c.prev = c.prev.AddDate(0, 0, 1)
	return c.prev, true
}
