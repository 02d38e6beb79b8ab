package vubresto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckDate_FullYear verifies parsing of DD.MM.YYYY with a trailing
// colon
func TestCheckDate_FullYear(t *testing.T) {
	date, ok := CheckDate("13.08.2024:")

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.August, 13, 0, 0, 0, 0, time.UTC), date)
}

// TestCheckDate_ShortForm verifies parsing of D.M.YY without a colon
func TestCheckDate_ShortForm(t *testing.T) {
	date, ok := CheckDate("1.9.24")

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), date)
}

// TestCheckDate_YearRemainderBelow18 verifies the garbage-year guard
func TestCheckDate_YearRemainderBelow18(t *testing.T) {
	_, ok := CheckDate("13.08.17")
	assert.False(t, ok, "two-digit year below 18 should be rejected")

	_, ok = CheckDate("13.08.2015")
	assert.False(t, ok, "full year with remainder below 18 should be rejected")
}

// TestCheckDate_NonTriplet verifies token counts other than three fail
func TestCheckDate_NonTriplet(t *testing.T) {
	_, ok := CheckDate("13.08")
	assert.False(t, ok)

	_, ok = CheckDate("13.08.20.24")
	assert.False(t, ok)

	_, ok = CheckDate("monday")
	assert.False(t, ok)

	_, ok = CheckDate("")
	assert.False(t, ok)
}

// TestCheckDate_NonNumericTokensDiscarded verifies non-numeric tokens are
// dropped before the triplet check
func TestCheckDate_NonNumericTokensDiscarded(t *testing.T) {
	date, ok := CheckDate("ma.13.08.2024")

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.August, 13, 0, 0, 0, 0, time.UTC), date)
}

// TestCheckDate_InvalidCalendarDate verifies impossible dates are rejected
// instead of silently normalized
func TestCheckDate_InvalidCalendarDate(t *testing.T) {
	_, ok := CheckDate("31.02.2024")
	assert.False(t, ok, "February 31st should not normalize into March")

	_, ok = CheckDate("13.13.2024")
	assert.False(t, ok, "month 13 should be rejected")
}

// TestDateCursor_CarryForward verifies consecutive unparseable days chain
// off the last known-good date
func TestDateCursor_CarryForward(t *testing.T) {
	cursor := NewDateCursor()
	base := time.Date(2024, time.August, 13, 0, 0, 0, 0, time.UTC)
	cursor.Set(base)

	next, ok := cursor.Next()
	require.True(t, ok)
	assert.Equal(t, base.AddDate(0, 0, 1), next)

	next, ok = cursor.Next()
	require.True(t, ok)
	assert.Equal(t, base.AddDate(0, 0, 2), next)
}

// TestDateCursor_Sentinel verifies the cursor starts at the year-2000
// sentinel and can infer from it
func TestDateCursor_Sentinel(t *testing.T) {
	cursor := NewDateCursor()

	next, ok := cursor.Next()
	require.True(t, ok)
	assert.Equal(t, time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC), next)
}

// TestDateCursor_Unset verifies a zero cursor cannot infer a date
func TestDateCursor_Unset(t *testing.T) {
	cursor := &DateCursor{}

	_, ok := cursor.Next()
	assert.False(t, ok)

	// The cursor stays unadvanced and keeps failing.
	_, ok = cursor.Next()
	assert.False(t, ok)
}
