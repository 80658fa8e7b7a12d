package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoreDate_RoundTrip(t *testing.T) {
	parsed, err := ParseStoreDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", FormatStore(parsed))
	assert.Equal(t, "10/03/2025", FormatDisplay(parsed))
}

func TestParseStoreDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "10/03/2025", "2025-13-01", "not a date"} {
		_, err := ParseStoreDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDisplayPeriod(t *testing.T) {
	start := date(2025, time.January, 10)
	end := date(2025, time.January, 20)

	assert.Equal(t, "10/01/2025 a 20/01/2025", displayPeriod(DateRange{start, end}))
	assert.Equal(t, "10/01/2025", displayPeriod(DateRange{start, start}), "single-day period shows one date")
}

func TestAgendaCount(t *testing.T) {
	assert.Equal(t, "1 agenda", agendaCount(1))
	assert.Equal(t, "2 agendas", agendaCount(2))
	assert.Equal(t, "0 agendas", agendaCount(0))
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	stamp := time.Date(2025, time.January, 15, 23, 45, 0, 0, loc)
	got := dateOnly(stamp)

	assert.Equal(t, date(2025, time.January, 15), got, "local calendar date is kept, not the UTC instant")
	assert.Equal(t, time.UTC, got.Location())
}

func TestDisplayRecordDate(t *testing.T) {
	assert.Equal(t, "15/01/2025", displayRecordDate("2025-01-15"))
	assert.Equal(t, "corrompido", displayRecordDate("corrompido"), "malformed dates pass through untouched")
}
