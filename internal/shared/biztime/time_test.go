package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReceiptDate(t *testing.T) {
	require.NoError(t, Init(DefaultTimezone))

	// 03:00 UTC on March 5th is still March 4th in Mexico City.
	ts := time.Date(2024, time.March, 5, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "04/03/2024", FormatReceiptDate(ts))
}

func TestStartOfDayUTC(t *testing.T) {
	require.NoError(t, Init(DefaultTimezone))

	ts := time.Date(2024, time.March, 5, 15, 30, 0, 0, time.UTC)
	start := StartOfDayUTC(ts)

	assert.Equal(t, time.UTC, start.Location())
	assert.Equal(t, 0, start.In(Location()).Hour())
	assert.Equal(t, 5, start.In(Location()).Day())
}
