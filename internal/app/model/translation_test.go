package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	for _, ts := range []string{
		"2024-05-01T09:00:00.000Z",
		"2024-05-01T09:00:00Z",
		"2024-05-01T11:00:00+02:00",
		"2024-05-01T09:00:00.123456789Z",
	} {
		got, err := ParseTimestamp(ts)
		require.NoError(t, err, ts)
		assert.Equal(t, 2024, got.Year())
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestSortNewestFirst(t *testing.T) {
	records := []TranslationRecord{
		{ID: 1, Timestamp: "2024-05-01T10:00:00.000Z"},
		{ID: 2, Timestamp: "garbage"},
		{ID: 3, Timestamp: "2024-05-01T08:00:00-05:00"},
		{ID: 5, Timestamp: "2024-05-01T12:00:00+02:00"},
		{ID: 4, Timestamp: "2024-05-01T10:00:00Z"},
	}

	SortNewestFirst(records)

	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	assert.Equal(t, []int64{3, 1, 5, 4, 2}, ids)
}
