package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTrigger(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	t.Run("future activity fires 15 min before", func(t *testing.T) {
		got, err := NextTrigger("09:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 12, 8, 45, 0, 0, time.UTC), got)
	})

	t.Run("past activity rolls to tomorrow", func(t *testing.T) {
		got, err := NextTrigger("07:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 13, 6, 45, 0, 0, time.UTC), got)
	})

	t.Run("activity inside the lead window rolls over", func(t *testing.T) {
		got, err := NextTrigger("08:10", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 13, 7, 55, 0, 0, time.UTC), got)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := NextTrigger("25:00", now)
		assert.Error(t, err)
	})
}

func TestMemoryScheduler(t *testing.T) {
	m := NewMemory()
	at := time.Date(2025, 3, 12, 8, 45, 0, 0, time.UTC)

	require.NoError(t, m.Schedule("item-1", "Academia", at))

	e, ok := m.Scheduled("item-1")
	require.True(t, ok)
	assert.Equal(t, "Academia", e.Title)
	assert.Equal(t, at, e.At)

	require.NoError(t, m.Cancel("item-1"))
	_, ok = m.Scheduled("item-1")
	assert.False(t, ok)

	assert.NoError(t, m.Cancel("never-scheduled"))
}
