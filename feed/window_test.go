package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "year"} {
		w, err := ParseWindow(valid)
		require.NoError(t, err)
		assert.Equal(t, Window(valid), w)
	}

	w, err := ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowWeek, w)

	_, err = ParseWindow("fortnight")
	assert.Error(t, err)
}

func TestWindowDurationIsFixedWidth(t *testing.T) {
	assert.Equal(t, 24*time.Hour, WindowDay.Duration())
	assert.Equal(t, 7*24*time.Hour, WindowWeek.Duration())
	assert.Equal(t, 28*24*time.Hour, WindowMonth.Duration())
	assert.Equal(t, 364*24*time.Hour, WindowYear.Duration())
}
