package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("gaming")
	assert.Error(t, err)
	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestParseTaskStatus(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "completed"} {
		_, err := ParseTaskStatus(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseTaskStatus("done")
	assert.Error(t, err)
}

func TestWindowSeconds(t *testing.T) {
	cases := []struct {
		window Window
		want   int64
	}{
		{WindowDay, 86400},
		{WindowWeek, 604800},
		{WindowMonth, 2592000},
		{WindowAll, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.window.Seconds(), "window=%s", tc.window)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("all")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	w, err = ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	_, err = ParseWindow("year")
	assert.Error(t, err)
}

func TestParseEmotionPhase(t *testing.T) {
	for _, s := range []string{"before", "during", "after"} {
		_, err := ParseEmotionPhase(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseEmotionPhase("mid")
	assert.Error(t, err)
}
