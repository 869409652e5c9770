package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2020-01-01", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2020-01-04 10:00:00", time.Date(2020, 1, 4, 10, 0, 0, 0, time.UTC)},
		{"2019-12-31 23:59:59", time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, in := range []string{"", "2020/01/01", "2020-01-01T10:00:00Z", "2020-01-01 10:00", "yesterday", "2020-13-01",
		"2020-01-01 10:00:00.5", "2020-01-01 10:00:00,250"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeDateParse))
		})
	}
}

func TestRecipeSpecStartDate(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := RecipeSpec{}.StartDate(fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	start := "2020-02-03 04:05:06"
	got, err = RecipeSpec{Start: &start}.StartDate(fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC), got)

	bad := "03.02.2020"
	_, err = RecipeSpec{Start: &bad}.StartDate(fallback)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDateParse))
}
