package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain dollars", "$1,234.50", 1234.50, false},
		{"negative sign", "-$500", -500, false},
		{"accounting negative", "($500.25)", -500.25, false},
		{"no symbol", "99.99", 99.99, false},
		{"trailing junk kept out", "$12.30 USD", 12.30, false},
		{"empty", "", 0, true},
		{"not a number", "N/A", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Currency(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"positive with sign", "+12.34%", 12.34, false},
		{"negative", "-5%", -5, false},
		{"bare number", "3.5", 3.5, false},
		{"empty", "", 0, true},
		{"dashes", "--", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Percent(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"thousands separator", "1,234", 1234, false},
		{"trailing percent", "85%", 85, false},
		{"negative", "-12", -12, false},
		{"fraction truncated", "42.9", 42, false},
		{"empty", "", 0, true},
		{"letters", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumber(t *testing.T) {
	got, err := Number("1,234.56")
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, got, 1e-9)

	_, err = Number("")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"two digit year", "12/30/25", time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), false},
		{"four digit year", "5/4/2025", time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), false},
		{"time suffix ignored", "5/4/25 11:54p ET", time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), false},
		{"iso fallback", "2025-05-04", time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), false},
		{"long form fallback", "May 4, 2025", time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "someday", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "jane-doe", Slugify("Jane Doe"))
	assert.Equal(t, "o-brien-co", Slugify("O'Brien & Co."))
	assert.Equal(t, "abc123", Slugify("ABC123"))
	assert.Equal(t, "", Slugify("!!!"))
}
