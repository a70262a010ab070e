package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aoc/pkg/errors"
)

func TestParsePart(t *testing.T) {
	tests := []struct {
		input   string
		want    Part
		wantErr bool
	}{
		{"1", One, false},
		{"one", One, false},
		{" Two ", Two, false},
		{"2", Two, false},
		{"3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePart(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartNames(t *testing.T) {
	assert.Equal(t, "1", One.String())
	assert.Equal(t, "two", Two.Name())
	assert.Equal(t, "unknown", Part(7).String())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		day      string
		want     ID
		wantCode errors.ErrorCode
	}{
		{name: "plain_numbers", year: "2020", day: "1", want: ID{2020, 1}},
		{name: "zero_padded_day", year: "2022", day: "05", want: ID{2022, 5}},
		{name: "day_prefix", year: "2022", day: "Day3", want: ID{2022, 3}},
		{name: "non_numeric_year", year: "twenty", day: "1", wantCode: errors.ErrInvalidInput},
		{name: "day_out_of_range", year: "2020", day: "26", wantCode: errors.ErrInvalidInput},
		{name: "year_before_first_event", year: "2014", day: "1", wantCode: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.year, tt.day)
			if tt.wantCode != "" {
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDKeyRoundTrip(t *testing.T) {
	id := ID{Year: 2020, Day: 4}
	assert.Equal(t, "2020/04", id.String())

	parsed, err := ParseKey(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseKey("2020-04")
	assert.Error(t, err)
}

func TestIDCompare(t *testing.T) {
	assert.Negative(t, ID{2020, 4}.Compare(ID{2022, 1}))
	assert.Positive(t, ID{2022, 5}.Compare(ID{2022, 1}))
	assert.Zero(t, ID{2022, 5}.Compare(ID{2022, 5}))
	assert.True(t, ID{}.IsZero())
}
