package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int64
		want bool
	}{
		{2000, true},  // fourth-century exception
		{1900, false}, // century
		{2004, true},  // plain quadrennial
		{2023, false},
		{2024, true},
		{0, true},
		{-1, false},
		{-4, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		year  int64
		month int
		day   int
		want  bool
	}{
		{"leap_feb_29_2000", 2000, 2, 29, true},
		{"nonleap_feb_29_1900", 1900, 2, 29, false},
		{"leap_feb_29_2004", 2004, 2, 29, true},
		{"nonleap_feb_29_2023", 2023, 2, 29, false},
		{"ordinary", 2023, 6, 15, true},
		{"month_zero", 2023, 0, 1, false},
		{"month_thirteen", 2023, 13, 1, false},
		{"day_zero", 2023, 6, 0, false},
		{"april_31", 2023, 4, 31, false},
		{"december_31", 2023, 12, 31, true},
		{"negative_year", -44, 3, 15, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.year, tt.month, tt.day))
		})
	}
}

func TestFromFieldsNeverFails(t *testing.T) {
	// Nonsense fields are representable, just invalid.
	d := FromFields(2023, 13, 30)
	assert.False(t, d.Valid())
	assert.Equal(t, int64(2023), d.Year)
	assert.Equal(t, 13, d.Month)
	assert.Equal(t, 30, d.Day)

	assert.True(t, FromFields(2023, 2, 28).Valid())
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2023, 1))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 30, DaysInMonth(2023, 4))
	assert.Equal(t, 0, DaysInMonth(2023, 0))
	assert.Equal(t, 0, DaysInMonth(2023, 13))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2023-06-05", FromFields(2023, 6, 5).String())
	assert.Equal(t, "2023-02-31 (invalid)", FromFields(2023, 2, 31).String())
}
