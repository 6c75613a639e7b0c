package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean plus7 number", "+79991234567", "+7 (999) 123-45-67"},
		{"leading 8 normalized to 7", "89991234567", "+7 (999) 123-45-67"},
		{"bare 10 digits", "9991234567", "+7 (999) 123-45-67"},
		{"already formatted", "+7 (999) 123-45-67", "+7 (999) 123-45-67"},
		{"with dashes and spaces", "8 999 123-45-67", "+7 (999) 123-45-67"},
		{"too short returned as is", "12345", "12345"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhoneNumber(tt.input))
		})
	}
}

func TestCleanPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted number", "+7 (999) 123-45-67", "+79991234567"},
		{"leading 8 normalized to 7", "89991234567", "+79991234567"},
		{"bare 10 digits get 7 prefix", "9991234567", "+79991234567"},
		{"already clean", "+79991234567", "+79991234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPhoneNumber(tt.input))
		})
	}
}

func TestCleanThenFormatRoundTrip(t *testing.T) {
	clean := CleanPhoneNumber("8 (999) 123-45-67")
	assert.Equal(t, "+79991234567", clean)
	assert.Equal(t, "+7 (999) 123-45-67", FormatPhoneNumber(clean))
}

func TestPhoneDigitCount(t *testing.T) {
	assert.Equal(t, 11, PhoneDigitCount("+79991234567"))
	assert.Equal(t, 5, PhoneDigitCount("1-2-3-4-5"))
	assert.Equal(t, 0, PhoneDigitCount("abc"))
}
