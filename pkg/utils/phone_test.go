package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"local with formatting", "(11) 99930-0861", "+5511999300861", false},
		{"local digits only", "11999300861", "+5511999300861", false},
		{"with country code", "+55 11 99930-0861", "+5511999300861", false},
		{"country code no plus", "5511999300861", "+5511999300861", false},
		{"landline 10 digits", "1133334444", "+551133334444", false},
		{"empty", "", "", true},
		{"too short", "9993008", "", true},
		{"letters", "abcdefghijk", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPhoneNumberForDisplay(t *testing.T) {
	assert.Equal(t, "(11) 99930-0861", FormatPhoneNumberForDisplay("+5511999300861"))
	assert.Equal(t, "(11) 3333-4444", FormatPhoneNumberForDisplay("+551133334444"))
	assert.Equal(t, "+123", FormatPhoneNumberForDisplay("+123"))
}

func TestValidateMobileNumber(t *testing.T) {
	assert.True(t, ValidateMobileNumber("(11) 99930-0861"))
	assert.True(t, ValidateMobileNumber("+5521987654321"))
	assert.False(t, ValidateMobileNumber("1133334444"), "landline is not mobile")
	assert.False(t, ValidateMobileNumber(""))
}
