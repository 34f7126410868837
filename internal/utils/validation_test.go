package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWebsiteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https url", "https://example.com", false},
		{"valid http url with path", "http://example.com/news", false},
		{"empty url", "", true},
		{"missing scheme", "example.com", true},
		{"unsupported scheme", "ftp://example.com", true},
		{"scheme only", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWebsiteURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid address", "owner@example.com", false},
		{"empty address", "", true},
		{"missing domain", "owner@", true},
		{"display name form", "Owner <owner@example.com>", true},
		{"not an address", "not-an-email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone(""))
	assert.NoError(t, ValidatePhone("+1 (555) 010-0100"))
	assert.Error(t, ValidatePhone("call me maybe"))
}
