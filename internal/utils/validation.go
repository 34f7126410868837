package utils

import (
	"errors"
	"net/mail"
	"net/url"
	"strings"
)

// ValidateWebsiteURL validates that a URL is an absolute http(s) URL suitable
// for scraping.
func ValidateWebsiteURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url cannot be empty")
	}

	if len(rawURL) > 2048 {
		return errors.New("url too long (max 2048 characters)")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("url is not valid")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("url must use http or https")
	}

	if parsed.Host == "" {
		return errors.New("url must include a host")
	}

	return nil
}

// ValidateEmail validates an alert contact address.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email cannot be empty")
	}

	if len(email) > 254 {
		return errors.New("email too long (max 254 characters)")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("email is not valid")
	}

	// Reject display-name forms; only the bare address is stored.
	if addr.Address != email {
		return errors.New("email must be a bare address")
	}

	return nil
}

// ValidatePhone validates the optional SMS contact number. Empty is allowed.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	if len(phone) > 32 {
		return errors.New("phone too long (max 32 characters)")
	}

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			continue
		}
		if strings.ContainsRune("+-() .", r) {
			continue
		}
		return errors.New("phone contains invalid characters")
	}

	return nil
}
