package utils

import (
	"regexp"

	"github.com/piresc/smsmock/internal/pkg/apperror"
)

const countryCode = "91"

var (
	nonDigit       = regexp.MustCompile(`\D`)
	localMobile    = regexp.MustCompile(`^[6-9]\d{9}$`)
	prefixedMobile = regexp.MustCompile(`^91[6-9]\d{9}$`)
)

// NormalizePhone strips formatting from a phone number and returns the
// 10-digit national mobile number. A leading 91 country code is removed.
func NormalizePhone(phone string) (string, error) {
	digits := nonDigit.ReplaceAllString(phone, "")

	if localMobile.MatchString(digits) {
		return digits, nil
	}

	if prefixedMobile.MatchString(digits) {
		return digits[len(countryCode):], nil
	}

	return "", apperror.ErrInvalidPhoneNumber
}

// IsValidPhone reports whether the number can be normalized
func IsValidPhone(phone string) bool {
	_, err := NormalizePhone(phone)
	return err == nil
}
