package utils

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var e164Regex = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhoneNumber strips spaces, dashes and parentheses so the
// same number always keys the same OTP challenge.
func NormalizePhoneNumber(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(phone))
}

// ValidatePhoneNumber checks the E.164 shape after normalization
func ValidatePhoneNumber(phone string) bool {
	return e164Regex.MatchString(NormalizePhoneNumber(phone))
}
