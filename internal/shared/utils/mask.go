package utils

import "strings"

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}

// MaskNationalID keeps the first four and last two characters of a national ID.
// Example: "TEST123456HDFABC01" -> "TEST************01"
func MaskNationalID(nationalID string) string {
	if len(nationalID) <= 6 {
		return strings.Repeat("*", len(nationalID))
	}
	return nationalID[:4] + strings.Repeat("*", len(nationalID)-6) + nationalID[len(nationalID)-2:]
}
