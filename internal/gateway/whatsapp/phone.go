package whatsapp

import "strings"

// NormalizePhone strips formatting characters and rewrites a local leading
// zero to the configured country-code prefix, e.g. "012-345 6789" → "60123456789".
func NormalizePhone(phone, countryCode string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		return countryCode + digits[1:]
	}
	return digits
}
