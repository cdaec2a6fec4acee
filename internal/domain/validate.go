package domain

import (
	"regexp"
	"strings"
)

// rePhone accepts local numbers (leading zero) and country-prefixed digits.
var rePhone = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(strings.TrimSpace(s))
}

// RequiredOrderFields reports the order fields that must be present before
// the order can be submitted to the courier. An empty slice means the order
// is complete.
func RequiredOrderFields(o *Order) []string {
	missing := make([]string, 0, 7)
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("customer_name", o.CustomerName)
	check("customer_phone", o.CustomerPhone)
	check("address1", o.Address.Line1)
	check("postcode", o.Address.Postcode)
	check("city", o.Address.City)
	check("state", o.Address.State)
	check("product", o.Product)
	return missing
}
