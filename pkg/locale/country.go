package locale

import (
	"regexp"
	"strings"
)

type Country struct {
	Code            string         // ISO 3166-1 alpha-2 country code (e.g., "IN", "US")
	Name            string         // Human-readable country name as entered on address forms
	DefaultTimezone string         // IANA timezone identifier (e.g., "Asia/Kolkata")
	PostalCode      *regexp.Regexp // nil means the postal code is not checked
	PostalCodeHint  string
}

var (
	Countries = map[string]Country{
		"IN": {
			Code:            "IN",
			Name:            "India",
			DefaultTimezone: "Asia/Kolkata",
			PostalCode:      regexp.MustCompile(`^\d{6}$`),
			PostalCodeHint:  "exactly 6 digits",
		},
		// Postal formats for the countries below are not enforced yet.
		"IL": {
			Code:            "IL",
			Name:            "Israel",
			DefaultTimezone: "Asia/Jerusalem",
		},
		"US": {
			Code:            "US",
			Name:            "United States",
			DefaultTimezone: "America/New_York",
		},
	}
)

// LookupCountry finds a country by display name or ISO code, ignoring case and
// surrounding whitespace.
func LookupCountry(nameOrCode string) (Country, bool) {
	key := strings.TrimSpace(nameOrCode)
	if key == "" {
		return Country{}, false
	}
	if c, ok := Countries[strings.ToUpper(key)]; ok {
		return c, true
	}
	for _, c := range Countries {
		if strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return Country{}, false
}
