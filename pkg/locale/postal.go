package locale

// ValidPostalCode checks code against the country's postal format. Countries
// without a registered format, and unknown countries, always pass.
func ValidPostalCode(country, code string) bool {
	c, ok := LookupCountry(country)
	if !ok || c.PostalCode == nil {
		return true
	}
	return c.PostalCode.MatchString(code)
}

// PostalCodeHint describes the expected format, or "" when none is enforced.
func PostalCodeHint(country string) string {
	c, ok := LookupCountry(country)
	if !ok || c.PostalCode == nil {
		return ""
	}
	return c.PostalCodeHint
}
