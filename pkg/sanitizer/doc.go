// Package sanitizer provides read-only normalization helpers used when comparing
// draft values against rule constants.
//
// All functions are idempotent and never fail: they return a normalized copy and
// leave the caller's draft untouched. Validation decides what to do with the result.
//
// Normalization includes:
//   - Strings: Collapse whitespace, trim leading/trailing spaces
//   - Keys: Collapsed and lowercased, so "Razor Pay " and "razor pay" compare equal
//   - Codes: Trimmed and uppercased, so " upi" and "UPI" compare equal
package sanitizer
