package validator

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNilDraft = errors.New("draft is nil")

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors is the ordered list of every violation found in one call.
// Validate methods only ever return it non-empty; a valid draft yields nil.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields lists the field paths in report order, duplicates included.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}
	return fields
}

// For returns the messages reported against a single field path.
func (v ValidationErrors) For(field string) []string {
	var messages []string
	for _, err := range v {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// result collapses an empty list to a nil error so "valid" and "has errors"
// can never be reported together.
func (v ValidationErrors) result() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
