package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to the list of messages describing why
// it failed. A nil or empty map means the command is valid.
type FieldErrors map[string][]string

// Add appends a message to the given field's error list.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error implements the error interface so a FieldErrors value can travel
// through the service layer like any other failure.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
