// Package input parses numbers typed into the form fields and command line.
package input

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports text that could not be parsed as a number.
type FormatError struct {
	Field string
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: value is empty", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseFloat parses text entered for field. Surrounding whitespace is ignored.
func ParseFloat(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FormatError{Field: field, Input: s, Err: err}
	}
	return v, nil
}
