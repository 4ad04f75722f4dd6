package export

import (
	"fmt"
	"os"
	"strings"

	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

// WriteTXT appends calculations to a text file as formatted blocks separated
// by a blank line, so it stays in step with the CSV it accompanies.
func WriteTXT(path string, calcs []model.Calculation, precision int) error {
	var b strings.Builder
	if hasContent(path) {
		b.WriteString("\n")
	}
	for i, c := range calcs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(format.FormatCalculation(&c, precision))
	}
	b.WriteString("\n")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open txt file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
