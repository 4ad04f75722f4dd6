package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"id",
	"kind",
	"mode",
	"input_volts",
	"used_volts",
	"code",
	"defaulted",
	"resistance",
	"capacitance",
	"time_constant_s",
	"frequency_hz",
	"error",
}

// WriteCSV appends calculations to a CSV file (semicolon-separated). The
// header row is written first when the file is missing or empty.
func WriteCSV(path string, calcs []model.Calculation) error {
	needHeader := !hasContent(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if needHeader {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, c := range calcs {
		if err := w.Write(csvRow(c)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func csvRow(c model.Calculation) []string {
	row := []string{
		c.Timestamp.Format("02.01.2006"),
		c.Timestamp.Format("15:04:05"),
		c.ID,
		string(c.Kind),
		c.Mode,
	}

	// ADC columns stay empty for RC rows and vice versa.
	switch {
	case c.Kind == model.KindADC && c.Error != "":
		row = append(row, c.VoltsText, "", "", "")
	case c.Kind == model.KindADC:
		defaulted := "0"
		if c.Defaulted {
			defaulted = "1"
		}
		row = append(row,
			number(c.InputVolts),
			number(c.UsedVolts),
			strconv.Itoa(c.Code),
			defaulted,
		)
	default:
		row = append(row, "", "", "", "")
	}

	switch {
	case c.Kind == model.KindRC && c.Error != "":
		// Unparsed input is kept verbatim so the row shows what was entered.
		row = append(row, c.ResistanceText, c.CapacitanceText, "", "")
	case c.Kind == model.KindRC:
		row = append(row,
			number(c.Resistance),
			number(c.Capacitance),
			number(c.TimeConstant),
			number(c.FrequencyHz),
		)
	default:
		row = append(row, "", "", "", "")
	}

	return append(row, c.Error)
}

// number renders v at full precision.
func number(v float64) string {
	return format.FormatNumber(v, -1)
}

// WriteReport appends calcs to csvPath and to its .txt twin, creating the
// directory if needed. It returns the text report path.
func WriteReport(csvPath string, calcs []model.Calculation, precision int) (string, error) {
	if err := EnsureDir(csvPath); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	if err := WriteCSV(csvPath, calcs); err != nil {
		return "", err
	}
	txtPath := TXTPath(csvPath)
	if err := WriteTXT(txtPath, calcs, precision); err != nil {
		return "", err
	}
	return txtPath, nil
}
