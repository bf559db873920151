// Package loader reads the monitoring workbook into the four report tables.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tw-event-radar/radar/internal/constants"
	"github.com/tw-event-radar/radar/internal/models"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads the News, EventRadarPlus, CompanyHeat and RunLog sheets.
// A missing file or sheet fails with an error wrapping ErrMissingInput; cell
// values are passed through as text and never cause a row to be dropped.
func LoadWorkbook(path string) (*models.Bundle, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("stat workbook %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if missing := missingSheets(sheets); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (found: %s)", ErrMissingSheet, strings.Join(missing, ", "), strings.Join(sheets, ", "))
	}

	tables := make(map[string][][]string, len(constants.RequiredSheets))
	for _, name := range constants.RequiredSheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		tables[name] = rows
	}

	return &models.Bundle{
		News:         decode(tables[constants.SheetNews], newsColumns),
		RankedEvents: decode(tables[constants.SheetRankedEvent], eventColumns),
		CompanyHeat:  decode(tables[constants.SheetCompanyHeat], heatColumns),
		RunLog:       decode(tables[constants.SheetRunLog], runColumns),
	}, nil
}

func missingSheets(found []string) []string {
	present := make(map[string]bool, len(found))
	for _, s := range found {
		present[s] = true
	}
	var missing []string
	for _, s := range constants.RequiredSheets {
		if !present[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

// decode maps rows to records using the first row as header. Unknown headers
// are ignored; known headers absent from the sheet leave the field empty.
func decode[T any](rows [][]string, columns map[string]func(*T, string)) []T {
	out := []T{}
	if len(rows) == 0 {
		return out
	}

	setters := make([]func(*T, string), len(rows[0]))
	for i, h := range rows[0] {
		setters[i] = columns[strings.TrimSpace(h)]
	}

	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		var rec T
		for i, set := range setters {
			if set == nil || i >= len(row) {
				continue
			}
			set(&rec, row[i])
		}
		out = append(out, rec)
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
