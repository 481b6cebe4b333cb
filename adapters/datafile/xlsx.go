package datafile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"launchdash/domain/launch"
)

// Column headers shared by the CSV and XLSX representations of the dataset.
const (
	headerSite    = "Launch Site"
	headerPayload = "Payload Mass (kg)"
	headerOutcome = "class"
	headerBooster = "Booster Version Category"
)

// readXLSX reads launch records from Sheet1 of an Excel workbook. Columns are
// located by header name so their order in the sheet does not matter.
func readXLSX(filePath string) ([]launch.Record, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have a header row and at least one data row")
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{headerSite, headerPayload, headerOutcome, headerBooster} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	records := make([]launch.Record, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		cell := func(header string) string {
			i := cols[header]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		payload, err := strconv.ParseFloat(cell(headerPayload), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad payload mass %q", rowIdx+2, cell(headerPayload))
		}
		outcome, err := strconv.Atoi(cell(headerOutcome))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad outcome %q", rowIdx+2, cell(headerOutcome))
		}

		records = append(records, launch.Record{
			LaunchSite:     cell(headerSite),
			PayloadMassKg:  payload,
			Outcome:        launch.Outcome(outcome),
			BoosterVersion: cell(headerBooster),
		})
	}
	return records, nil
}
