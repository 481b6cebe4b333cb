package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// BuildWorkbook assembles a multi-sheet workbook holding the raw launch
// records plus one sheet per derived chart, so an export matches exactly what
// the dashboard currently shows.
func BuildWorkbook(table *launch.Table, specs []*chart.Spec) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeRecordsSheet(f, table); err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if err := writeChartSheet(f, spec); err != nil {
			return nil, err
		}
	}

	// excelize creates a default "Sheet1"; the records sheet replaces it.
	log.Printf("[Excel] Built workbook with %d records and %d chart sheets", table.Len(), len(specs))
	return f, nil
}

func writeRecordsSheet(f *excelize.File, table *launch.Table) error {
	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, "Launches"); err != nil {
		return fmt.Errorf("failed to rename records sheet: %w", err)
	}

	header := []interface{}{"Launch Site", "Payload Mass (kg)", "class", "Booster Version Category"}
	if err := f.SetSheetRow("Launches", "A1", &header); err != nil {
		return fmt.Errorf("failed to write records header: %w", err)
	}
	for i, r := range table.Records() {
		row := []interface{}{r.LaunchSite, r.PayloadMassKg, int(r.Outcome), r.BoosterVersion}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Launches", cell, &row); err != nil {
			return fmt.Errorf("failed to write record row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeChartSheet(f *excelize.File, spec *chart.Spec) error {
	name := sheetName(spec.Title)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	switch spec.Kind {
	case chart.KindScatter:
		header := []interface{}{spec.Encoding.XField, spec.Encoding.YField, spec.Encoding.ColorField}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for i, p := range spec.Points {
			row := []interface{}{p.X, p.Y, p.Category}
			if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return err
			}
		}
	case chart.KindPie:
		header := []interface{}{spec.Encoding.LabelField, spec.Encoding.ValueField}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for i, s := range spec.Slices {
			row := []interface{}{s.Label, s.Value}
			if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return err
			}
		}
	case chart.KindBar:
		header := []interface{}{spec.Encoding.XField, spec.Encoding.YField}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for i, b := range spec.Bars {
			row := []interface{}{b.Label, b.Value}
			if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetName shortens a chart title to Excel's 31-character sheet name limit.
func sheetName(title string) string {
	if len(title) <= 31 {
		return title
	}
	return title[:31]
}
