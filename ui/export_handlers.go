package ui

import (
	"log"
	"net/http"

	"launchdash/adapters/datafile"
	"launchdash/adapters/excel"
)

func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	specs, err := a.service.ChartSpecs(sel.Site, sel.Low, sel.High)
	if err != nil {
		writeError(w, err)
		return
	}
	workbook, err := excel.BuildWorkbook(a.service.Table(), specs)
	if err != nil {
		writeError(w, err)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="launch_dashboard.xlsx"`)
	if err := workbook.Write(w); err != nil {
		log.Printf("[UI] Failed to stream workbook: %v", err)
	}
}

func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	out, err := datafile.EncodeCSV(a.service.Table().Records())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="launch_records.csv"`)
	if _, err := w.Write(out); err != nil {
		log.Printf("[UI] Failed to stream CSV: %v", err)
	}
}
