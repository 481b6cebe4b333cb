package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gomarkdown/markdown"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

// selection holds the parsed UI control values of one request.
type selection struct {
	Site string
	Low  float64
	High float64
}

// parseSelection reads site/low/high query parameters, defaulting to ALL and
// the full payload bounds of the loaded table.
func (a *App) parseSelection(r *http.Request) (selection, error) {
	sel := selection{Site: launch.AllSites}
	if site := r.URL.Query().Get("site"); site != "" {
		sel.Site = site
	}

	min, max := a.service.Table().PayloadBounds()
	sel.Low, sel.High = min, max

	if raw := r.URL.Query().Get("low"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sel, errors.New(errors.CodeInvalidRange, "low must be a number")
		}
		sel.Low = v
	}
	if raw := r.URL.Query().Get("high"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sel, errors.New(errors.CodeInvalidRange, "high must be a number")
		}
		sel.High = v
	}
	if sel.Low > sel.High {
		return sel, errors.InvalidRange(sel.Low, sel.High)
	}
	return sel, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[UI] Failed to encode response: %v", err)
	}
}

// writeError maps application error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidRange:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary := a.service.Summary()
	data := map[string]interface{}{
		"Title":   "Launch Records Dashboard",
		"Sites":   a.service.Sites(),
		"Summary": summary,
		"Source":  a.service.Source(),
	}
	a.renderTemplate(w, "dashboard.html", data)
}

func (a *App) handleMethodology(w http.ResponseWriter, r *http.Request) {
	src, err := embeddedFiles.ReadFile("methodology.md")
	if err != nil {
		log.Printf("[UI] Methodology doc missing: %v", err)
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	body := markdown.ToHTML(src, nil, nil)
	data := map[string]interface{}{
		"Title": "Methodology",
		// Rendered from an embedded document we author, not user input.
		"Body": template.HTML(body),
	}
	a.renderTemplate(w, "methodology.html", data)
}

func (a *App) handleSites(w http.ResponseWriter, r *http.Request) {
	sites := append([]string{launch.AllSites}, a.service.Sites()...)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sites": sites,
		"count": len(sites),
	})
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.service.Summary())
}

func (a *App) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	snaps, err := a.service.Snapshots(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshots": snaps,
		"count":     len(snaps),
	})
}
