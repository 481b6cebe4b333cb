package ui

import "net/http"

func (a *App) handleSuccessPie(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.service.SuccessPie(sel.Site))
}

func (a *App) handlePayloadScatter(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	spec, err := a.service.PayloadScatter(sel.Site, sel.Low, sel.High)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (a *App) handleSiteRates(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.service.SiteRates(sel.Site))
}

func (a *App) handlePayloadRates(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.service.PayloadRates(sel.Site))
}

func (a *App) handleBoosterRates(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.service.BoosterRates(sel.Site))
}

func (a *App) handleDashboardState(w http.ResponseWriter, r *http.Request) {
	sel, err := a.parseSelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	state, err := a.service.State(r.Context(), sel.Site, sel.Low, sel.High)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
