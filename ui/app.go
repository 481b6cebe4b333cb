package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"launchdash/app"
)

//go:embed templates/* static/* methodology.md
var embeddedFiles embed.FS

// App represents the dashboard web application
type App struct {
	router    *chi.Mux
	service   *app.DashboardService
	templates *template.Template
	port      string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new dashboard application around a loaded service
func NewApp(config Config, service *app.DashboardService) (*App, error) {
	funcMap := template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"kg":  func(v float64) string { return fmt.Sprintf("%.0f kg", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		templates: templates,
		port:      config.Port,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Pages
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/methodology", a.handleMethodology)

	// Chart API
	a.router.Get("/api/charts/success-pie", a.handleSuccessPie)
	a.router.Get("/api/charts/payload-scatter", a.handlePayloadScatter)
	a.router.Get("/api/charts/success-rate/site", a.handleSiteRates)
	a.router.Get("/api/charts/success-rate/payload", a.handlePayloadRates)
	a.router.Get("/api/charts/success-rate/booster", a.handleBoosterRates)
	a.router.Get("/api/dashboard", a.handleDashboardState)

	// Metadata API
	a.router.Get("/api/sites", a.handleSites)
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/snapshots", a.handleSnapshots)

	// Exports
	a.router.Get("/api/export/xlsx", a.handleExportXLSX)
	a.router.Get("/api/export/csv", a.handleExportCSV)
}

// Router exposes the HTTP handler, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("[UI] Starting launch dashboard on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("[UI] Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
