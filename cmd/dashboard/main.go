package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"launchdash/adapters/archive"
	"launchdash/adapters/datafile"
	appsvc "launchdash/app"
	"launchdash/internal/config"
	"launchdash/internal/testkit"
	"launchdash/ports"
	"launchdash/ui"
)

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	var source ports.LaunchSource
	if cfg.Data.Demo {
		log.Printf("Demo mode: generating %d synthetic launch records", cfg.Data.DemoRecords)
		source = testkit.NewDemoSource(testkit.GeneratorConfig{
			RecordCount: cfg.Data.DemoRecords,
			Seed:        42,
		})
	} else {
		source = datafile.NewReader(cfg.Data.File)
	}

	var store ports.SnapshotStore
	if cfg.Archive.Path != "" {
		archiveStore, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			log.Fatal("Failed to open archive database: ", err)
		}
		defer archiveStore.Close()
		store = archiveStore
	}

	service, err := appsvc.NewDashboardService(context.Background(), source, store)
	if err != nil {
		log.Fatal("Failed to load launch data: ", err)
	}

	app, err := ui.NewApp(ui.Config{Port: cfg.Server.Port}, service)
	if err != nil {
		log.Fatal("Failed to create dashboard app: ", err)
	}

	log.Printf("Starting launch dashboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}
