// export loads a launch dataset and writes the dashboard workbook without
// starting the web server.
//
// Usage:
//
//	export --data spacex_launch_dash.csv --out launch_dashboard.xlsx [--site "KSC LC-39A"]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"launchdash/adapters/datafile"
	"launchdash/adapters/excel"
	appsvc "launchdash/app"
	"launchdash/domain/launch"
)

func main() {
	dataFile := flag.String("data", "spacex_launch_dash.csv", "launch dataset (.csv or .xlsx)")
	outFile := flag.String("out", "launch_dashboard.xlsx", "output workbook path")
	site := flag.String("site", launch.AllSites, "launch site filter, or ALL")
	low := flag.Float64("low", 0, "payload range lower bound (kg)")
	high := flag.Float64("high", 10000, "payload range upper bound (kg)")
	flag.Parse()

	service, err := appsvc.NewDashboardService(context.Background(), datafile.NewReader(*dataFile), nil)
	if err != nil {
		log.Fatal("Failed to load launch data: ", err)
	}

	specs, err := service.ChartSpecs(*site, *low, *high)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	workbook, err := excel.BuildWorkbook(service.Table(), specs)
	if err != nil {
		log.Fatal("Failed to build workbook: ", err)
	}
	defer workbook.Close()

	if err := workbook.SaveAs(*outFile); err != nil {
		log.Fatal("Failed to save workbook: ", err)
	}

	s := service.Summary()
	fmt.Printf("Wrote %s: %d records, %d sites, %.1f%% success rate\n",
		*outFile, s.RecordCount, s.SiteCount, s.SuccessRate*100)
}
