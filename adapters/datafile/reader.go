package datafile

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

// Reader loads the launch table from a CSV or XLSX file, picked by extension.
// It implements ports.LaunchSource.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for the given file path
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if ext := strings.ToLower(filepath.Ext(filePath)); ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Load reads the full launch table into memory.
func (r *Reader) Load(ctx context.Context) (*launch.Table, error) {
	start := time.Now()
	log.Printf("[DataFile] Loading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("data file " + r.filePath)
	}

	var records []launch.Record
	var err error
	switch r.fileType {
	case "xlsx":
		records, err = readXLSX(r.filePath)
	default:
		records, err = readCSV(r.filePath)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", r.filePath)
	}

	if err := validate(records); err != nil {
		return nil, err
	}

	log.Printf("[DataFile] Loaded %d launch records in %.2fms",
		len(records), float64(time.Since(start).Nanoseconds())/1e6)
	return launch.NewTable(records), nil
}

// Name returns the source file path for logging and snapshots.
func (r *Reader) Name() string {
	return r.filePath
}

// validate rejects rows the derivations cannot interpret.
func validate(records []launch.Record) error {
	for i, r := range records {
		if r.PayloadMassKg < 0 {
			return errors.DataFormat(rowError(i, "negative payload mass"))
		}
		if r.Outcome != launch.OutcomeFailure && r.Outcome != launch.OutcomeSuccess {
			return errors.DataFormat(rowError(i, "outcome must be 0 or 1"))
		}
		if r.LaunchSite == "" {
			return errors.DataFormat(rowError(i, "missing launch site"))
		}
	}
	return nil
}

func rowError(index int, message string) string {
	// +2: one-based plus the header row, matching what users see in the file.
	return "row " + strconv.Itoa(index+2) + ": " + message
}
