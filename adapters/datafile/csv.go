package datafile

import (
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"launchdash/domain/launch"
)

// readCSV decodes launch records from a CSV file. Extra columns in the
// source file are ignored.
func readCSV(filePath string) ([]launch.Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return DecodeCSV(f)
}

// DecodeCSV decodes launch records from CSV data. The first line must be a
// header; columns are matched to Record fields by the csv struct tags.
func DecodeCSV(r io.Reader) ([]launch.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	var records []launch.Record
	if err := csvutil.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode launch CSV data: %w", err)
	}
	return records, nil
}

// EncodeCSV serializes launch records to CSV with the canonical header row.
func EncodeCSV(records []launch.Record) ([]byte, error) {
	out, err := csvutil.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode launch CSV data: %w", err)
	}
	return out, nil
}
