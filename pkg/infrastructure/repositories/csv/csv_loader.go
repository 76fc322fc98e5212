package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

// Loader handles loading job intake data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// JobRecord is one row of the job intake file before allocation
type JobRecord struct {
	Name        string
	ProcessType string
	Range       entities.DateRange
	Quantity    entities.Quantity
}

// LoadJobs loads job intake rows from a CSV file. Quantities are parsed
// permissively: a row with an unparsable or negative quantity loads as a
// zero-quantity job rather than failing the whole file, matching how
// partially filled intake forms are treated.
func (l *Loader) LoadJobs(filename string) ([]JobRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open jobs file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("jobs CSV must have header and at least one data row")
	}

	expectedHeader := []string{"job_name", "process_type", "start_date", "due_date", "quantity"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("jobs CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var jobs []JobRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("jobs CSV row %d: expected %d columns, got %d",
				i+2, len(expectedHeader), len(record))
		}

		job, err := parseJobRecord(record)
		if err != nil {
			return nil, fmt.Errorf("jobs CSV row %d: %w", i+2, err)
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

// parseJobRecord parses a single job intake row
func parseJobRecord(record []string) (JobRecord, error) {
	name := strings.TrimSpace(record[0])
	if name == "" {
		return JobRecord{}, fmt.Errorf("job_name cannot be empty")
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(record[2]))
	if err != nil {
		return JobRecord{}, fmt.Errorf("invalid start_date %q: %w", record[2], err)
	}

	due, err := time.Parse("2006-01-02", strings.TrimSpace(record[3]))
	if err != nil {
		return JobRecord{}, fmt.Errorf("invalid due_date %q: %w", record[3], err)
	}

	dateRange, err := entities.NewDateRange(start, due)
	if err != nil {
		return JobRecord{}, err
	}

	quantity, err := entities.ParseQuantity(record[4])
	if err != nil {
		quantity = 0
	}

	return JobRecord{
		Name:        name,
		ProcessType: strings.TrimSpace(record[1]),
		Range:       *dateRange,
		Quantity:    quantity,
	}, nil
}

// validateHeader checks that the CSV header matches the expected columns
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
