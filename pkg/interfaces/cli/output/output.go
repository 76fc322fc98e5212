package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/printworks/pressplan/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Generate creates output in the specified format
func Generate(submissions []*dto.JobSubmission, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(submissions, config)
	case "json":
		return generateJSONOutput(submissions, config)
	case "csv":
		return generateCSVOutput(submissions, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(submissions []*dto.JobSubmission, config Config) error {
	fmt.Printf("📊 Production Quantity Distribution\n")
	fmt.Printf("===================================\n\n")
	fmt.Printf("Jobs: %d\n\n", len(submissions))

	for _, sub := range submissions {
		fmt.Printf("📋 %s (%s)\n", sub.JobName, sub.ProcessType)
		fmt.Printf("   %s .. %s, %d units\n", sub.StartDate, sub.DueDate, sub.Quantity)

		fmt.Printf("%-8s %-10s %-s\n", "Week", "Qty", "Daily (Mon..Sun)")
		fmt.Printf("%-8s %-10s %-s\n", "--------", "----------", "----------------")
		for w, qty := range sub.WeeklySplit {
			fmt.Printf("%-8d %-10d %v\n", w+1, qty, sub.DailySplit[w])
		}

		if sub.Deviation != 0 {
			fmt.Printf("⚠️  Allocated sum differs from job total by %+d units\n", sub.Deviation)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output of the submission records
func generateJSONOutput(submissions []*dto.JobSubmission, config Config) error {
	jsonData, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
	} else {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "job_submissions.json")
		err = os.WriteFile(filename, jsonData, 0644)
		if err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}

		if config.Verbose {
			fmt.Printf("💾 JSON results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(submissions []*dto.JobSubmission, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	weeklyFile := filepath.Join(config.OutputDir, "weekly_allocations.csv")
	if err := writeWeeklyCSV(submissions, weeklyFile); err != nil {
		return fmt.Errorf("failed to write weekly allocations CSV: %w", err)
	}

	dailyFile := filepath.Join(config.OutputDir, "daily_breakdown.csv")
	if err := writeDailyCSV(submissions, dailyFile); err != nil {
		return fmt.Errorf("failed to write daily breakdown CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Weekly Allocations: %s\n", weeklyFile)
		fmt.Printf("  Daily Breakdown: %s\n", dailyFile)
	}

	return nil
}

// writeWeeklyCSV writes one row per job week bucket
func writeWeeklyCSV(submissions []*dto.JobSubmission, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"job_name", "week", "quantity", "deviation"}); err != nil {
		return err
	}

	for _, sub := range submissions {
		for w, qty := range sub.WeeklySplit {
			record := []string{
				sub.JobName,
				strconv.Itoa(w + 1),
				strconv.FormatInt(qty, 10),
				strconv.FormatInt(sub.Deviation, 10),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return writer.Error()
}

// writeDailyCSV writes one row per job week with Monday-first day columns
func writeDailyCSV(submissions []*dto.JobSubmission, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"job_name", "week"}
	for _, day := range dayNames {
		header = append(header, day)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, sub := range submissions {
		for w, days := range sub.DailySplit {
			record := []string{sub.JobName, strconv.Itoa(w + 1)}
			for _, qty := range days {
				record = append(record, strconv.FormatInt(qty, 10))
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return writer.Error()
}
