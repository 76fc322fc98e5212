package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/printworks/pressplan/pkg/application/dto"
	"github.com/printworks/pressplan/pkg/application/services"
	"github.com/printworks/pressplan/pkg/domain/entities"
	csvrepo "github.com/printworks/pressplan/pkg/infrastructure/repositories/csv"
	"github.com/printworks/pressplan/pkg/infrastructure/repositories/memory"
	"github.com/printworks/pressplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	JobsFile    string
	JobName     string
	ProcessType string
	StartDate   string
	DueDate     string
	Quantity    string
	Edits       []string
	Format      string
	OutputDir   string
	Verbose     bool
	Help        bool
}

// PlanCommand distributes job quantities across weeks and days and renders
// the result
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	service := services.NewScheduleService(memory.NewJobRepository(), nil)

	jobs, err := c.loadJobs(service)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Jobs loaded: %d\n\n", len(jobs))
	}

	// Manual week overrides apply to every loaded job; in the dashboard this
	// corresponds to the user editing one week's cell.
	for _, job := range jobs {
		for _, edit := range c.config.Edits {
			weekIndex, newValue, err := parseEdit(edit)
			if err != nil {
				return fmt.Errorf("invalid -edit %q: %w", edit, err)
			}
			if _, err := service.OverrideWeek(job.ID, weekIndex, newValue); err != nil {
				return fmt.Errorf("failed to apply edit %q to %s: %w", edit, job.Name, err)
			}
		}
	}

	var submissions []*dto.JobSubmission
	for _, job := range jobs {
		submission, err := service.Submit(job.ID)
		if err != nil {
			return fmt.Errorf("failed to build submission for %s: %w", job.Name, err)
		}
		submissions = append(submissions, submission)
	}

	return output.Generate(submissions, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

// loadJobs creates jobs from the CSV file or from the single-job flags
func (c *PlanCommand) loadJobs(service *services.ScheduleService) ([]*entities.Job, error) {
	if c.config.JobsFile != "" {
		loader := csvrepo.NewLoader()
		records, err := loader.LoadJobs(c.config.JobsFile)
		if err != nil {
			return nil, fmt.Errorf("error loading jobs: %w", err)
		}

		var jobs []*entities.Job
		for _, record := range records {
			job, err := service.CreateJob(record.Name, record.ProcessType,
				record.Range.Start, record.Range.End,
				strconv.FormatInt(int64(record.Quantity), 10))
			if err != nil {
				return nil, fmt.Errorf("failed to create job %s: %w", record.Name, err)
			}
			jobs = append(jobs, job)
		}
		return jobs, nil
	}

	start, err := time.Parse("2006-01-02", c.config.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid -start %q: %w", c.config.StartDate, err)
	}
	due, err := time.Parse("2006-01-02", c.config.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid -due %q: %w", c.config.DueDate, err)
	}

	name := c.config.JobName
	if name == "" {
		name = "ad-hoc job"
	}

	job, err := service.CreateJob(name, c.config.ProcessType, start, due, c.config.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return []*entities.Job{job}, nil
}

// validateInputs checks that either a jobs file or the single-job flags are
// provided
func (c *PlanCommand) validateInputs() error {
	if c.config.JobsFile != "" {
		return nil
	}
	if c.config.StartDate == "" || c.config.DueDate == "" {
		return fmt.Errorf("either -jobs or both -start and -due must be provided")
	}
	return nil
}

// parseEdit parses a week override of the form "week=value", 1-based week
func parseEdit(edit string) (int, entities.Quantity, error) {
	parts := strings.SplitN(edit, "=", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected week=value")
	}

	week, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week number %q", parts[0])
	}

	value, err := entities.ParseQuantity(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return week - 1, value, nil
}

// showHelp prints usage information
func (c *PlanCommand) showHelp() {
	fmt.Println(`pressplan - production quantity distribution

Distributes a job's total quantity across the calendar weeks of its date
range and derives a Monday-first daily breakdown per week, honoring partial
weeks at the range boundaries.

Usage:
  pressplan -jobs jobs.csv [options]
  pressplan -start 2024-01-01 -due 2024-01-14 -quantity 12000 [options]

Options:
  -jobs        Path to job intake CSV (job_name,process_type,start_date,due_date,quantity)
  -name        Job name for a single ad-hoc job
  -process     Process type for a single ad-hoc job
  -start       Start date (2006-01-02) for a single ad-hoc job
  -due         Due date (2006-01-02) for a single ad-hoc job
  -quantity    Total quantity for a single ad-hoc job
  -edit        Manual week override as week=value (1-based, repeatable)
  -format      Output format: text, json, csv (default text)
  -output      Output directory for json/csv files
  -verbose     Enable verbose output
  -help        Show this message`)
}
