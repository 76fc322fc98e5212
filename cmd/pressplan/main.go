package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/printworks/pressplan/pkg/interfaces/cli/commands"
)

// editFlags collects repeatable -edit week=value overrides
type editFlags []string

func (e *editFlags) String() string {
	return fmt.Sprintf("%v", []string(*e))
}

func (e *editFlags) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	// Command line flags
	var edits editFlags
	var (
		jobsFile    = flag.String("jobs", "", "Path to job intake CSV file")
		jobName     = flag.String("name", "", "Job name for a single ad-hoc job")
		processType = flag.String("process", "", "Process type for a single ad-hoc job")
		startDate   = flag.String("start", "", "Start date (2006-01-02) for a single ad-hoc job")
		dueDate     = flag.String("due", "", "Due date (2006-01-02) for a single ad-hoc job")
		quantity    = flag.String("quantity", "", "Total quantity for a single ad-hoc job")
		format      = flag.String("format", "text", "Output format: text, json, csv")
		outputDir   = flag.String("output", "", "Output directory for results (optional)")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)
	flag.Var(&edits, "edit", "Manual week override as week=value (1-based, repeatable)")

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		JobsFile:    *jobsFile,
		JobName:     *jobName,
		ProcessType: *processType,
		StartDate:   *startDate,
		DueDate:     *dueDate,
		Quantity:    *quantity,
		Edits:       edits,
		Format:      *format,
		OutputDir:   *outputDir,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
