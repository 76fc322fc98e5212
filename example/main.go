package main

import (
	"fmt"
	"log"
	"time"

	"github.com/printworks/pressplan/pkg/application/services"
	"github.com/printworks/pressplan/pkg/infrastructure/events"
	"github.com/printworks/pressplan/pkg/infrastructure/repositories/memory"
)

// Demonstrates the quantity distribution flow: intake, a manual week
// override, and the daily breakdown built at submission time.
func main() {
	store := events.NewInMemoryEventStore()
	service := services.NewScheduleService(memory.NewJobRepository(), store)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	job, err := service.CreateJob("Spring Mailer", "envelope-print", start, due, "12,000")
	if err != nil {
		log.Fatalf("create job: %v", err)
	}

	fmt.Printf("Job %s: %d units over %d weeks\n", job.Name, job.Quantity, len(job.Weekly))
	fmt.Printf("Weekly allocation: %v\n", job.Weekly)

	// The planner pulls week 1 forward; the engine rebalances week 2.
	job, err = service.OverrideWeek(job.ID, 0, 8000)
	if err != nil {
		log.Fatalf("override week: %v", err)
	}
	fmt.Printf("After override:    %v\n", job.Weekly)

	deviation, err := service.Deviation(job.ID)
	if err != nil {
		log.Fatalf("deviation: %v", err)
	}
	fmt.Printf("Deviation from total: %+d\n", deviation)

	submission, err := service.Submit(job.ID)
	if err != nil {
		log.Fatalf("submit: %v", err)
	}

	fmt.Println("Daily split (Mon..Sun per week):")
	for w, days := range submission.DailySplit {
		fmt.Printf("  week %d: %v\n", w+1, days)
	}

	recorded, err := store.ReadEvents(string(job.ID), 1)
	if err != nil {
		log.Fatalf("read events: %v", err)
	}
	fmt.Printf("Events recorded: %d\n", len(recorded))
}
