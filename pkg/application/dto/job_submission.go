package dto

import (
	"time"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

// JobSubmission is the outgoing job record posted to the hosted data API.
// DailySplit carries the daily breakdown in the only accepted encoding: one
// 7-integer array per week, Monday-first.
type JobSubmission struct {
	JobID       string    `json:"job_id"`
	JobName     string    `json:"job_name"`
	ProcessType string    `json:"process_type"`
	StartDate   string    `json:"start_date"`
	DueDate     string    `json:"due_date"`
	Quantity    int64     `json:"quantity"`
	WeeklySplit []int64   `json:"weekly_split"`
	DailySplit  [][]int64 `json:"daily_split"`
	Deviation   int64     `json:"deviation,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewJobSubmission assembles the wire record for a job and its current
// daily breakdown
func NewJobSubmission(job *entities.Job, daily entities.DailyAllocation, submittedAt time.Time) *JobSubmission {
	weekly := make([]int64, len(job.Weekly))
	for i, q := range job.Weekly {
		weekly[i] = int64(q)
	}

	dailySplit := make([][]int64, len(daily))
	for w, week := range daily {
		row := make([]int64, len(week))
		for d, q := range week {
			row[d] = int64(q)
		}
		dailySplit[w] = row
	}

	return &JobSubmission{
		JobID:       string(job.ID),
		JobName:     job.Name,
		ProcessType: job.ProcessType,
		StartDate:   job.Range.Start.Format("2006-01-02"),
		DueDate:     job.Range.End.Format("2006-01-02"),
		Quantity:    int64(job.Quantity),
		WeeklySplit: weekly,
		DailySplit:  dailySplit,
		Deviation:   int64(job.Weekly.Deviation(job.Quantity)),
		SubmittedAt: submittedAt,
	}
}
