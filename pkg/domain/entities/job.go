package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// JobID uniquely identifies a production job
type JobID string

// NewJobID returns a fresh random job identifier
func NewJobID() JobID {
	return JobID(uuid.NewString())
}

// Job represents a production job being scheduled: the intake form state the
// distribution engine computes against. Weekly holds the current weekly
// allocation, including any manual overrides applied through rebalancing.
type Job struct {
	ID          JobID
	Name        string
	ProcessType string
	Range       DateRange
	Quantity    Quantity
	Weekly      WeeklyAllocation
}

// NewJob creates a validated Job with no allocation computed yet
func NewJob(name, processType string, r DateRange, quantity Quantity) (*Job, error) {
	if name == "" {
		return nil, fmt.Errorf("job name cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}

	return &Job{
		ID:          NewJobID(),
		Name:        name,
		ProcessType: processType,
		Range:       r,
		Quantity:    quantity,
	}, nil
}

// Clone returns an independent copy of the job, including its allocation
func (j *Job) Clone() *Job {
	clone := *j
	clone.Weekly = j.Weekly.Clone()
	return &clone
}
