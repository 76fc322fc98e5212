package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/printworks/pressplan/pkg/application/dto"
	"github.com/printworks/pressplan/pkg/domain/entities"
	"github.com/printworks/pressplan/pkg/domain/repositories"
	domain "github.com/printworks/pressplan/pkg/domain/services"
	"github.com/printworks/pressplan/pkg/infrastructure/events"
)

// ScheduleService is the imperative shell around the distribution engine: it
// owns the mutable form state (the job and its current weekly allocation)
// and threads it through the pure allocation functions. Any change to the
// date range or total quantity recomputes the weekly allocation from
// scratch, discarding manual overrides.
type ScheduleService struct {
	jobs   repositories.JobRepository
	events events.EventStore
}

// NewScheduleService creates a schedule service backed by the given job
// repository. The event store may be nil when no audit stream is wanted.
func NewScheduleService(jobs repositories.JobRepository, store events.EventStore) *ScheduleService {
	return &ScheduleService{
		jobs:   jobs,
		events: store,
	}
}

// CreateJob registers a new job and computes its initial weekly allocation.
// The quantity is taken as entered on the intake form: input that does not
// parse as a non-negative number yields a job with an empty allocation
// rather than an error.
func (s *ScheduleService) CreateJob(name, processType string, start, due time.Time, quantityInput string) (*entities.Job, error) {
	dateRange, err := entities.NewDateRange(start, due)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	quantity, qtyErr := entities.ParseQuantity(quantityInput)

	job, err := entities.NewJob(name, processType, *dateRange, quantity)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if qtyErr != nil {
		job.Weekly = entities.WeeklyAllocation{}
	} else {
		weekly, err := domain.AllocateWeeks(job.Range, job.Quantity)
		if err != nil {
			return nil, fmt.Errorf("create job: %w", err)
		}
		job.Weekly = weekly
	}

	if err := s.jobs.Save(job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.emit(job.ID, events.NewJobCreatedEvent(*job))
	s.emit(job.ID, events.NewAllocationComputedEvent(job.ID, job.Weekly))

	return job, nil
}

// SetDateRange changes a job's start and due dates and recomputes the weekly
// allocation from scratch. Manual week overrides do not survive this.
func (s *ScheduleService) SetDateRange(id entities.JobID, start, due time.Time) (*entities.Job, error) {
	dateRange, err := entities.NewDateRange(start, due)
	if err != nil {
		return nil, fmt.Errorf("set date range: %w", err)
	}

	job, err := s.jobs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("set date range: %w", err)
	}

	oldRange := job.Range
	job.Range = *dateRange

	weekly, err := domain.AllocateWeeks(job.Range, job.Quantity)
	if err != nil {
		return nil, fmt.Errorf("set date range: %w", err)
	}
	job.Weekly = weekly

	if err := s.jobs.Save(job); err != nil {
		return nil, fmt.Errorf("set date range: %w", err)
	}

	s.emit(id, events.NewDateRangeChangedEvent(id, oldRange, job.Range))
	s.emit(id, events.NewAllocationComputedEvent(id, job.Weekly))

	return job, nil
}

// SetQuantity changes a job's total quantity and recomputes the weekly
// allocation from scratch, discarding manual overrides. Input that does not
// parse as a non-negative number leaves the job with an empty allocation.
func (s *ScheduleService) SetQuantity(id entities.JobID, quantityInput string) (*entities.Job, error) {
	job, err := s.jobs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("set quantity: %w", err)
	}

	oldQuantity := job.Quantity

	quantity, qtyErr := entities.ParseQuantity(quantityInput)
	job.Quantity = quantity

	if qtyErr != nil {
		job.Weekly = entities.WeeklyAllocation{}
	} else {
		weekly, err := domain.AllocateWeeks(job.Range, job.Quantity)
		if err != nil {
			return nil, fmt.Errorf("set quantity: %w", err)
		}
		job.Weekly = weekly
	}

	if err := s.jobs.Save(job); err != nil {
		return nil, fmt.Errorf("set quantity: %w", err)
	}

	s.emit(id, events.NewQuantityChangedEvent(id, oldQuantity, job.Quantity))
	s.emit(id, events.NewAllocationComputedEvent(id, job.Weekly))

	return job, nil
}

// OverrideWeek applies a manual edit to one week's bucket and rebalances the
// remaining weeks to absorb the difference. If zero-flooring forced the sum
// to drift from the job total, the drift is available through Deviation; it
// is never auto-corrected here.
func (s *ScheduleService) OverrideWeek(id entities.JobID, weekIndex int, newValue entities.Quantity) (*entities.Job, error) {
	job, err := s.jobs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("override week: %w", err)
	}

	weekly, err := domain.Rebalance(job.Weekly, weekIndex, newValue, job.Quantity)
	if err != nil {
		return nil, fmt.Errorf("override week: %w", err)
	}
	job.Weekly = weekly

	if err := s.jobs.Save(job); err != nil {
		return nil, fmt.Errorf("override week: %w", err)
	}

	s.emit(id, events.NewWeekOverriddenEvent(id, weekIndex, newValue, job.Weekly, job.Weekly.Deviation(job.Quantity)))

	return job, nil
}

// Deviation returns the signed difference between the job's allocated sum
// and its total quantity, for the caller to surface as a warning
func (s *ScheduleService) Deviation(id entities.JobID) (entities.Quantity, error) {
	job, err := s.jobs.Get(id)
	if err != nil {
		return 0, fmt.Errorf("deviation: %w", err)
	}
	return job.Weekly.Deviation(job.Quantity), nil
}

// DailyBreakdown derives the per-day split from the job's current weekly
// allocation. The result is computed on demand and never stored.
func (s *ScheduleService) DailyBreakdown(id entities.JobID) (entities.DailyAllocation, error) {
	job, err := s.jobs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("daily breakdown: %w", err)
	}

	daily, err := domain.DailyBreakdown(job.Weekly, job.Range)
	if err != nil {
		return nil, fmt.Errorf("daily breakdown: %w", err)
	}
	return daily, nil
}

// Get returns the current state of a job
func (s *ScheduleService) Get(id entities.JobID) (*entities.Job, error) {
	return s.jobs.Get(id)
}

// List returns all jobs currently being scheduled
func (s *ScheduleService) List() ([]*entities.Job, error) {
	return s.jobs.List()
}

// ErrEmptyAllocation indicates a submission attempt for a job whose weekly
// allocation has not been computed
var ErrEmptyAllocation = errors.New("job has no weekly allocation")

// Submit builds the outgoing job record for the submission API, attaching
// the daily breakdown under daily_split
func (s *ScheduleService) Submit(id entities.JobID) (*dto.JobSubmission, error) {
	job, err := s.jobs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	if len(job.Weekly) == 0 {
		return nil, fmt.Errorf("submit: %w", ErrEmptyAllocation)
	}

	daily, err := domain.DailyBreakdown(job.Weekly, job.Range)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}

	submission := dto.NewJobSubmission(job, daily, time.Now().UTC())

	s.emit(id, events.NewJobSubmittedEvent(id, daily))

	return submission, nil
}

// emit appends an event if an event store is configured
func (s *ScheduleService) emit(id entities.JobID, event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendEvent(string(id), event); err != nil {
		fmt.Printf("Error appending event %s: %v\n", event.Type(), err)
	}
}
