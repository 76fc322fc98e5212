package events

import (
	"github.com/printworks/pressplan/pkg/domain/entities"
)

const (
	JobCreatedEvent       = "job.created"
	DateRangeChangedEvent = "job.daterange.changed"
	QuantityChangedEvent  = "job.quantity.changed"
	JobSubmittedEvent     = "job.submitted"

	AllocationComputedEvent = "allocation.computed"
	WeekOverriddenEvent     = "allocation.week.overridden"
)

type JobCreated struct {
	Job entities.Job `json:"job"`
}

type DateRangeChanged struct {
	JobID    entities.JobID     `json:"job_id"`
	OldRange entities.DateRange `json:"old_range"`
	NewRange entities.DateRange `json:"new_range"`
}

type QuantityChanged struct {
	JobID       entities.JobID    `json:"job_id"`
	OldQuantity entities.Quantity `json:"old_quantity"`
	NewQuantity entities.Quantity `json:"new_quantity"`
}

type AllocationComputed struct {
	JobID  entities.JobID            `json:"job_id"`
	Weekly entities.WeeklyAllocation `json:"weekly"`
}

type WeekOverridden struct {
	JobID     entities.JobID            `json:"job_id"`
	WeekIndex int                       `json:"week_index"`
	NewValue  entities.Quantity         `json:"new_value"`
	Weekly    entities.WeeklyAllocation `json:"weekly"`
	Deviation entities.Quantity         `json:"deviation"`
}

type JobSubmitted struct {
	JobID      entities.JobID           `json:"job_id"`
	DailySplit entities.DailyAllocation `json:"daily_split"`
}

func NewJobCreatedEvent(job entities.Job) Event {
	return NewEvent(JobCreatedEvent, string(job.ID), JobCreated{Job: job})
}

func NewDateRangeChangedEvent(jobID entities.JobID, oldRange, newRange entities.DateRange) Event {
	return NewEvent(DateRangeChangedEvent, string(jobID), DateRangeChanged{
		JobID:    jobID,
		OldRange: oldRange,
		NewRange: newRange,
	})
}

func NewQuantityChangedEvent(jobID entities.JobID, oldQuantity, newQuantity entities.Quantity) Event {
	return NewEvent(QuantityChangedEvent, string(jobID), QuantityChanged{
		JobID:       jobID,
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
	})
}

func NewAllocationComputedEvent(jobID entities.JobID, weekly entities.WeeklyAllocation) Event {
	return NewEvent(AllocationComputedEvent, string(jobID), AllocationComputed{
		JobID:  jobID,
		Weekly: weekly,
	})
}

func NewWeekOverriddenEvent(jobID entities.JobID, weekIndex int, newValue entities.Quantity, weekly entities.WeeklyAllocation, deviation entities.Quantity) Event {
	return NewEvent(WeekOverriddenEvent, string(jobID), WeekOverridden{
		JobID:     jobID,
		WeekIndex: weekIndex,
		NewValue:  newValue,
		Weekly:    weekly,
		Deviation: deviation,
	})
}

func NewJobSubmittedEvent(jobID entities.JobID, daily entities.DailyAllocation) Event {
	return NewEvent(JobSubmittedEvent, string(jobID), JobSubmitted{
		JobID:      jobID,
		DailySplit: daily,
	})
}
