package repositories

import (
	"github.com/printworks/pressplan/pkg/domain/entities"
)

// JobRepository provides access to the jobs being scheduled
type JobRepository interface {
	Save(job *entities.Job) error
	Get(id entities.JobID) (*entities.Job, error)
	List() ([]*entities.Job, error)
	Delete(id entities.JobID) error
}
