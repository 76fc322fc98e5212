package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/printworks/pressplan/pkg/domain/entities"
	"github.com/printworks/pressplan/pkg/domain/repositories"
)

// ErrJobNotFound indicates a lookup for a job that is not in the repository
var ErrJobNotFound = errors.New("job not found")

// JobRepository provides in-memory job storage
type JobRepository struct {
	mutex sync.RWMutex
	jobs  map[entities.JobID]*entities.Job
}

// NewJobRepository creates a new in-memory job repository
func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs: make(map[entities.JobID]*entities.Job),
	}
}

// Verify interface compliance
var _ repositories.JobRepository = (*JobRepository)(nil)

// Save stores a copy of the job, creating or replacing as needed
func (r *JobRepository) Save(job *entities.Job) error {
	if job == nil || job.ID == "" {
		return fmt.Errorf("job must have an ID")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.jobs[job.ID] = job.Clone()
	return nil
}

// Get returns a copy of the job with the given ID
func (r *JobRepository) Get(id entities.JobID) (*entities.Job, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return job.Clone(), nil
}

// List returns copies of all jobs, ordered by name for stable output
func (r *JobRepository) List() ([]*entities.Job, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	jobs := make([]*entities.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job.Clone())
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].Name < jobs[j].Name
	})

	return jobs, nil
}

// Delete removes the job with the given ID
func (r *JobRepository) Delete(id entities.JobID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.jobs[id]; !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	delete(r.jobs, id)
	return nil
}
