package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/printworks/pressplan/pkg/domain/entities"
)

func testJob(t *testing.T, name string) *entities.Job {
	t.Helper()

	r, err := entities.NewDateRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}

	job, err := entities.NewJob(name, "envelope-print", *r, 12000)
	if err != nil {
		t.Fatalf("NewJob failed: %v", err)
	}
	job.Weekly = entities.WeeklyAllocation{6000, 6000}
	return job
}

func TestJobRepository_SaveAndGet(t *testing.T) {
	repo := NewJobRepository()
	job := testJob(t, "Spring Mailer")

	if err := repo.Save(job); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Get(job.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Name != job.Name || loaded.Quantity != job.Quantity {
		t.Errorf("loaded job does not match: %+v", loaded)
	}
	if len(loaded.Weekly) != 2 {
		t.Errorf("expected allocation to round-trip, got %v", loaded.Weekly)
	}
}

func TestJobRepository_GetMissing(t *testing.T) {
	repo := NewJobRepository()

	_, err := repo.Get(entities.NewJobID())
	if !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobRepository_StoredStateIsIsolated(t *testing.T) {
	repo := NewJobRepository()
	job := testJob(t, "Spring Mailer")

	if err := repo.Save(job); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the caller's copy must not leak into the repository.
	job.Weekly[0] = 1

	loaded, err := repo.Get(job.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Weekly[0] != 6000 {
		t.Errorf("stored allocation mutated through caller copy: %v", loaded.Weekly)
	}

	// And mutating a loaded copy must not change later reads.
	loaded.Weekly[1] = 1
	reloaded, err := repo.Get(job.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reloaded.Weekly[1] != 6000 {
		t.Errorf("stored allocation mutated through loaded copy: %v", reloaded.Weekly)
	}
}

func TestJobRepository_ListSortedByName(t *testing.T) {
	repo := NewJobRepository()

	for _, name := range []string{"Zeta Run", "Alpha Run", "Mid Run"} {
		if err := repo.Save(testJob(t, name)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	jobs, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}

	expected := []string{"Alpha Run", "Mid Run", "Zeta Run"}
	for i, name := range expected {
		if jobs[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, jobs[i].Name)
		}
	}
}

func TestJobRepository_Delete(t *testing.T) {
	repo := NewJobRepository()
	job := testJob(t, "Spring Mailer")

	if err := repo.Save(job); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Delete(job.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.Get(job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound after delete, got %v", err)
	}
	if err := repo.Delete(job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound on double delete, got %v", err)
	}
}
