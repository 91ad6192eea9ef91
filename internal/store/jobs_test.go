package store

import (
	"testing"

	"github.com/tkaria/mlbase/internal/models"
)

func TestGetDataIngestionJobs(t *testing.T) {
	t.Run("ReturnsSeededJobs", func(t *testing.T) {
		s, _ := setupTestStore(t)

		jobs := s.GetDataIngestionJobs()
		if len(jobs) != 2 {
			t.Fatalf("expected 2 seeded jobs, got %d", len(jobs))
		}

		if jobs[0].Status != models.JobStatusPending {
			t.Errorf("expected first seeded job pending, got %s", jobs[0].Status)
		}
		if jobs[0].CompletedAt != nil {
			t.Errorf("expected pending job to have nil completed_at, got %v", jobs[0].CompletedAt)
		}

		if jobs[1].Status != models.JobStatusCompleted {
			t.Errorf("expected second seeded job completed, got %s", jobs[1].Status)
		}
		if jobs[1].CompletedAt == nil {
			t.Error("expected completed seed job to carry completed_at")
		}
	})

	t.Run("EmptyOnQueryFailure", func(t *testing.T) {
		s, db := setupTestStore(t)

		if _, err := db.Exec("DROP TABLE data_ingestion_jobs"); err != nil {
			t.Fatalf("failed to drop jobs table: %v", err)
		}

		jobs := s.GetDataIngestionJobs()
		if jobs == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(jobs) != 0 {
			t.Errorf("expected empty slice on query failure, got %d jobs", len(jobs))
		}
	})
}

func TestAddDataIngestionJob(t *testing.T) {
	s, _ := setupTestStore(t)

	job, err := s.AddDataIngestionJob("s3://mlbase-data/raw/users.parquet")
	if err != nil {
		t.Fatalf("failed to add ingestion job: %v", err)
	}

	if job.ID == 0 {
		t.Error("job id should be assigned on insert")
	}
	if job.Status != models.JobStatusPending {
		t.Errorf("expected new job pending, got %s", job.Status)
	}
	if job.CreatedAt.IsZero() {
		t.Error("expected created_at to be set by the database")
	}
	if job.CompletedAt != nil {
		t.Errorf("expected new job to have nil completed_at, got %v", job.CompletedAt)
	}
}

func TestIngestionJobLifecycle(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		s, _ := setupTestStore(t)

		job, err := s.AddDataIngestionJob("s3://mlbase-data/raw/events.csv")
		if err != nil {
			t.Fatalf("failed to add ingestion job: %v", err)
		}

		if err := s.StartDataIngestionJob(job.ID); err != nil {
			t.Fatalf("failed to start job: %v", err)
		}

		got, err := s.getDataIngestionJob(job.ID)
		if err != nil {
			t.Fatalf("failed to reload job: %v", err)
		}
		if got.Status != models.JobStatusInProgress {
			t.Errorf("expected in_progress, got %s", got.Status)
		}
		if got.CompletedAt != nil {
			t.Errorf("start must not touch completed_at, got %v", got.CompletedAt)
		}
	})

	t.Run("Complete", func(t *testing.T) {
		s, _ := setupTestStore(t)

		job, err := s.AddDataIngestionJob("s3://mlbase-data/raw/events.csv")
		if err != nil {
			t.Fatalf("failed to add ingestion job: %v", err)
		}

		if err := s.StartDataIngestionJob(job.ID); err != nil {
			t.Fatalf("failed to start job: %v", err)
		}
		if err := s.CompleteDataIngestionJob(job.ID); err != nil {
			t.Fatalf("failed to complete job: %v", err)
		}

		got, err := s.getDataIngestionJob(job.ID)
		if err != nil {
			t.Fatalf("failed to reload job: %v", err)
		}
		if got.Status != models.JobStatusCompleted {
			t.Errorf("expected completed, got %s", got.Status)
		}
		if got.CompletedAt == nil {
			t.Fatal("expected completed_at to be stamped")
		}
		if got.CompletedAt.Before(got.CreatedAt) {
			t.Errorf("completed_at %v precedes created_at %v", got.CompletedAt, got.CreatedAt)
		}
	})

	t.Run("Fail", func(t *testing.T) {
		s, _ := setupTestStore(t)

		job, err := s.AddDataIngestionJob("s3://mlbase-data/raw/events.csv")
		if err != nil {
			t.Fatalf("failed to add ingestion job: %v", err)
		}

		if err := s.FailDataIngestionJob(job.ID); err != nil {
			t.Fatalf("failed to fail job: %v", err)
		}

		got, err := s.getDataIngestionJob(job.ID)
		if err != nil {
			t.Fatalf("failed to reload job: %v", err)
		}
		if got.Status != models.JobStatusFailed {
			t.Errorf("expected failed, got %s", got.Status)
		}
		if got.CompletedAt == nil {
			t.Error("expected completed_at to be stamped on failure")
		}
	})

	t.Run("RefinishingIsAllowed", func(t *testing.T) {
		s, _ := setupTestStore(t)

		job, err := s.AddDataIngestionJob("s3://mlbase-data/raw/events.csv")
		if err != nil {
			t.Fatalf("failed to add ingestion job: %v", err)
		}

		if err := s.CompleteDataIngestionJob(job.ID); err != nil {
			t.Fatalf("failed to complete job: %v", err)
		}
		// no transition checks: completing an already-completed job re-applies
		if err := s.CompleteDataIngestionJob(job.ID); err != nil {
			t.Errorf("re-completing a completed job should not error: %v", err)
		}
	})

	t.Run("StartUnknownIDIsNoop", func(t *testing.T) {
		s, _ := setupTestStore(t)

		before := s.GetDataIngestionJobs()

		if err := s.StartDataIngestionJob(424242); err != nil {
			t.Fatalf("starting a nonexistent job must not error, got %v", err)
		}

		after := s.GetDataIngestionJobs()
		if len(after) != len(before) {
			t.Fatalf("job count changed from %d to %d", len(before), len(after))
		}
		for i := range before {
			if before[i].Status != after[i].Status {
				t.Errorf("job %d status changed from %s to %s", before[i].ID, before[i].Status, after[i].Status)
			}
		}
	})
}
