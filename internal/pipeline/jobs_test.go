package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"outliner/internal/outline"
)

func TestJob_CompleteStoresResult(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}
	if job.Result() != nil {
		t.Fatal("expected nil result before completion")
	}
	job.Complete(outline.Outline{Title: "doc.pdf", Entries: []outline.Entry{}})
	if job.Snapshot().Status != StatusCompleted {
		t.Errorf("expected completed status, got %s", job.Snapshot().Status)
	}
	res := job.Result()
	if res == nil || res.Title != "doc.pdf" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestJob_FailRecordsError(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusExtracting}
	job.Fail("unsupported file type")
	snap := job.Snapshot()
	if snap.Status != StatusFailed || snap.Error != "unsupported file type" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if job.Result() != nil {
		t.Error("failed job must not carry a result")
	}
}

func TestJobStore_CleanupRemovesExpired(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	old := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Second)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJobStore_CleanupConcurrentWithUpdates(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "busy", Status: StatusExtracting, UpdatedAt: time.Now()}
	store.Put(job)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			job.SetStatus(StatusExtracting)
		}
	}()
	for i := 0; i < 200; i++ {
		store.Cleanup()
	}
	<-done

	if store.Get("busy") == nil {
		t.Error("active job evicted during concurrent updates")
	}
}

func TestOrchestrator_ProcessesSubmittedJob(t *testing.T) {
	var mu sync.Mutex
	processed := make(map[string]bool)
	process := func(ctx context.Context, job *Job) {
		mu.Lock()
		processed[job.ID] = true
		mu.Unlock()
		job.Complete(outline.Outline{Title: job.Filename, Entries: []outline.Entry{}})
	}

	orch := NewOrchestrator(2, 10, time.Hour, process, nil)
	orch.Start(context.Background())

	job := &Job{ID: "j1", Filename: "doc.pdf", Status: StatusQueued}
	if err := orch.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		if job.Snapshot().Status == StatusCompleted {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("job never completed, status %s", job.Snapshot().Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
	orch.Stop()

	mu.Lock()
	defer mu.Unlock()
	if !processed["j1"] {
		t.Error("process func never ran for j1")
	}
	if orch.GetJob("j1") == nil {
		t.Error("expected job to remain queryable after completion")
	}
}

func TestOrchestrator_SubmitFailsWhenQueueFull(t *testing.T) {
	// No workers drain the queue, so capacity 1 fills after one submit.
	orch := NewOrchestrator(0, 1, time.Hour, func(ctx context.Context, job *Job) {}, nil)

	if err := orch.Submit(&Job{ID: "a", Status: StatusQueued}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	overflow := &Job{ID: "b", Status: StatusQueued}
	if err := orch.Submit(overflow); err == nil {
		t.Fatal("expected error once queue is full")
	}
	if overflow.Snapshot().Status != StatusFailed {
		t.Errorf("expected overflow job marked failed, got %s", overflow.Snapshot().Status)
	}
}
