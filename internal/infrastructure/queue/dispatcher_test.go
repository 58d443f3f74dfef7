package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnobots/job-portal-api/internal/core/ports"
)

type recordingSink struct {
	mu     sync.Mutex
	events []ports.AuthEvent
}

func (r *recordingSink) Record(_ context.Context, event ports.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(2, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ports.AuthEvent{
			Email:     "a@x.com",
			Action:    ports.AuditLoginFailed,
			Timestamp: time.Now().UTC(),
		})
	}

	deadline := time.After(2 * time.Second)
	for sink.count() < 10 {
		select {
		case <-deadline:
			t.Fatalf("expected 10 events, got %d", sink.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_ShardIsStablePerEmail(t *testing.T) {
	d := NewDispatcher(8, &recordingSink{}, zerolog.Nop())

	first := d.shardIndex("a@x.com")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("a@x.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", first, got)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingSink{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
