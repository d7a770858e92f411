package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

// Many producers feed deadline batches while one consumer drains the channel.
func TestEngineDeliversConcurrentBatches(t *testing.T) {
	engine := NewEngine(2048)
	engine.Start()
	defer engine.Stop()

	const producers = 6
	const tasksEach = 150
	want := producers * tasksEach

	now := time.Now()
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks := make([]model.Task, 0, tasksEach)
			for i := range tasksEach {
				due := now.Add(time.Hour + time.Duration((p*7+i)%40+5)*time.Millisecond)
				tasks = append(tasks, model.Task{
					ID:      fmt.Sprintf("p%d-t%d", p, i),
					Name:    fmt.Sprintf("entrega %d", i),
					DueDate: due,
				})
			}
			for _, a := range AlertsFor(tasks, nil, now, time.Hour) {
				if err := engine.Schedule(a); err != nil {
					t.Errorf("schedule %s: %v", a.ID, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, want)
	deadline := time.After(5 * time.Second)
	for len(seen) < want {
		select {
		case <-deadline:
			t.Fatalf("timeout: received=%d want=%d dropped=%d", len(seen), want, engine.Dropped())
		case a := <-engine.C():
			if seen[a.ID] {
				t.Fatalf("alert %s delivered twice", a.ID)
			}
			seen[a.ID] = true
		}
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with an active consumer, got=%d", engine.Dropped())
	}
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d pending", engine.Pending())
	}
}
