package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(model.Alert{ID: "later", Source: model.AlertSourceTask, TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(model.Alert{ID: "sooner", Source: model.AlertSourceEvent, TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitAlert(t, engine.C(), time.Second)
	second := waitAlert(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(model.Alert{
			ID:        "task:t1",
			Source:    model.AlertSourceTask,
			RefID:     "t1",
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(model.Alert{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func waitAlert(t *testing.T, ch <-chan model.Alert, timeout time.Duration) model.Alert {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for alert")
		return model.Alert{}
	}
}

func TestReplaceSwapsPendingAlerts(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(model.Alert{ID: "stale", TriggerAt: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule stale: %v", err)
	}
	err := engine.Replace([]model.Alert{
		{ID: "fresh", TriggerAt: now.Add(20 * time.Millisecond)},
		{ID: "no-trigger"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected one pending alert, got %d", engine.Pending())
	}

	got := waitAlert(t, engine.C(), time.Second)
	if got.ID != "fresh" {
		t.Fatalf("expected fresh alert, got %s", got.ID)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected alert after replace: %s", ev.ID)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestCancelRemovesPendingAlert(t *testing.T) {
	engine := NewEngine(4)
	at := time.Now().Add(time.Hour)
	for _, id := range []string{"a", "b", "c"} {
		if err := engine.Schedule(model.Alert{ID: id, TriggerAt: at}); err != nil {
			t.Fatalf("schedule %s: %v", id, err)
		}
	}
	if !engine.Cancel("b") {
		t.Fatal("expected cancel to find b")
	}
	if engine.Cancel("b") {
		t.Fatal("expected second cancel to miss")
	}
	if engine.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", engine.Pending())
	}
}

func TestEqualTriggersKeepScheduleOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	at := time.Now().Add(20 * time.Millisecond)
	ids := []string{"first", "second", "third"}
	if err := engine.Replace([]model.Alert{{ID: ids[0], TriggerAt: at}, {ID: ids[1], TriggerAt: at}, {ID: ids[2], TriggerAt: at}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	for _, want := range ids {
		if got := waitAlert(t, engine.C(), time.Second); got.ID != want {
			t.Fatalf("expected %s, got %s", want, got.ID)
		}
	}
}

func TestScheduleAfterStopFails(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if err := engine.Schedule(model.Alert{ID: "late", TriggerAt: time.Now()}); err != ErrEngineStopped {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
}
