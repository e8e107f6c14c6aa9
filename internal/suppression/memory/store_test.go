package memory

import (
	"context"
	"testing"
	"time"
)

func TestStore_AcknowledgeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	if err := s.Acknowledge(ctx, "overdue_task_t1", now); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}

	v, err := s.View(ctx)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !v.Suppressed("overdue_task_t1", now.AddDate(5, 0, 0)) {
		t.Error("acknowledgment expired, want permanent")
	}
	if v.Suppressed("overdue_task_t2", now) {
		t.Error("unrelated key suppressed")
	}

	if err := s.ClearAcknowledgement(ctx, "overdue_task_t1"); err != nil {
		t.Fatalf("ClearAcknowledgement: %v", err)
	}
	v, _ = s.View(ctx)
	if v.Suppressed("overdue_task_t1", now) {
		t.Error("cleared key still suppressed")
	}
}

func TestStore_SnoozeExpiry(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, 3)

	if err := s.Snooze(ctx, "duesoon_task_t1", until); err != nil {
		t.Fatalf("Snooze: %v", err)
	}

	v, _ := s.View(ctx)
	if !v.Suppressed("duesoon_task_t1", now) {
		t.Error("active snooze not suppressing")
	}
	if v.Suppressed("duesoon_task_t1", until) {
		t.Error("snooze still active at its expiry instant")
	}
}

func TestStore_ViewIsACopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now()

	if err := s.Acknowledge(ctx, "k", now); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	v, _ := s.View(ctx)
	delete(v.Acknowledged, "k")

	fresh, _ := s.View(ctx)
	if !fresh.Suppressed("k", now) {
		t.Error("mutating a view leaked into the store")
	}
}

func TestStore_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now()

	if err := s.Snooze(ctx, "k", now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("Snooze: %v", err)
	}
	if err := s.Snooze(ctx, "k", now.AddDate(0, 0, 9)); err != nil {
		t.Fatalf("Snooze: %v", err)
	}

	v, _ := s.View(ctx)
	if !v.Suppressed("k", now.AddDate(0, 0, 5)) {
		t.Error("second snooze did not overwrite the first")
	}
}
