package engine

import (
	"testing"
	"time"
)

func span(id string, start, end time.Time) TaskSpan {
	return TaskSpan{TaskID: id, Start: start, End: end}
}

func TestAssignLanes_OverlapPacking(t *testing.T) {
	// [day1–day3] and [day2–day4] overlap and must differ; [day5–day6]
	// starts after lane 0 frees up and reuses it.
	spans := []TaskSpan{
		span("a", date(2026, time.May, 1), date(2026, time.May, 3)),
		span("b", date(2026, time.May, 2), date(2026, time.May, 4)),
		span("c", date(2026, time.May, 5), date(2026, time.May, 6)),
	}

	placed, laneCount := AssignLanes(spans)
	if laneCount != 2 {
		t.Fatalf("laneCount = %d, want 2", laneCount)
	}

	lanes := map[string]int{}
	for _, s := range placed {
		lanes[s.TaskID] = s.Lane
	}
	if lanes["a"] != 0 || lanes["b"] != 1 || lanes["c"] != 0 {
		t.Errorf("lanes = %v, want a:0 b:1 c:0", lanes)
	}
}

func TestAssignLanes_Idempotent(t *testing.T) {
	spans := []TaskSpan{
		span("a", date(2026, time.May, 1), date(2026, time.May, 10)),
		span("b", date(2026, time.May, 2), date(2026, time.May, 5)),
		span("c", date(2026, time.May, 6), date(2026, time.May, 9)),
		span("d", date(2026, time.May, 3), date(2026, time.May, 3)),
	}

	first, firstCount := AssignLanes(spans)
	second, secondCount := AssignLanes(spans)

	if firstCount != secondCount {
		t.Fatalf("lane counts differ: %d vs %d", firstCount, secondCount)
	}
	for i := range first {
		if first[i].TaskID != second[i].TaskID || first[i].Lane != second[i].Lane {
			t.Errorf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAssignLanes_NoOverlapWithinLane(t *testing.T) {
	spans := []TaskSpan{
		span("a", date(2026, time.May, 1), date(2026, time.May, 8)),
		span("b", date(2026, time.May, 2), date(2026, time.May, 6)),
		span("c", date(2026, time.May, 3), date(2026, time.May, 4)),
		span("d", date(2026, time.May, 9), date(2026, time.May, 12)),
		span("e", date(2026, time.May, 6), date(2026, time.May, 7)),
		span("f", date(2026, time.May, 4), date(2026, time.May, 4)),
	}

	placed, _ := AssignLanes(spans)
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if a.Lane != b.Lane {
				continue
			}
			if a.Start.Before(b.End) && b.Start.Before(a.End) {
				t.Errorf("lane %d holds overlapping spans %s and %s", a.Lane, a.TaskID, b.TaskID)
			}
		}
	}
}

func TestAssignLanes_MinimalLaneCount(t *testing.T) {
	// Three spans mutually overlap on May 5, so the clique number is 3 and
	// the greedy packing must not exceed it.
	spans := []TaskSpan{
		span("a", date(2026, time.May, 1), date(2026, time.May, 10)),
		span("b", date(2026, time.May, 4), date(2026, time.May, 8)),
		span("c", date(2026, time.May, 5), date(2026, time.May, 6)),
		span("d", date(2026, time.May, 11), date(2026, time.May, 12)),
	}

	_, laneCount := AssignLanes(spans)
	if laneCount != 3 {
		t.Errorf("laneCount = %d, want 3", laneCount)
	}
}

func TestAssignLanes_Empty(t *testing.T) {
	placed, laneCount := AssignLanes(nil)
	if len(placed) != 0 || laneCount != 0 {
		t.Errorf("got %d spans in %d lanes, want none", len(placed), laneCount)
	}
}
