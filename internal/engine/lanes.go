package engine

import "sort"

// AssignLanes packs task spans into horizontal lanes so no two spans in a
// lane overlap (greedy interval coloring). Spans are processed in ascending
// start order, ties keeping input order; each takes the lowest lane whose
// last end is at or before its start, opening a new lane otherwise.
//
// The greedy choice is optimal: the lane count equals the maximum number of
// spans that mutually overlap at any instant. Milestones occupy a lane like
// any other span.
func AssignLanes(spans []TaskSpan) ([]TaskSpan, int) {
	sorted := make([]TaskSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var laneEnds []int64
	for i, span := range sorted {
		startMs := span.Start.UnixMilli()
		endMs := span.End.UnixMilli()

		lane := -1
		for idx, end := range laneEnds {
			if end <= startMs {
				lane = idx
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, endMs)
		} else if endMs > laneEnds[lane] {
			laneEnds[lane] = endMs
		}

		sorted[i].Lane = lane
	}

	return sorted, len(laneEnds)
}
