// bands/merge.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

// merge collapses adjacent equal-coloured candidates into intervals
// (spec.md §4.2 step 4). Candidates must already be sorted by Value;
// enumerate() guarantees this. A colour change between two samples is
// split at their midpoint, so consecutive intervals share a boundary
// rather than leaving the sampling step's width uncovered between them
// (spec.md §8-1: the returned intervals must union to the full range
// and be pairwise interior-disjoint).
func merge(candidates []Candidate) []Interval {
	if len(candidates) == 0 {
		return nil
	}

	var intervals []Interval
	cur := Interval{Lo: candidates[0].Value, Hi: candidates[0].Value, Region: candidates[0].Region}
	for i := 1; i < len(candidates); i++ {
		c := candidates[i]
		if c.Region == cur.Region {
			cur.Hi = c.Value
			continue
		}
		boundary := (candidates[i-1].Value + c.Value) / 2
		cur.Hi = boundary
		intervals = append(intervals, cur)
		cur = Interval{Lo: boundary, Hi: c.Value, Region: c.Region}
	}
	intervals = append(intervals, cur)
	return intervals
}
