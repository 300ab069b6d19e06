package timesheet

import (
	"math"
	"sort"
	"time"
)

// DayTotals is the rounded aggregate of all sessions for one employee on
// one calendar date, shaped for persistence.
type DayTotals struct {
	RegularHours     float64
	OvertimeHours    float64
	NightDiffHours   float64
	LateMinutes      int
	UndertimeMinutes int
	TotalHours       float64
	WorkSessions     int
}

// PairPunches sorts instants ascending and pairs them positionally:
// (0,1), (2,3), and so on. Pairing is by position, not by declared punch
// type; a trailing unpaired punch is dropped silently.
func PairPunches(instants []time.Time) [][2]time.Time {
	sorted := make([]time.Time, len(instants))
	copy(sorted, instants)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	pairs := make([][2]time.Time, 0, len(sorted)/2)
	for i := 0; i+1 < len(sorted); i += 2 {
		pairs = append(pairs, [2]time.Time{sorted[i], sorted[i+1]})
	}
	return pairs
}

// SummarizeSessions reduces per-session results into daily totals.
// Each field is summed across sessions first and rounded exactly once at
// the end; per-session rounding would drift on fractional minutes.
func SummarizeSessions(results []SessionResult) DayTotals {
	var sum SessionResult
	for _, r := range results {
		sum.RegularHours += r.RegularHours
		sum.OvertimeHours += r.OvertimeHours
		sum.NightDiffHours += r.NightDiffHours
		sum.LateMinutes += r.LateMinutes
		sum.UndertimeMinutes += r.UndertimeMinutes
		sum.TotalHours += r.TotalHours
	}
	return DayTotals{
		RegularHours:     round2(sum.RegularHours),
		OvertimeHours:    round2(sum.OvertimeHours),
		NightDiffHours:   round2(sum.NightDiffHours),
		LateMinutes:      int(math.Round(sum.LateMinutes)),
		UndertimeMinutes: int(math.Round(sum.UndertimeMinutes)),
		TotalHours:       round2(sum.TotalHours),
		WorkSessions:     len(results),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
