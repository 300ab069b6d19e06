// Package timesheet holds the attendance time-accounting engine: pure
// functions that turn punch-in/punch-out pairs plus a work schedule into
// hour and minute breakdowns. No I/O, no clock reads; both the on-demand
// API path and the batch regeneration path call into this one package.
package timesheet

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSessionOutOfOrder is returned when punch-out precedes punch-in.
	// Overnight sessions crossing midnight are not supported; the punches
	// must be split at the date boundary upstream.
	ErrSessionOutOfOrder = errors.New("punch-out precedes punch-in")

	// ErrOvernightSchedule is returned for schedules whose end time is
	// earlier than the start time. Same-day shifts only.
	ErrOvernightSchedule = errors.New("schedule end precedes schedule start")
)

// Schedule is an employee's daily shift window as wall-clock times,
// interpreted on the date of the session being evaluated.
type Schedule struct {
	Start string `json:"start"` // "HH:MM", 24h
	End   string `json:"end"`
}

// DefaultSchedule applies when an employee has no schedule configured.
var DefaultSchedule = Schedule{Start: "09:00", End: "18:00"}

// SessionResult is the unrounded breakdown of a single work session.
// All fields are non-negative; hours are decimal, minutes are decimal
// and rounded only at the daily aggregation step.
type SessionResult struct {
	RegularHours     float64
	OvertimeHours    float64
	NightDiffHours   float64
	LateMinutes      float64
	UndertimeMinutes float64
	TotalHours       float64
}

func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid schedule time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// Anchor resolves the schedule to absolute instants on the date of ref,
// in ref's location.
func (s Schedule) Anchor(ref time.Time) (start, end time.Time, err error) {
	sh, sm, err := parseClock(s.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	eh, em, err := parseClock(s.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	y, m, d := ref.Date()
	start = time.Date(y, m, d, sh, sm, 0, 0, ref.Location())
	end = time.Date(y, m, d, eh, em, 0, 0, ref.Location())
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrOvernightSchedule
	}
	return start, end, nil
}

// EvaluateSession scores one punch-in/punch-out pair against a schedule.
//
// The schedule window is anchored to punchIn's date. Lateness is minutes
// arrived after the window opens, undertime is minutes left before it
// closes. The regular/overtime split classifies the session by where its
// endpoints fall relative to the window; the four branches are checked in
// this order because their boundary conditions overlap. Night differential
// counts whole-hour steps walked from punchIn's exact clock time whose
// starting hour falls in [22:00, 06:00). The step walk, not exact interval
// overlap, is what historical summaries were computed with and must be
// preserved.
func EvaluateSession(punchIn, punchOut time.Time, sched Schedule) (SessionResult, error) {
	if punchOut.Before(punchIn) {
		return SessionResult{}, ErrSessionOutOfOrder
	}

	schedStart, schedEnd, err := sched.Anchor(punchIn)
	if err != nil {
		return SessionResult{}, err
	}

	totalHours := punchOut.Sub(punchIn).Hours()

	var late, undertime float64
	if punchIn.After(schedStart) {
		late = punchIn.Sub(schedStart).Minutes()
	}
	if punchOut.Before(schedEnd) {
		undertime = schedEnd.Sub(punchOut).Minutes()
	}

	coversStart := !punchIn.After(schedStart) // punchIn <= schedStart
	coversEnd := !punchOut.Before(schedEnd)   // punchOut >= schedEnd

	var regular, overtime float64
	switch {
	case coversStart && coversEnd:
		// Covers the whole window; everything beyond it is overtime.
		regular = schedEnd.Sub(schedStart).Hours()
		overtime = totalHours - regular
	case !punchIn.Before(schedStart) && !punchOut.After(schedEnd):
		// Fully inside the window.
		regular = totalHours
	case coversStart && !punchOut.After(schedEnd):
		// Early start, early or on-time end.
		regular = punchOut.Sub(schedStart).Hours()
	case !punchIn.Before(schedStart) && coversEnd:
		// Late start, late or on-time end.
		regular = schedEnd.Sub(punchIn).Hours()
		overtime = punchOut.Sub(schedEnd).Hours()
	}

	return SessionResult{
		RegularHours:     clampNonNegative(regular),
		OvertimeHours:    clampNonNegative(overtime),
		NightDiffHours:   nightDiffHours(punchIn, punchOut),
		LateMinutes:      clampNonNegative(late),
		UndertimeMinutes: clampNonNegative(undertime),
		TotalHours:       clampNonNegative(totalHours),
	}, nil
}

// nightDiffHours walks [punchIn, punchOut) in fixed whole-hour steps from
// punchIn's clock time, counting steps that begin in the 22:00-06:00 band.
// The walk must not be calendar-aligned: a 21:30-23:00 session takes steps
// at 21:30 and 22:30 and yields exactly one night hour.
func nightDiffHours(punchIn, punchOut time.Time) float64 {
	var hours float64
	for t := punchIn; t.Before(punchOut); t = t.Add(time.Hour) {
		if h := t.Hour(); h >= 22 || h < 6 {
			hours++
		}
	}
	return hours
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
