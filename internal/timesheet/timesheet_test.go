package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 11, hour, min, 0, 0, time.UTC)
}

func TestEvaluateSession_FullCoverageWithOvertime(t *testing.T) {
	// 08:50 - 18:10 against 09:00-18:00: full window worked, 20 minutes
	// outside it.
	res, err := EvaluateSession(at(8, 50), at(18, 10), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 9.0, res.RegularHours, 1e-9)
	assert.InDelta(t, res.TotalHours-res.RegularHours, res.OvertimeHours, 1e-9)
	assert.Zero(t, res.LateMinutes)
	assert.Zero(t, res.UndertimeMinutes)
}

func TestEvaluateSession_FullyInside(t *testing.T) {
	res, err := EvaluateSession(at(9, 15), at(17, 45), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 8.5, res.RegularHours, 1e-9)
	assert.Zero(t, res.OvertimeHours)
	assert.InDelta(t, 15, res.LateMinutes, 1e-9)
	assert.InDelta(t, 15, res.UndertimeMinutes, 1e-9)
	assert.InDelta(t, res.TotalHours, res.RegularHours, 1e-9)
}

func TestEvaluateSession_ExactScheduleBoundaries(t *testing.T) {
	res, err := EvaluateSession(at(9, 0), at(18, 0), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 9.0, res.RegularHours, 1e-9)
	assert.Zero(t, res.OvertimeHours)
	assert.Zero(t, res.LateMinutes)
	assert.Zero(t, res.UndertimeMinutes)
}

func TestEvaluateSession_EarlyStartEarlyEnd(t *testing.T) {
	// 08:00 - 16:00: only the stretch from schedule start counts as regular.
	res, err := EvaluateSession(at(8, 0), at(16, 0), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 7.0, res.RegularHours, 1e-9)
	assert.Zero(t, res.OvertimeHours)
	assert.Zero(t, res.LateMinutes)
	assert.InDelta(t, 120, res.UndertimeMinutes, 1e-9)
	assert.InDelta(t, 8.0, res.TotalHours, 1e-9)
}

func TestEvaluateSession_LateStartLateEnd(t *testing.T) {
	res, err := EvaluateSession(at(14, 0), at(19, 0), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, res.RegularHours, 1e-9)
	assert.InDelta(t, 1.0, res.OvertimeHours, 1e-9)
	assert.InDelta(t, 300, res.LateMinutes, 1e-9)
	assert.Zero(t, res.UndertimeMinutes)
}

func TestEvaluateSession_FullCoverageSplitsAllTime(t *testing.T) {
	// regular + overtime must equal total whenever the window is covered.
	cases := [][2]time.Time{
		{at(7, 0), at(20, 0)},
		{at(8, 59), at(18, 1)},
		{at(9, 0), at(22, 30)},
	}
	for _, c := range cases {
		res, err := EvaluateSession(c[0], c[1], DefaultSchedule)
		assert.NoError(t, err)
		assert.InDelta(t, res.TotalHours, res.RegularHours+res.OvertimeHours, 1e-9)
	}
}

func TestEvaluateSession_NeverNegative(t *testing.T) {
	// Skewed schedule far from the worked interval: fields clamp at zero.
	sched := Schedule{Start: "01:00", End: "02:00"}
	res, err := EvaluateSession(at(9, 0), at(10, 0), sched)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, res.RegularHours, 0.0)
	assert.GreaterOrEqual(t, res.OvertimeHours, 0.0)
	assert.GreaterOrEqual(t, res.LateMinutes, 0.0)
	assert.GreaterOrEqual(t, res.UndertimeMinutes, 0.0)
	assert.GreaterOrEqual(t, res.NightDiffHours, 0.0)
}

func TestEvaluateSession_NightDiffWalkFromPunchIn(t *testing.T) {
	// 21:30 - 23:00: steps start at 21:30 and 22:30; only the 22:30 step
	// falls in the night band.
	res, err := EvaluateSession(at(21, 30), at(23, 0), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, res.NightDiffHours, 1e-9)

	// 22:00 - 23:59: steps at 22:00 and 23:00 both qualify.
	res, err = EvaluateSession(at(22, 0), at(23, 59), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, res.NightDiffHours, 1e-9)

	// 21:45 - 22:15: the single step starts at 21:45, outside the band.
	res, err = EvaluateSession(at(21, 45), at(22, 15), DefaultSchedule)
	assert.NoError(t, err)
	assert.Zero(t, res.NightDiffHours)

	// Early-morning session: 05:30 step qualifies, 06:30 does not.
	res, err = EvaluateSession(at(5, 30), at(7, 0), DefaultSchedule)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, res.NightDiffHours, 1e-9)
}

func TestEvaluateSession_OutOfOrderRejected(t *testing.T) {
	_, err := EvaluateSession(at(18, 0), at(9, 0), DefaultSchedule)
	assert.ErrorIs(t, err, ErrSessionOutOfOrder)
}

func TestEvaluateSession_OvernightScheduleRejected(t *testing.T) {
	_, err := EvaluateSession(at(23, 0), at(23, 30), Schedule{Start: "22:00", End: "06:00"})
	assert.ErrorIs(t, err, ErrOvernightSchedule)
}

func TestEvaluateSession_MalformedScheduleRejected(t *testing.T) {
	_, err := EvaluateSession(at(9, 0), at(17, 0), Schedule{Start: "9am", End: "18:00"})
	assert.Error(t, err)
	_, err = EvaluateSession(at(9, 0), at(17, 0), Schedule{Start: "09:00", End: ""})
	assert.Error(t, err)
}

func TestScheduleAnchor_UsesReferenceDateAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ref := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)
	start, end, err := DefaultSchedule.Anchor(ref)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 3, 11, 18, 0, 0, 0, loc), end)
}
