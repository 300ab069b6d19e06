package events

import "time"

const SummaryGeneratedTopic = "timeclock.summary.generated.v1"

// SummaryGeneratedEvent announces that a daily summary was (re)computed.
// Downstream consumers treat it as a full snapshot, not a delta.
type SummaryGeneratedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	EmployeeID       string    `json:"employee_id"`
	Date             string    `json:"date"` // YYYY-MM-DD
	RegularHours     float64   `json:"regular_hours"`
	OvertimeHours    float64   `json:"overtime_hours"`
	NightDiffHours   float64   `json:"night_diff_hours"`
	LateMinutes      int       `json:"late_minutes"`
	UndertimeMinutes int       `json:"undertime_minutes"`
	TotalHours       float64   `json:"total_hours"`
	WorkSessions     int       `json:"work_sessions"`
	OccurredAt       time.Time `json:"occurred_at"`
}
