package events

import "time"

const PunchRecordedTopic = "timeclock.punch.recorded.v1"

type PunchRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PunchID    string    `json:"punch_id"`
	EmployeeID string    `json:"employee_id"`
	PunchType  string    `json:"punch_type"` // in | out
	PunchedAt  time.Time `json:"punched_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
