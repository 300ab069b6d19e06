package punch

type RecordPunchRequest struct {
	Type   string  `json:"type" binding:"required,oneof=in out"`
	Source string  `json:"source"`
	Notes  *string `json:"notes"`
}

type AdminUpdatePunchRequest struct {
	Type      *string `json:"type" binding:"omitempty,oneof=in out"`
	Timestamp *string `json:"timestamp"` // RFC3339
}

type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	Timestamp  string  `json:"timestamp"`
	Date       string  `json:"date"`
	Source     string  `json:"source"`
	Notes      *string `json:"notes,omitempty"`
}
