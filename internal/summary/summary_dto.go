package summary

type CalculateSummaryRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
}

type SummaryResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	RegularHours     float64 `json:"regular_hours"`
	Overtime         float64 `json:"overtime"`
	NightDiff        float64 `json:"night_diff"`
	LateMinutes      int     `json:"late_minutes"`
	UndertimeMinutes int     `json:"undertime_minutes"`
	TotalHours       float64 `json:"total_hours"`
	WorkSessions     int     `json:"work_sessions"`
	UpdatedAt        string  `json:"updated_at"`
}
