package summary

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DailySummary is the persisted aggregate for one employee on one calendar
// date. The engine is the sole writer of the computed fields; recomputation
// overwrites in place via the (employee_id, date) key.
type DailySummary struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_summary_employee_date"`
	Date             time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_summary_employee_date;index"`
	RegularHours     float64   `gorm:"column:regular_hours;type:numeric(6,2);not null;default:0"`
	Overtime         float64   `gorm:"column:overtime;type:numeric(6,2);not null;default:0"`
	NightDiff        float64   `gorm:"column:night_diff;type:numeric(6,2);not null;default:0"`
	LateMinutes      int       `gorm:"column:late_minutes;not null;default:0"`
	UndertimeMinutes int       `gorm:"column:undertime_minutes;not null;default:0"`
	TotalHours       float64   `gorm:"column:total_hours;type:numeric(6,2);not null;default:0"`
	WorkSessions     int       `gorm:"column:work_sessions;not null;default:0"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}

// DocID renders the legacy document key "{employeeID}_{YYYY-MM-DD}".
func (s DailySummary) DocID() string {
	return fmt.Sprintf("%s_%s", s.EmployeeID, s.Date.UTC().Format("2006-01-02"))
}
