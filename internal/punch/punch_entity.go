package punch

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeIn  = "in"
	TypeOut = "out"
)

// Punch is one raw clock event. The summary engine only ever reads these;
// mutation happens solely through the admin editing endpoints.
type Punch struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Type       string         `gorm:"column:type;type:varchar(3);not null"`
	PunchedAt  time.Time      `gorm:"column:punched_at;type:timestamptz;not null;index"`
	Source     string         `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes      *string        `gorm:"column:notes;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Punch) TableName() string {
	return "punches"
}

// DayWindow resolves a YYYY-MM-DD date to its UTC day interval
// [start, end). All grouping of punches into calendar days uses UTC.
func DayWindow(date string) (start, end time.Time, err error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = day.UTC()
	return start, start.Add(24 * time.Hour), nil
}
