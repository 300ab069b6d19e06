package employee

import (
	"time"

	"go-timeclock/internal/timesheet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Employee struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	FullName      string         `gorm:"column:full_name;type:varchar(255);not null"`
	Role          string         `gorm:"column:role;type:varchar(20);not null;default:employee"`
	PasswordHash  string         `gorm:"column:password_hash;type:varchar(100);not null"`
	ScheduleStart *string        `gorm:"column:schedule_start;type:varchar(5)"`
	ScheduleEnd   *string        `gorm:"column:schedule_end;type:varchar(5)"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

// ScheduleOrDefault returns the configured shift window, falling back to
// the company default when either side is missing.
func (e Employee) ScheduleOrDefault() timesheet.Schedule {
	if e.ScheduleStart == nil || e.ScheduleEnd == nil || *e.ScheduleStart == "" || *e.ScheduleEnd == "" {
		return timesheet.DefaultSchedule
	}
	return timesheet.Schedule{Start: *e.ScheduleStart, End: *e.ScheduleEnd}
}
