package summary

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=summary_repo.go -destination=mock/summary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, s *DailySummary) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error)
	FindByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]DailySummary, error)
	FindAllInRange(ctx context.Context, startDate, endDate time.Time) ([]DailySummary, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Upsert writes the summary keyed by (employee_id, date); a repeated
// computation overwrites all computed fields in place rather than
// appending a second row.
func (r *repository) Upsert(ctx context.Context, s *DailySummary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"regular_hours",
				"overtime",
				"night_diff",
				"late_minutes",
				"undertime_minutes",
				"total_hours",
				"work_sessions",
				"updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
	var s DailySummary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.UTC().Format("2006-01-02")).
		First(&s).Error
	return &s, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]DailySummary, error) {
	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID)
	if startDate != nil && endDate != nil {
		q = q.Where("date >= ?", startDate.UTC().Format("2006-01-02")).
			Where("date <= ?", endDate.UTC().Format("2006-01-02"))
	}

	var rows []DailySummary
	err := q.Order("date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllInRange(ctx context.Context, startDate, endDate time.Time) ([]DailySummary, error) {
	var rows []DailySummary
	err := r.db.WithContext(ctx).
		Where("date >= ?", startDate.UTC().Format("2006-01-02")).
		Where("date <= ?", endDate.UTC().Format("2006-01-02")).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}
