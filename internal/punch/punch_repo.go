package punch

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Punch) error
	FindByID(ctx context.Context, id string) (*Punch, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
	ListAllByEmployee(ctx context.Context, employeeID string) ([]Punch, error)
	Update(ctx context.Context, p *Punch) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Punch, error) {
	var p Punch
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("punched_at >= ?", from).
		Where("punched_at < ?", to).
		Order("punched_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListAllByEmployee(ctx context.Context, employeeID string) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("punched_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Punch{}, "id = ?", id).Error
}
