package employee

import (
	"context"
	"time"

	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

// validateSchedule parses the window against a fixed reference date; only
// the wall-clock fields matter here.
func validateSchedule(start, end string) error {
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, _, err := (timesheet.Schedule{Start: start, End: end}).Anchor(ref); err != nil {
		return employeeerrors.ErrInvalidSchedule
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}
	if role != RoleAdmin && role != RoleEmployee {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	if req.Schedule != nil {
		if err := validateSchedule(req.Schedule.Start, req.Schedule.End); err != nil {
			return EmployeeResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	row := &Employee{
		ID:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		PasswordHash: string(hash),
	}
	if req.Schedule != nil {
		row.ScheduleStart = &req.Schedule.Start
		row.ScheduleEnd = &req.Schedule.End
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		row.FullName = *req.FullName
	}
	if req.Role != nil {
		if *req.Role != RoleAdmin && *req.Role != RoleEmployee {
			return EmployeeResponse{}, employeeerrors.ErrInvalidRole
		}
		row.Role = *req.Role
	}

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (EmployeeResponse, error) {
	if err := validateSchedule(req.Start, req.End); err != nil {
		return EmployeeResponse{}, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	row.ScheduleStart = &req.Start
	row.ScheduleEnd = &req.End

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("update employee schedule failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee schedule updated",
		zap.String("employee_id", id),
		zap.String("start", req.Start),
		zap.String("end", req.End),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	sched := e.ScheduleOrDefault()
	return EmployeeResponse{
		ID:       e.ID.String(),
		Email:    e.Email,
		FullName: e.FullName,
		Role:     e.Role,
		Schedule: ScheduleDTO{Start: sched.Start, End: sched.End},
	}
}
