package employee_test

import (
	"context"
	"testing"

	"go-timeclock/internal/employee"
	employeeerrors "go-timeclock/internal/employee/errors"
	employeeMock "go-timeclock/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success With Schedule", func(t *testing.T) {
		var saved employee.Employee
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				saved = *e
				return nil
			})

		resp, err := service.Create(ctx, employee.CreateEmployeeRequest{
			Email:    "alice@example.com",
			FullName: "Alice",
			Password: "password123",
			Schedule: &employee.ScheduleDTO{Start: "08:00", End: "17:00"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, employee.RoleEmployee, resp.Role)
		assert.Equal(t, "08:00", resp.Schedule.Start)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("password123")))
	})

	t.Run("Default Schedule In Response", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := service.Create(ctx, employee.CreateEmployeeRequest{
			Email:    "bob@example.com",
			FullName: "Bob",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "09:00", resp.Schedule.Start)
		assert.Equal(t, "18:00", resp.Schedule.End)
	})

	t.Run("Overnight Schedule Rejected", func(t *testing.T) {
		_, err := service.Create(ctx, employee.CreateEmployeeRequest{
			Email:    "carol@example.com",
			FullName: "Carol",
			Password: "password123",
			Schedule: &employee.ScheduleDTO{Start: "22:00", End: "06:00"},
		})
		assert.Equal(t, employeeerrors.ErrInvalidSchedule, err)
	})

	t.Run("Invalid Role Rejected", func(t *testing.T) {
		_, err := service.Create(ctx, employee.CreateEmployeeRequest{
			Email:    "dave@example.com",
			FullName: "Dave",
			Password: "password123",
			Role:     "superuser",
		})
		assert.Equal(t, employeeerrors.ErrInvalidRole, err)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := service.Create(ctx, employee.CreateEmployeeRequest{
			Email:    "alice@example.com",
			FullName: "Alice Again",
			Password: "password123",
		})
		assert.Equal(t, employeeerrors.ErrEmailAlreadyExists, err)
	})
}

func TestService_UpdateSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&employee.Employee{ID: id, Email: "alice@example.com"}, nil)

		var updated employee.Employee
		mockRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				updated = *e
				return nil
			})

		resp, err := service.UpdateSchedule(ctx, id.String(), employee.UpdateScheduleRequest{
			Start: "10:00",
			End:   "19:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "10:00", resp.Schedule.Start)
		assert.Equal(t, "19:00", *updated.ScheduleStart)
	})

	t.Run("Malformed Window", func(t *testing.T) {
		_, err := service.UpdateSchedule(ctx, id.String(), employee.UpdateScheduleRequest{
			Start: "9am",
			End:   "6pm",
		})
		assert.Equal(t, employeeerrors.ErrInvalidSchedule, err)
	})

	t.Run("Unknown Employee", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, id.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.UpdateSchedule(ctx, id.String(), employee.UpdateScheduleRequest{
			Start: "10:00",
			End:   "19:00",
		})
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	id := uuid.New()
	name := "Alice Renamed"
	role := employee.RoleAdmin

	mockRepo.EXPECT().
		FindByID(ctx, id.String()).
		Return(&employee.Employee{ID: id, FullName: "Alice"}, nil)
	mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	resp, err := service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
		FullName: &name,
		Role:     &role,
	})
	assert.NoError(t, err)
	assert.Equal(t, name, resp.FullName)
	assert.Equal(t, employee.RoleAdmin, resp.Role)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	id := uuid.NewString()

	mockRepo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{}, nil)
	mockRepo.EXPECT().Delete(ctx, id).Return(nil)
	assert.NoError(t, service.Delete(ctx, id))

	mockRepo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
	assert.Equal(t, employeeerrors.ErrEmployeeNotFound, service.Delete(ctx, id))
}
