package auth_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go-timeclock/internal/auth"
	autherrors "go-timeclock/internal/auth/errors"
	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/employee"
	employeeerrors "go-timeclock/internal/employee/errors"
	employeeMock "go-timeclock/internal/employee/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Setenv("JWT_SECRET", "test-secret")

	mockEmployees := employeeMock.NewMockRepository(ctrl)
	service := auth.NewService(mockEmployees, nil)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	emp := &employee.Employee{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		FullName:     "Admin User",
		Role:         employee.RoleAdmin,
		PasswordHash: string(pw),
	}

	t.Run("Success Login", func(t *testing.T) {
		mockEmployees.EXPECT().
			FindByEmail(ctx, emp.Email).
			Return(emp, nil)

		token, refreshToken, resp, err := service.Login(ctx, emp.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, emp.Email, resp.Email)
		assert.Equal(t, employee.RoleAdmin, resp.Role)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, emp.ID.String(), claims["user_id"])
		assert.Equal(t, employee.RoleAdmin, claims["role"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockEmployees.EXPECT().
			FindByEmail(ctx, emp.Email).
			Return(emp, nil)

		_, _, _, err := service.Login(ctx, emp.Email, "wrongpass")
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockEmployees.EXPECT().
			FindByEmail(ctx, "nobody@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := service.Login(ctx, "nobody@example.com", password)
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Setenv("JWT_SECRET", "test-secret")

	mockEmployees := employeeMock.NewMockRepository(ctrl)
	service := auth.NewService(mockEmployees, nil)
	ctx := context.Background()

	emp := &employee.Employee{
		ID:       uuid.New(),
		Email:    "user@example.com",
		FullName: "Some User",
		Role:     employee.RoleEmployee,
	}

	signedToken := func(userID string, expiry time.Duration) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID,
			"role":    employee.RoleEmployee,
			"exp":     time.Now().Add(expiry).Unix(),
		})
		s, _ := token.SignedString([]byte("test-secret"))
		return s
	}

	t.Run("Success", func(t *testing.T) {
		mockEmployees.EXPECT().
			FindByID(ctx, emp.ID.String()).
			Return(emp, nil)

		access, refresh, resp, err := service.RefreshToken(ctx, signedToken(emp.ID.String(), time.Hour))
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, emp.Email, resp.Email)
	})

	t.Run("Expired", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, signedToken(emp.ID.String(), -time.Hour))
		assert.Equal(t, autherrors.ErrTokenExpired, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not-a-token")
		assert.Equal(t, autherrors.ErrInvalidRefreshToken, err)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployees := employeeMock.NewMockRepository(ctrl)
	audit := &recordingAudit{}
	service := auth.NewService(mockEmployees, audit)
	ctx := context.Background()

	actorID := uuid.NewString()
	emp := &employee.Employee{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Role:         employee.RoleEmployee,
		PasswordHash: "old-hash",
	}

	t.Run("Success", func(t *testing.T) {
		mockEmployees.EXPECT().
			FindByID(ctx, emp.ID.String()).
			Return(emp, nil)

		var updated employee.Employee
		mockEmployees.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				updated = *e
				return nil
			})

		err := service.ChangePassword(ctx, actorID, auth.ChangePasswordRequest{
			EmployeeID:  emp.ID.String(),
			NewPassword: "brand-new-pass",
		})
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("brand-new-pass")))

		assert.Len(t, audit.entries, 1)
		assert.Equal(t, "auth.password_changed", audit.entries[0].Action)
		assert.Equal(t, actorID, audit.entries[0].ActorID)
	})

	t.Run("Employee Not Found", func(t *testing.T) {
		missing := uuid.NewString()
		mockEmployees.EXPECT().
			FindByID(ctx, missing).
			Return(nil, gorm.ErrRecordNotFound)

		err := service.ChangePassword(ctx, actorID, auth.ChangePasswordRequest{
			EmployeeID:  missing,
			NewPassword: "brand-new-pass",
		})
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}
