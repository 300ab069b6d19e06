package punch

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	puncherrors "go-timeclock/internal/punch/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	recordFn     func(ctx context.Context, employeeID string, req RecordPunchRequest) (PunchResponse, error)
	listForDayFn func(ctx context.Context, employeeID, date string) ([]PunchResponse, error)
}

func (f *fakeService) Record(ctx context.Context, employeeID string, req RecordPunchRequest) (PunchResponse, error) {
	return f.recordFn(ctx, employeeID, req)
}
func (f *fakeService) ListForDay(ctx context.Context, employeeID, date string) ([]PunchResponse, error) {
	return f.listForDayFn(ctx, employeeID, date)
}
func (f *fakeService) AdminList(ctx context.Context, employeeID, date string) ([]PunchResponse, error) {
	return f.listForDayFn(ctx, employeeID, date)
}
func (f *fakeService) AdminUpdate(ctx context.Context, actorID, id string, req AdminUpdatePunchRequest) (PunchResponse, error) {
	return PunchResponse{}, nil
}
func (f *fakeService) AdminDelete(ctx context.Context, actorID, id string) error { return nil }

func TestHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.NewString()

	svc := &fakeService{}
	handler := NewHandler(svc)

	t.Run("Success", func(t *testing.T) {
		svc.recordFn = func(_ context.Context, empID string, req RecordPunchRequest) (PunchResponse, error) {
			assert.Equal(t, employeeID, empID)
			assert.Equal(t, TypeIn, req.Type)
			return PunchResponse{ID: uuid.NewString(), EmployeeID: empID, Type: req.Type}, nil
		}

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.Use(func(c *gin.Context) { c.Set("user_id_validated", employeeID); c.Next() })
		r.POST("/punches", handler.Record)

		body, _ := json.Marshal(RecordPunchRequest{Type: TypeIn})
		req, _ := http.NewRequest(http.MethodPost, "/punches", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Invalid Type", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/punches", handler.Record)

		req, _ := http.NewRequest(http.MethodPost, "/punches", bytes.NewBufferString(`{"type":"lunch"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Conflict From Service", func(t *testing.T) {
		svc.recordFn = func(_ context.Context, _ string, _ RecordPunchRequest) (PunchResponse, error) {
			return PunchResponse{}, puncherrors.ErrAlreadyClockedIn
		}

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.Use(func(c *gin.Context) { c.Set("user_id_validated", employeeID); c.Next() })
		r.POST("/punches", handler.Record)

		body, _ := json.Marshal(RecordPunchRequest{Type: TypeIn})
		req, _ := http.NewRequest(http.MethodPost, "/punches", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_ListMine_DefaultsToToday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.NewString()

	var gotDate string
	svc := &fakeService{
		listForDayFn: func(_ context.Context, _, date string) ([]PunchResponse, error) {
			gotDate = date
			return []PunchResponse{}, nil
		},
	}
	handler := NewHandler(svc)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(func(c *gin.Context) { c.Set("user_id_validated", employeeID); c.Next() })
	r.GET("/punches", handler.ListMine)

	req, _ := http.NewRequest(http.MethodGet, "/punches", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, gotDate)
}
