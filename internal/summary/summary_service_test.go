package summary_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-timeclock/internal/employee"
	"go-timeclock/internal/events"
	"go-timeclock/internal/messaging/kafka"
	kafkaMock "go-timeclock/internal/messaging/kafka/mock"
	"go-timeclock/internal/punch"
	"go-timeclock/internal/summary"
	summaryerrors "go-timeclock/internal/summary/errors"
	summaryMock "go-timeclock/internal/summary/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func punchAt(employeeID uuid.UUID, kind string, ts time.Time) punch.Punch {
	return punch.Punch{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Type:       kind,
		PunchedAt:  ts,
	}
}

func strptr(s string) *string { return &s }

func TestService_Calculate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	repo := summaryMock.NewMockRepository(ctrl)
	punches := summaryMock.NewMockPunchSource(ctrl)
	employees := summaryMock.NewMockEmployeeDirectory(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := summary.NewService(db, repo, punches, employees, outbox, nil)
	ctx := context.Background()

	employeeID := uuid.New()
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	employees.EXPECT().
		FindByID(ctx, employeeID.String()).
		Return(&employee.Employee{ID: employeeID}, nil)

	punches.EXPECT().
		ListByEmployeeAndRange(ctx, employeeID.String(), day, day.Add(24*time.Hour)).
		Return([]punch.Punch{
			punchAt(employeeID, punch.TypeIn, day.Add(9*time.Hour)),
			punchAt(employeeID, punch.TypeOut, day.Add(18*time.Hour)),
		}, nil)

	var savedRow summary.DailySummary
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *summary.DailySummary) error {
			savedRow = *s
			return nil
		})

	var savedEvent kafka.OutboxEvent
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			savedEvent = e
			return nil
		})

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	resp, err := svc.Calculate(ctx, employeeID.String(), "2024-03-11")
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())

	// 09:00-18:00 against the default 09:00-18:00 shift
	assert.Equal(t, 9.0, resp.RegularHours)
	assert.Equal(t, 0.0, resp.Overtime)
	assert.Equal(t, 0, resp.LateMinutes)
	assert.Equal(t, 0, resp.UndertimeMinutes)
	assert.Equal(t, 9.0, resp.TotalHours)
	assert.Equal(t, 1, resp.WorkSessions)
	assert.Equal(t, employeeID.String()+"_2024-03-11", resp.ID)

	assert.Equal(t, employeeID, savedRow.EmployeeID)
	assert.Equal(t, day, savedRow.Date)
	assert.False(t, savedRow.UpdatedAt.IsZero())

	assert.Equal(t, events.SummaryGeneratedTopic, savedEvent.Topic)
	assert.Equal(t, "summary_generated", savedEvent.EventType)
	assert.Equal(t, savedRow.DocID(), savedEvent.AggregateID)

	var payload events.SummaryGeneratedEvent
	assert.NoError(t, json.Unmarshal(savedEvent.Payload, &payload))
	assert.Equal(t, employeeID.String(), payload.EmployeeID)
	assert.Equal(t, "2024-03-11", payload.Date)
	assert.Equal(t, 9.0, payload.RegularHours)
}

func TestService_Calculate_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := summary.NewService(
		db,
		summaryMock.NewMockRepository(ctrl),
		summaryMock.NewMockPunchSource(ctrl),
		summaryMock.NewMockEmployeeDirectory(ctrl),
		nil,
		nil,
	)

	_, err := svc.Calculate(context.Background(), uuid.NewString(), "11-03-2024")
	assert.Equal(t, summaryerrors.ErrInvalidDate, err)
}

func TestService_Calculate_EmployeeNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	employees := summaryMock.NewMockEmployeeDirectory(ctrl)
	employees.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)

	svc := summary.NewService(
		db,
		summaryMock.NewMockRepository(ctrl),
		summaryMock.NewMockPunchSource(ctrl),
		employees,
		nil,
		nil,
	)

	_, err := svc.Calculate(context.Background(), uuid.NewString(), "2024-03-11")
	assert.Equal(t, summaryerrors.ErrEmployeeNotFound, err)
}

// An employee misconfigured with an overnight shift still gets a summary
// row; the unusable sessions are skipped rather than failing the date.
func TestService_Calculate_SkipsUnusableSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	repo := summaryMock.NewMockRepository(ctrl)
	punches := summaryMock.NewMockPunchSource(ctrl)
	employees := summaryMock.NewMockEmployeeDirectory(ctrl)

	svc := summary.NewService(db, repo, punches, employees, nil, nil)
	ctx := context.Background()

	employeeID := uuid.New()
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	employees.EXPECT().
		FindByID(ctx, employeeID.String()).
		Return(&employee.Employee{
			ID:            employeeID,
			ScheduleStart: strptr("22:00"),
			ScheduleEnd:   strptr("06:00"),
		}, nil)

	punches.EXPECT().
		ListByEmployeeAndRange(ctx, employeeID.String(), day, day.Add(24*time.Hour)).
		Return([]punch.Punch{
			punchAt(employeeID, punch.TypeIn, day.Add(9*time.Hour)),
			punchAt(employeeID, punch.TypeOut, day.Add(17*time.Hour)),
		}, nil)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *summary.DailySummary) error {
			assert.Equal(t, 0.0, s.TotalHours)
			assert.Equal(t, 0, s.WorkSessions)
			return nil
		})

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	resp, err := svc.Calculate(ctx, employeeID.String(), "2024-03-11")
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.WorkSessions)
}

func TestService_RegenerateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	repo := summaryMock.NewMockRepository(ctrl)
	punches := summaryMock.NewMockPunchSource(ctrl)
	employees := summaryMock.NewMockEmployeeDirectory(ctrl)

	svc := summary.NewService(db, repo, punches, employees, nil, nil)
	ctx := context.Background()

	employeeID := uuid.New()
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	tuesday := monday.Add(24 * time.Hour)

	employees.EXPECT().
		FindAll(ctx).
		Return([]employee.Employee{{ID: employeeID}}, nil)

	punches.EXPECT().
		ListAllByEmployee(ctx, employeeID.String()).
		Return([]punch.Punch{
			punchAt(employeeID, punch.TypeIn, monday.Add(9*time.Hour)),
			punchAt(employeeID, punch.TypeOut, monday.Add(18*time.Hour)),
			punchAt(employeeID, punch.TypeIn, tuesday.Add(9*time.Hour)),
			punchAt(employeeID, punch.TypeOut, tuesday.Add(13*time.Hour)),
		}, nil)

	saved := map[string]summary.DailySummary{}
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).Times(2)
	repo.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *summary.DailySummary) error {
			saved[s.Date.Format("2006-01-02")] = *s
			return nil
		}).
		Times(2)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	written, err := svc.RegenerateAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.NoError(t, dbMock.ExpectationsWereMet())

	assert.Equal(t, 9.0, saved["2024-03-11"].RegularHours)

	// 09:00-13:00 sits fully inside the shift, short of 18:00 by 5 hours
	assert.Equal(t, 4.0, saved["2024-03-12"].RegularHours)
	assert.Equal(t, 300, saved["2024-03-12"].UndertimeMinutes)
}

func TestService_GetByEmployee_CachesUnfilteredReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()
	repo := summaryMock.NewMockRepository(ctrl)

	svc := summary.NewService(
		db,
		repo,
		summaryMock.NewMockPunchSource(ctrl),
		summaryMock.NewMockEmployeeDirectory(ctrl),
		nil,
		rdb,
	)
	ctx := context.Background()

	employeeID := uuid.New()
	cacheKey := "summaries:employee:" + employeeID.String()
	row := summary.DailySummary{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Date:         time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		RegularHours: 8,
		TotalHours:   8,
		WorkSessions: 1,
	}

	repo.EXPECT().
		FindByEmployee(ctx, employeeID.String(), gomock.Nil(), gomock.Nil()).
		Return([]summary.DailySummary{row}, nil).
		Times(1)

	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.Regexp().ExpectSet(cacheKey, `.*`, 10*time.Minute).SetVal("OK")

	first, err := svc.GetByEmployee(ctx, employeeID.String(), "", "")
	assert.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, "2024-03-11", first[0].Date)

	payload, _ := json.Marshal(first)
	redisMock.ExpectGet(cacheKey).SetVal(string(payload))

	// Second read is served from the cache; the repo expectation above
	// allows exactly one call.
	second, err := svc.GetByEmployee(ctx, employeeID.String(), "", "")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetByEmployee_RangeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := summaryMock.NewMockRepository(ctrl)
	svc := summary.NewService(
		db,
		repo,
		summaryMock.NewMockPunchSource(ctrl),
		summaryMock.NewMockEmployeeDirectory(ctrl),
		nil,
		nil,
	)
	ctx := context.Background()
	employeeID := uuid.NewString()

	_, err := svc.GetByEmployee(ctx, employeeID, "2024-03-11", "")
	assert.Equal(t, summaryerrors.ErrInvalidDateRange, err)

	_, err = svc.GetByEmployee(ctx, employeeID, "2024-03-11", "2024-03-01")
	assert.Equal(t, summaryerrors.ErrInvalidDateRange, err)

	repo.EXPECT().
		FindByEmployee(ctx, employeeID, gomock.Any(), gomock.Any()).
		Return([]summary.DailySummary{}, nil)

	rows, err := svc.GetByEmployee(ctx, employeeID, "2024-03-01", "2024-03-11")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestService_GetForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := summaryMock.NewMockRepository(ctrl)
	svc := summary.NewService(
		db,
		repo,
		summaryMock.NewMockPunchSource(ctrl),
		summaryMock.NewMockEmployeeDirectory(ctrl),
		nil,
		nil,
	)
	ctx := context.Background()
	employeeID := uuid.New()
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		FindByEmployeeAndDate(ctx, employeeID.String(), day).
		Return(&summary.DailySummary{EmployeeID: employeeID, Date: day, TotalHours: 8}, nil)

	resp, err := svc.GetForDate(ctx, employeeID.String(), "2024-03-11")
	assert.NoError(t, err)
	assert.Equal(t, 8.0, resp.TotalHours)

	repo.EXPECT().
		FindByEmployeeAndDate(ctx, employeeID.String(), day).
		Return(nil, gorm.ErrRecordNotFound)

	_, err = svc.GetForDate(ctx, employeeID.String(), "2024-03-11")
	assert.Equal(t, summaryerrors.ErrSummaryNotFound, err)
}

func TestService_GetAllGrouped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := summaryMock.NewMockRepository(ctrl)
	svc := summary.NewService(
		db,
		repo,
		summaryMock.NewMockPunchSource(ctrl),
		summaryMock.NewMockEmployeeDirectory(ctrl),
		nil,
		nil,
	)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		FindAllInRange(ctx, day, day.Add(4*24*time.Hour)).
		Return([]summary.DailySummary{
			{EmployeeID: alice, Date: day.Add(24 * time.Hour)},
			{EmployeeID: alice, Date: day},
			{EmployeeID: bob, Date: day},
		}, nil)

	grouped, err := svc.GetAllGrouped(ctx, "2024-03-11", "2024-03-15")
	assert.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[alice.String()], 2)
	assert.Len(t, grouped[bob.String()], 1)

	_, err = svc.GetAllGrouped(ctx, "2024-03-15", "2024-03-11")
	assert.Equal(t, summaryerrors.ErrInvalidDateRange, err)
}
