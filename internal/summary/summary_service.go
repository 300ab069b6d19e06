package summary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go-timeclock/internal/employee"
	"go-timeclock/internal/events"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/punch"
	summaryerrors "go-timeclock/internal/summary/errors"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/timesheet"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryCacheKeyPrefix = "summaries:employee:"
const summaryCacheTTL = 10 * time.Minute

func employeeCacheKey(employeeID string) string {
	return summaryCacheKeyPrefix + employeeID
}

// PunchSource is the engine's read-only view of the attendance log.
// The punch repository satisfies it; the engine never writes punches.
type PunchSource interface {
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error)
	ListAllByEmployee(ctx context.Context, employeeID string) ([]punch.Punch, error)
}

// EmployeeDirectory supplies schedules and the batch-mode roster.
// The employee repository satisfies it.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindAll(ctx context.Context) ([]employee.Employee, error)
}

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, employeeID, date string) (SummaryResponse, error)
	RegenerateAll(ctx context.Context) (int, error)
	GetByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]SummaryResponse, error)
	GetForDate(ctx context.Context, employeeID, date string) (SummaryResponse, error)
	GetAllGrouped(ctx context.Context, startDate, endDate string) (map[string][]SummaryResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	punches   PunchSource
	employees EmployeeDirectory
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	punches PunchSource,
	employees EmployeeDirectory,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		db:        db,
		repo:      repo,
		punches:   punches,
		employees: employees,
		outbox:    outbox,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Calculate is the on-demand mode: recompute and persist one
// (employee, date) summary from the current punch set.
func (s *service) Calculate(ctx context.Context, employeeID, date string) (SummaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	from, to, err := punch.DayWindow(date)
	if err != nil {
		return SummaryResponse{}, summaryerrors.ErrInvalidDate
	}

	sched, err := s.scheduleFor(ctx, employeeID)
	if err != nil {
		return SummaryResponse{}, err
	}

	rows, err := s.punches.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("calculate summary load punches failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SummaryResponse{}, err
	}

	totals := s.scoreDay(rows, sched, employeeID, date)
	row := s.buildRow(employeeID, from, totals)

	if err := s.persist(ctx, row, rid); err != nil {
		return SummaryResponse{}, err
	}

	s.invalidateCache(ctx, employeeID)

	s.logger.Info("daily summary calculated",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("date", date),
		zap.Int("work_sessions", totals.WorkSessions),
	)
	return mapToResponse(*row), nil
}

// RegenerateAll is the batch mode: walk every employee's entire punch
// history grouped by UTC calendar date and summarize each day through the
// same scoring path as Calculate. Failures are logged and skipped so one
// bad day never aborts the run. Returns the number of summaries written.
func (s *service) RegenerateAll(ctx context.Context) (int, error) {
	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, emp := range emps {
		employeeID := emp.ID.String()
		sched := emp.ScheduleOrDefault()

		rows, err := s.punches.ListAllByEmployee(ctx, employeeID)
		if err != nil {
			s.logger.Error("regenerate load punches failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		byDate := make(map[string][]punch.Punch)
		for _, p := range rows {
			if p.PunchedAt.IsZero() {
				continue
			}
			key := p.PunchedAt.UTC().Format("2006-01-02")
			byDate[key] = append(byDate[key], p)
		}

		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		for _, date := range dates {
			dayStart, _, err := punch.DayWindow(date)
			if err != nil {
				continue
			}

			totals := s.scoreDay(byDate[date], sched, employeeID, date)
			row := s.buildRow(employeeID, dayStart, totals)

			if err := s.persist(ctx, row, ""); err != nil {
				s.logger.Error("regenerate persist summary failed",
					zap.String("employee_id", employeeID),
					zap.String("date", date),
					zap.Error(err),
				)
				continue
			}
			written++
		}

		s.invalidateCache(ctx, employeeID)
	}

	s.logger.Info("summary regeneration finished", zap.Int("written", written))
	return written, nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]SummaryResponse, error) {
	var startPtr, endPtr *time.Time
	if startDate != "" && endDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, summaryerrors.ErrInvalidDateRange
		}
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil || end.Before(start) {
			return nil, summaryerrors.ErrInvalidDateRange
		}
		startPtr, endPtr = &start, &end
	} else if startDate != "" || endDate != "" {
		return nil, summaryerrors.ErrInvalidDateRange
	}

	// Unfiltered history is what the dashboard polls; cache just that.
	if startPtr == nil {
		return s.getByEmployeeCached(ctx, employeeID)
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID, startPtr, endPtr)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) getByEmployeeCached(ctx context.Context, employeeID string) ([]SummaryResponse, error) {
	cacheKey := employeeCacheKey(employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindByEmployee(ctx, employeeID, nil, nil)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, summaryCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]SummaryResponse), nil
}

func (s *service) GetForDate(ctx context.Context, employeeID, date string) (SummaryResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return SummaryResponse{}, summaryerrors.ErrInvalidDate
	}

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SummaryResponse{}, summaryerrors.ErrSummaryNotFound
		}
		return SummaryResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAllGrouped(ctx context.Context, startDate, endDate string) (map[string][]SummaryResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, summaryerrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		return nil, summaryerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindAllInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]SummaryResponse)
	for _, r := range rows {
		key := r.EmployeeID.String()
		grouped[key] = append(grouped[key], mapToResponse(r))
	}
	return grouped, nil
}

// scoreDay pairs a day's punches and scores each pair with the shared
// engine. Punches without a usable timestamp are skipped; a pair the
// engine rejects is skipped and logged without failing the date.
func (s *service) scoreDay(rows []punch.Punch, sched timesheet.Schedule, employeeID, date string) timesheet.DayTotals {
	instants := make([]time.Time, 0, len(rows))
	for _, p := range rows {
		if p.PunchedAt.IsZero() {
			continue
		}
		instants = append(instants, p.PunchedAt)
	}

	pairs := timesheet.PairPunches(instants)
	results := make([]timesheet.SessionResult, 0, len(pairs))
	for _, pair := range pairs {
		res, err := timesheet.EvaluateSession(pair[0], pair[1], sched)
		if err != nil {
			s.logger.Warn("skipping malformed session",
				zap.String("employee_id", employeeID),
				zap.String("date", date),
				zap.Time("punch_in", pair[0]),
				zap.Time("punch_out", pair[1]),
				zap.Error(err),
			)
			continue
		}
		results = append(results, res)
	}

	return timesheet.SummarizeSessions(results)
}

func (s *service) buildRow(employeeID string, date time.Time, totals timesheet.DayTotals) *DailySummary {
	return &DailySummary{
		ID:               uuid.New(),
		EmployeeID:       uuid.MustParse(employeeID),
		Date:             date,
		RegularHours:     totals.RegularHours,
		Overtime:         totals.OvertimeHours,
		NightDiff:        totals.NightDiffHours,
		LateMinutes:      totals.LateMinutes,
		UndertimeMinutes: totals.UndertimeMinutes,
		TotalHours:       totals.TotalHours,
		WorkSessions:     totals.WorkSessions,
		UpdatedAt:        s.now(),
	}
}

// persist writes the summary and its outbox event in one transaction; the
// summary is complete in memory before anything touches the database.
func (s *service) persist(ctx context.Context, row *DailySummary, rid string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, row); err != nil {
		return err
	}

	if s.outbox != nil {
		event := events.SummaryGeneratedEvent{
			EventType:        "summary_generated",
			RequestID:        rid,
			EmployeeID:       row.EmployeeID.String(),
			Date:             row.Date.UTC().Format("2006-01-02"),
			RegularHours:     row.RegularHours,
			OvertimeHours:    row.Overtime,
			NightDiffHours:   row.NightDiff,
			LateMinutes:      row.LateMinutes,
			UndertimeMinutes: row.UndertimeMinutes,
			TotalHours:       row.TotalHours,
			WorkSessions:     row.WorkSessions,
			OccurredAt:       s.now(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "daily_summary",
			AggregateID:   row.DocID(),
			EventType:     event.EventType,
			Topic:         events.SummaryGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *service) scheduleFor(ctx context.Context, employeeID string) (timesheet.Schedule, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return timesheet.Schedule{}, summaryerrors.ErrEmployeeNotFound
		}
		return timesheet.Schedule{}, err
	}
	return emp.ScheduleOrDefault(), nil
}

func (s *service) invalidateCache(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := employeeCacheKey(employeeID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate summary cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(s DailySummary) SummaryResponse {
	return SummaryResponse{
		ID:               s.DocID(),
		EmployeeID:       s.EmployeeID.String(),
		Date:             s.Date.UTC().Format("2006-01-02"),
		RegularHours:     s.RegularHours,
		Overtime:         s.Overtime,
		NightDiff:        s.NightDiff,
		LateMinutes:      s.LateMinutes,
		UndertimeMinutes: s.UndertimeMinutes,
		TotalHours:       s.TotalHours,
		WorkSessions:     s.WorkSessions,
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(rows []DailySummary) []SummaryResponse {
	res := make([]SummaryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
