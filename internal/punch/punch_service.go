package punch

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/events"
	"go-timeclock/internal/messaging/kafka"
	puncherrors "go-timeclock/internal/punch/errors"
	"go-timeclock/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, employeeID string, req RecordPunchRequest) (PunchResponse, error)
	ListForDay(ctx context.Context, employeeID, date string) ([]PunchResponse, error)
	AdminList(ctx context.Context, employeeID, date string) ([]PunchResponse, error)
	AdminUpdate(ctx context.Context, actorID, id string, req AdminUpdatePunchRequest) (PunchResponse, error)
	AdminDelete(ctx context.Context, actorID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	audit  bootstrap.AuditLogger
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("punch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		audit:  audit,
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Record(ctx context.Context, employeeID string, req RecordPunchRequest) (PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.now()
	dayStart := now.Truncate(24 * time.Hour)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The clock must alternate: the newest punch today decides which type
	// is allowed next.
	today, err := qtx.ListByEmployeeAndRange(ctx, employeeID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return PunchResponse{}, err
	}
	if len(today) > 0 {
		last := today[len(today)-1]
		if last.Type == req.Type {
			if req.Type == TypeIn {
				return PunchResponse{}, puncherrors.ErrAlreadyClockedIn
			}
			return PunchResponse{}, puncherrors.ErrNotClockedIn
		}
	} else if req.Type == TypeOut {
		return PunchResponse{}, puncherrors.ErrNotClockedIn
	}

	source := req.Source
	if source == "" {
		source = "MANUAL"
	}

	row := &Punch{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		Type:       req.Type,
		PunchedAt:  now,
		Source:     source,
		Notes:      req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("record punch persist failed", zap.String("request_id", rid), zap.Error(err))
		return PunchResponse{}, err
	}

	if s.outbox != nil {
		event := events.PunchRecordedEvent{
			EventType:  "punch_recorded",
			RequestID:  rid,
			PunchID:    row.ID.String(),
			EmployeeID: employeeID,
			PunchType:  row.Type,
			PunchedAt:  row.PunchedAt,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PunchResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "punch",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PunchRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("record punch outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return PunchResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}

	s.logger.Info("punch recorded",
		zap.String("request_id", rid),
		zap.String("punch_id", row.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("type", row.Type),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListForDay(ctx context.Context, employeeID, date string) ([]PunchResponse, error) {
	from, to, err := DayWindow(date)
	if err != nil {
		return nil, puncherrors.ErrInvalidDate
	}

	rows, err := s.repo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) AdminList(ctx context.Context, employeeID, date string) ([]PunchResponse, error) {
	return s.ListForDay(ctx, employeeID, date)
}

func (s *service) AdminUpdate(ctx context.Context, actorID, id string, req AdminUpdatePunchRequest) (PunchResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PunchResponse{}, mapRepositoryError(err)
	}

	before := *row
	if req.Type != nil {
		row.Type = *req.Type
	}
	if req.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return PunchResponse{}, puncherrors.ErrInvalidTimestamp
		}
		row.PunchedAt = ts.UTC()
	}

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("admin update punch failed", zap.String("punch_id", id), zap.Error(err))
		return PunchResponse{}, mapRepositoryError(err)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "punch.edited",
			ActorID: actorID,
			Message: "Punch edited by admin",
			Meta: map[string]any{
				"punch_id":    id,
				"employee_id": row.EmployeeID.String(),
				"before":      map[string]any{"type": before.Type, "timestamp": before.PunchedAt},
				"after":       map[string]any{"type": row.Type, "timestamp": row.PunchedAt},
			},
		})
	}
	return mapToResponse(*row), nil
}

func (s *service) AdminDelete(ctx context.Context, actorID, id string) error {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("admin delete punch failed", zap.String("punch_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "punch.deleted",
			ActorID: actorID,
			Message: "Punch deleted by admin",
			Meta: map[string]any{
				"punch_id":    id,
				"employee_id": row.EmployeeID.String(),
				"type":        row.Type,
				"timestamp":   row.PunchedAt,
			},
		})
	}
	return nil
}

func mapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Type:       p.Type,
		Timestamp:  p.PunchedAt.Format(time.RFC3339),
		Date:       p.PunchedAt.UTC().Format("2006-01-02"),
		Source:     p.Source,
		Notes:      p.Notes,
	}
}

func mapToListResponse(rows []Punch) []PunchResponse {
	res := make([]PunchResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
