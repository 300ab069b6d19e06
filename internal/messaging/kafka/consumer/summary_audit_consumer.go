package consumer

import (
	"context"
	"encoding/json"

	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeSummaryGenerated feeds recomputed daily summaries into the audit
// trail. The summary itself is already persisted by the producer side, so
// any failure here is log-and-skip, never a reprocess of the summary.
func ConsumeSummaryGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.summary_generated")
	log.Info("summary generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("summary generated consumer stopped")
				return
			}
			log.Error("fetch summary generated message failed", zap.Error(err))
			continue
		}

		var event events.SummaryGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode summary_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "summary.generated",
			Message: "Daily summary recomputed",
			Meta: map[string]any{
				"employee_id":   event.EmployeeID,
				"date":          event.Date,
				"total_hours":   event.TotalHours,
				"work_sessions": event.WorkSessions,
				"request_id":    event.RequestID,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit summary generated message failed", zap.Error(err))
			continue
		}
	}
}
