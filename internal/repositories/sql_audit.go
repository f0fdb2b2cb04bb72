package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
)

type AuditRepository interface {
	Record(ctx context.Context, event models.AuditEvent) error
}

type auditRepository sqlRepo

var _ AuditRepository = (*auditRepository)(nil)

func (r *auditRepository) Record(ctx context.Context, event models.AuditEvent) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.Operator = models.NormalizeOperator(event.Operator)

	_, err = db.ExecContext(ctx, queryAuditRecord,
		event.ID,
		event.Operator,
		event.Action,
		event.TargetType,
		event.TargetID,
		event.Before,
		event.After,
	)
	return err
}
