package repositories

import (
	"context"
	"fmt"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/common/log"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
)

type DetailRepository interface {
	GetByLedgerID(ctx context.Context, ledgerID uint64) (result models.DetailRecords, err error)
	GetByLedgerIDs(ctx context.Context, ledgerIDs []uint64) (result map[uint64]models.DetailRecords, err error)
	Reparent(ctx context.Context, fromLedgerID, toLedgerID uint64) error
	SetOwner(ctx context.Context, detailIDs []uint64, ledgerID uint64) error
	ClearGroupTags(ctx context.Context, ledgerID uint64) error
}

type detailRepository sqlRepo

var _ DetailRepository = (*detailRepository)(nil)

func scanDetailRecord(row interface{ Scan(...interface{}) error }, d *models.DetailRecord) error {
	return row.Scan(
		&d.ID,
		&d.LedgerID,
		&d.SeqNo,
		&d.TappedAt,
		&d.EntryStationCode,
		&d.ExitStationCode,
		&d.EntryStation,
		&d.ExitStation,
		&d.IsBus,
		&d.IsCharge,
		&d.IsPointRedemption,
		&d.Amount,
		&d.BalanceAfter,
		&d.BusStop,
		&d.GroupTag,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}

func (r *detailRepository) GetByLedgerID(ctx context.Context, ledgerID uint64) (result models.DetailRecords, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	grouped, err := r.GetByLedgerIDs(ctx, []uint64{ledgerID})
	if err != nil {
		return nil, err
	}

	return grouped[ledgerID], nil
}

func (r *detailRepository) GetByLedgerIDs(ctx context.Context, ledgerIDs []uint64) (result map[uint64]models.DetailRecords, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildGetDetailByLedgerIDsQuery(ledgerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	result = make(map[uint64]models.DetailRecords, len(ledgerIDs))

	defer rows.Close()
	for rows.Next() {
		var d models.DetailRecord
		if err = scanDetailRecord(rows, &d); err != nil {
			return result, err
		}
		result[d.LedgerID] = append(result[d.LedgerID], d)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *detailRepository) Reparent(ctx context.Context, fromLedgerID, toLedgerID uint64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryDetailReparent, fromLedgerID, toLedgerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		// Entries without detail rows are legal, a no-op move is fine.
		log.Warnf(ctx, "no detail rows moved from ledger %d to %d", fromLedgerID, toLedgerID)
	}

	return nil
}

func (r *detailRepository) SetOwner(ctx context.Context, detailIDs []uint64, ledgerID uint64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	query, args, err := buildSetDetailOwnerQuery(detailIDs, ledgerID)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		err = common.ErrNoRowsAffected
		return err
	}

	return nil
}

func (r *detailRepository) ClearGroupTags(ctx context.Context, ledgerID uint64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryDetailClearGroupTags, ledgerID)
	return err
}
