package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
)

type LedgerRepository interface {
	GetByID(ctx context.Context, id uint64) (result *models.LedgerEntry, err error)
	GetByIDs(ctx context.Context, ids []uint64) (result []models.LedgerEntry, err error)
	GetList(ctx context.Context, opts models.LedgerFilterOptions) (result []models.LedgerEntry, err error)
	CountAll(ctx context.Context, opts models.LedgerFilterOptions) (total int, err error)
	GetLatestBefore(ctx context.Context, cardIDm string, day time.Time) (result *models.LedgerEntry, err error)
	Insert(ctx context.Context, in *models.LedgerEntry) (created *models.LedgerEntry, err error)
	Restore(ctx context.Context, in *models.LedgerEntry) error
	Update(ctx context.Context, in *models.LedgerEntry) error
	UpdateBalance(ctx context.Context, id uint64, balance int64) error
	Delete(ctx context.Context, id uint64) error
}

type ledgerRepository sqlRepo

var _ LedgerRepository = (*ledgerRepository)(nil)

func scanLedgerEntry(row interface{ Scan(...interface{}) error }, e *models.LedgerEntry) error {
	return row.Scan(
		&e.ID,
		&e.CardIDm,
		&e.EntryDate,
		&e.Summary,
		&e.Income,
		&e.Expense,
		&e.Balance,
		&e.StaffIDm,
		&e.StaffName,
		&e.Note,
		&e.IsLent,
		&e.LentAt,
		&e.ReturnedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

func (r *ledgerRepository) GetByID(ctx context.Context, id uint64) (result *models.LedgerEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result = &models.LedgerEntry{}
	err = scanLedgerEntry(db.QueryRowContext(ctx, queryLedgerGetByID, id), result)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (r *ledgerRepository) GetByIDs(ctx context.Context, ids []uint64) (result []models.LedgerEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryLedgerGetByIDs, pq.Array(ids))
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var e models.LedgerEntry
		if err = scanLedgerEntry(rows, &e); err != nil {
			return result, err
		}
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *ledgerRepository) GetList(ctx context.Context, opts models.LedgerFilterOptions) (result []models.LedgerEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListLedgerQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var e models.LedgerEntry
		if err = scanLedgerEntry(rows, &e); err != nil {
			return result, err
		}
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *ledgerRepository) CountAll(ctx context.Context, opts models.LedgerFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildCountLedgerQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}

func (r *ledgerRepository) GetLatestBefore(ctx context.Context, cardIDm string, day time.Time) (result *models.LedgerEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result = &models.LedgerEntry{}
	err = scanLedgerEntry(db.QueryRowContext(ctx, queryLedgerGetLatestBefore, cardIDm, day), result)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}

func (r *ledgerRepository) Insert(ctx context.Context, in *models.LedgerEntry) (created *models.LedgerEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	entity := *in
	err = db.QueryRowContext(ctx, queryLedgerInsert,
		in.CardIDm,
		in.EntryDate,
		in.Summary,
		in.Income,
		in.Expense,
		in.Balance,
		in.StaffIDm,
		in.StaffName,
		in.Note,
		in.IsLent,
		in.LentAt,
		in.ReturnedAt,
	).Scan(
		&entity.ID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return
	}

	created = &entity

	return
}

// Restore reinserts a deleted entry keeping its original id, so undo leaves
// the ledger byte-for-byte where it was.
func (r *ledgerRepository) Restore(ctx context.Context, in *models.LedgerEntry) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryLedgerRestore,
		in.ID,
		in.CardIDm,
		in.EntryDate,
		in.Summary,
		in.Income,
		in.Expense,
		in.Balance,
		in.StaffIDm,
		in.StaffName,
		in.Note,
		in.IsLent,
		in.LentAt,
		in.ReturnedAt,
	)
	return err
}

func (r *ledgerRepository) Update(ctx context.Context, in *models.LedgerEntry) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryLedgerUpdate,
		in.ID,
		in.EntryDate,
		in.Summary,
		in.Income,
		in.Expense,
		in.Balance,
		in.Note,
	)
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

func (r *ledgerRepository) UpdateBalance(ctx context.Context, id uint64, balance int64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryLedgerUpdateBalance, id, balance)
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

func (r *ledgerRepository) Delete(ctx context.Context, id uint64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryLedgerDeleteByID, id)
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
