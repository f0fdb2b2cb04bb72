package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
)

type MergeHistoryRepository interface {
	Create(ctx context.Context, in *models.MergeHistory) (created *models.MergeHistory, err error)
	GetByID(ctx context.Context, id uint64) (result *models.MergeHistory, err error)
	MarkUndone(ctx context.Context, id uint64) error
	GetList(ctx context.Context, opts models.MergeHistoryFilterOptions) (result []models.MergeHistory, err error)
	CountAll(ctx context.Context, opts models.MergeHistoryFilterOptions) (total int, err error)
}

type mergeHistoryRepository sqlRepo

var _ MergeHistoryRepository = (*mergeHistoryRepository)(nil)

func (r *mergeHistoryRepository) Create(ctx context.Context, in *models.MergeHistory) (created *models.MergeHistory, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	snapshot, err := json.Marshal(in.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	entity := *in
	err = db.QueryRowContext(ctx, queryMergeHistoryCreate, in.CardIDm, snapshot).Scan(
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

func (r *mergeHistoryRepository) GetByID(ctx context.Context, id uint64) (result *models.MergeHistory, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var snapshot []byte
	result = &models.MergeHistory{}
	err = db.QueryRowContext(ctx, queryMergeHistoryGetByID, id).Scan(
		&result.ID,
		&result.CardIDm,
		&snapshot,
		&result.Undone,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	if err = json.Unmarshal(snapshot, &result.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return result, nil
}

func (r *mergeHistoryRepository) MarkUndone(ctx context.Context, id uint64) error {
	var err error
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryMergeHistoryMarkUndone, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// The guard in the WHERE clause makes a second undo a no-row update.
	if rowsAffected == 0 {
		err = common.ErrHistoryAlreadyUndone
		return err
	}

	return nil
}

func (r *mergeHistoryRepository) GetList(ctx context.Context, opts models.MergeHistoryFilterOptions) (result []models.MergeHistory, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListMergeHistoryQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var mh models.MergeHistory
		var snapshot []byte
		err = rows.Scan(
			&mh.ID,
			&mh.CardIDm,
			&snapshot,
			&mh.Undone,
			&mh.CreatedAt,
			&mh.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		if err = json.Unmarshal(snapshot, &mh.Snapshot); err != nil {
			return result, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		result = append(result, mh)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *mergeHistoryRepository) CountAll(ctx context.Context, opts models.MergeHistoryFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildCountMergeHistoryQuery(opts)
	if err != nil {
		return total, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return
	}

	return
}
