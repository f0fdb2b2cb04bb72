package services

import (
	"context"
	"errors"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
)

type LedgerService interface {
	GetList(ctx context.Context, req models.GetLedgerListRequest) (output []models.LedgerEntry, total int, err error)
	GetByID(ctx context.Context, id uint64) (entry *models.LedgerEntry, details models.DetailRecords, err error)
}

type ledger service

var _ LedgerService = (*ledger)(nil)

// GetList returns the entries in the requested window in reconstructed
// chronological order. Stored order is by (date, id), which reflects reader
// dump order, not the true same-day sequence, so each returned window is run
// through the balance chain first.
func (s *ledger) GetList(ctx context.Context, req models.GetLedgerListRequest) (output []models.LedgerEntry, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	opts, err := req.ToFilterOpts()
	if err != nil {
		err = models.GetErrMap(models.ErrKeyInvalidDateRange)
		return
	}

	entries, err := s.srv.sqlRepo.GetLedgerRepository().GetList(ctx, *opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	total, err = s.srv.sqlRepo.GetLedgerRepository().CountAll(ctx, *opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	if len(entries) == 0 {
		return
	}

	carryOver, err := s.carryOverBalance(ctx, req.CardIDm, entries)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	output = models.ReorderWindowByBalanceChain(entries, carryOver)

	return
}

// carryOverBalance looks up the last balance before the window. A card with
// no history before the window starts from zero.
func (s *ledger) carryOverBalance(ctx context.Context, cardIDm string, entries []models.LedgerEntry) (int64, error) {
	first := entries[0]
	for _, e := range entries[1:] {
		if e.Earlier(first) {
			first = e
		}
	}

	prev, err := s.srv.sqlRepo.GetLedgerRepository().GetLatestBefore(ctx, cardIDm, first.EntryDate)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return prev.Balance, nil
}

func (s *ledger) GetByID(ctx context.Context, id uint64) (entry *models.LedgerEntry, details models.DetailRecords, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	entry, err = s.srv.sqlRepo.GetLedgerRepository().GetByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	details, err = s.srv.sqlRepo.GetDetailRepository().GetByLedgerID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}
