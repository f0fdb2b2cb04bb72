package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
	"github.com/transitops/cardledger/internal/repositories"
)

type BalanceService interface {
	Check(ctx context.Context, req models.BalanceCheckRequest) (output *models.BalanceCheckOut, err error)
	Recalculate(ctx context.Context, req models.BalanceCheckRequest) (output *models.BalanceCheckOut, err error)
	UndoRecalculate(ctx context.Context, req models.UndoRecalculateRequest) (err error)
}

type balance service

var _ BalanceService = (*balance)(nil)

// Check scans the window read-only and reports every entry whose balance
// breaks the running-balance invariant. The window's first entry is only
// checked when the request carries an explicit preceding balance.
func (s *balance) Check(ctx context.Context, req models.BalanceCheckRequest) (output *models.BalanceCheckOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	corrections, err := s.findCorrections(ctx, s.srv.sqlRepo, req)
	if err != nil {
		return
	}

	output = &models.BalanceCheckOut{Corrections: corrections}

	return
}

// Recalculate runs the same scan as Check and persists every corrected
// balance. The applied corrections double as the undo token.
func (s *balance) Recalculate(ctx context.Context, req models.BalanceCheckRequest) (output *models.BalanceCheckOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	s.srv.locks.Lock(req.CardIDm)
	defer s.srv.locks.Unlock(req.CardIDm)

	var corrections []models.BalanceCorrection
	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var stepErr error
		corrections, stepErr = s.findCorrections(ctx, r, req)
		if stepErr != nil {
			return stepErr
		}

		for _, c := range corrections {
			if stepErr = r.GetLedgerRepository().UpdateBalance(ctx, c.LedgerID, c.ExpectedBalance); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
		}

		if len(corrections) == 0 {
			return nil
		}

		payload, stepErr := json.Marshal(corrections)
		if stepErr != nil {
			return stepErr
		}
		return r.GetAuditRepository().Record(ctx, models.AuditEvent{
			Operator:   req.Operator,
			Action:     models.AuditActionRecalculated,
			TargetType: "card",
			After:      payload,
		})
	})
	if err != nil {
		return
	}

	output = &models.BalanceCheckOut{Corrections: corrections}

	return
}

// UndoRecalculate restores the pre-correction balance of every entry named in
// the token. Entries deleted since the recalculation are skipped, so the call
// is idempotent and replay-safe.
func (s *balance) UndoRecalculate(ctx context.Context, req models.UndoRecalculateRequest) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		for _, c := range req.Corrections {
			_, stepErr := r.GetLedgerRepository().GetByID(ctx, c.LedgerID)
			if stepErr != nil {
				if errors.Is(stepErr, common.ErrDataNotFound) {
					continue
				}
				return checkDatabaseError(stepErr)
			}

			if stepErr = r.GetLedgerRepository().UpdateBalance(ctx, c.LedgerID, c.ActualBalance); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
		}

		payload, stepErr := json.Marshal(req.Corrections)
		if stepErr != nil {
			return stepErr
		}
		return r.GetAuditRepository().Record(ctx, models.AuditEvent{
			Operator:   req.Operator,
			Action:     models.AuditActionRecalculated,
			TargetType: "card",
			Before:     payload,
		})
	})

	return
}

func (s *balance) findCorrections(ctx context.Context, r repositories.SQLRepository, req models.BalanceCheckRequest) ([]models.BalanceCorrection, error) {
	from, to, err := req.Window()
	if err != nil {
		return nil, models.GetErrMap(models.ErrKeyInvalidDateRange)
	}

	entries, err := r.GetLedgerRepository().GetList(ctx, models.LedgerFilterOptions{
		CardIDm:  req.CardIDm,
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Earlier(entries[j])
	})

	var corrections []models.BalanceCorrection

	running := entries[0].Balance
	if req.PrecedingBalance != nil {
		expected := *req.PrecedingBalance + entries[0].Income - entries[0].Expense
		if entries[0].Balance != expected {
			corrections = append(corrections, models.BalanceCorrection{
				LedgerID:        entries[0].ID,
				ActualBalance:   entries[0].Balance,
				ExpectedBalance: expected,
			})
		}
		running = expected
	}

	for _, e := range entries[1:] {
		expected := running + e.Income - e.Expense
		if e.Balance != expected {
			corrections = append(corrections, models.BalanceCorrection{
				LedgerID:        e.ID,
				ActualBalance:   e.Balance,
				ExpectedBalance: expected,
			})
		}
		running = expected
	}

	return corrections, nil
}
