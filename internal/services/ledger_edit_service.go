package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/monitoring"
	"github.com/transitops/cardledger/internal/repositories"
)

type LedgerEditService interface {
	Merge(ctx context.Context, req models.MergeEntriesRequest) (output *models.MergeOut, err error)
	UndoMerge(ctx context.Context, req models.UndoMergeRequest) (err error)
	Split(ctx context.Context, req models.SplitEntryRequest) (output *models.SplitOut, err error)
	GetMergeHistoryList(ctx context.Context, req models.GetMergeHistoryListRequest) (output []models.MergeHistory, total int, err error)
}

type ledgerEdit service

var _ LedgerEditService = (*ledgerEdit)(nil)

// Merge folds the selected entries into the chronologically earliest one.
// Sources are deleted, their detail records move to the target, and an undo
// snapshot is persisted. The whole edit is one transaction.
func (s *ledgerEdit) Merge(ctx context.Context, req models.MergeEntriesRequest) (output *models.MergeOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(req.EntryIDs) < 2 {
		err = models.GetErrMap(models.ErrKeyTooFewEntries)
		return
	}

	// Look the selection up before locking, the card id decides the lock key.
	entries, err := s.loadSelection(ctx, s.srv.sqlRepo, req.EntryIDs)
	if err != nil {
		return
	}
	cardIDm := entries[0].CardIDm

	s.srv.locks.Lock(cardIDm)
	defer s.srv.locks.Unlock(cardIDm)

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		entries, stepErr := s.loadSelection(ctx, r, req.EntryIDs)
		if stepErr != nil {
			return stepErr
		}
		if stepErr = s.validateMergeSelection(entries); stepErr != nil {
			return stepErr
		}

		target := entries[0]
		sources := entries[1:]

		detailsByEntry, stepErr := r.GetDetailRepository().GetByLedgerIDs(ctx, req.EntryIDs)
		if stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		var union models.DetailRecords
		owners := make(map[uint64]uint64)
		for _, e := range entries {
			for _, d := range detailsByEntry[e.ID] {
				union = append(union, d)
				owners[d.ID] = e.ID
			}
		}

		snapshot := models.MergeUndoSnapshot{
			Target: models.MergeTargetSnapshot{
				ID:      target.ID,
				Summary: target.Summary,
				Income:  target.Income,
				Expense: target.Expense,
				Balance: target.Balance,
				Note:    target.Note,
			},
			RemovedEntries: sources,
			DetailOwners:   owners,
		}

		before, stepErr := json.Marshal(entries)
		if stepErr != nil {
			return stepErr
		}

		merged := target
		merged.Income = 0
		merged.Expense = 0
		for _, e := range entries {
			merged.Income += e.Income
			merged.Expense += e.Expense
		}
		merged.Balance = closingBalance(union, entries[len(entries)-1].Balance)
		merged.Summary = s.srv.Summary.RenderEntry(union)
		merged.Note = joinDistinctNotes(entries)

		if stepErr = r.GetLedgerRepository().Update(ctx, &merged); stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		for _, src := range sources {
			if stepErr = r.GetDetailRepository().Reparent(ctx, src.ID, target.ID); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
			if stepErr = r.GetLedgerRepository().Delete(ctx, src.ID); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
		}

		history, stepErr := r.GetMergeHistoryRepository().Create(ctx, &models.MergeHistory{
			CardIDm:  cardIDm,
			Snapshot: snapshot,
		})
		if stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		after, stepErr := json.Marshal(merged)
		if stepErr != nil {
			return stepErr
		}
		if stepErr = r.GetAuditRepository().Record(ctx, models.AuditEvent{
			Operator:   req.Operator,
			Action:     models.AuditActionMerged,
			TargetType: "ledger",
			TargetID:   target.ID,
			Before:     before,
			After:      after,
		}); stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		output = &models.MergeOut{
			TargetID:  target.ID,
			HistoryID: history.ID,
			Summary:   merged.Summary,
			Income:    merged.Income,
			Expense:   merged.Expense,
			Balance:   merged.Balance,
		}
		return nil
	})

	return
}

// loadSelection fetches the selected entries in chronological (date, id)
// order and fails when any id is unknown.
func (s *ledgerEdit) loadSelection(ctx context.Context, r repositories.SQLRepository, ids []uint64) ([]models.LedgerEntry, error) {
	entries, err := r.GetLedgerRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	if len(entries) != len(ids) {
		return nil, models.GetErrMap(models.ErrKeyDataNotFound)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Earlier(entries[j])
	})

	return entries, nil
}

func (s *ledgerEdit) validateMergeSelection(entries []models.LedgerEntry) error {
	hasIncome := false
	hasExpense := false
	for _, e := range entries {
		if e.CardIDm != entries[0].CardIDm {
			return models.GetErrMap(models.ErrKeyCrossCardSelection)
		}
		if e.IsLent {
			return models.GetErrMap(models.ErrKeyOpenLoanSelected)
		}
		if e.Income > 0 {
			hasIncome = true
		}
		if e.Expense > 0 {
			hasExpense = true
		}
	}

	if s.srv.conf.Ledger.RejectMixedMergeEntries && hasIncome && hasExpense {
		return models.GetErrMap(models.ErrKeyMixedMergeEntries)
	}

	return nil
}

// closingBalance is the balance after the time-last detail record, falling
// back to the given entry-level balance when no record reports one.
func closingBalance(records models.DetailRecords, fallback int64) int64 {
	last, ok := records.TimeLast()
	if !ok || last.BalanceAfter == nil {
		return fallback
	}
	return *last.BalanceAfter
}

func joinDistinctNotes(entries []models.LedgerEntry) string {
	seen := make(map[string]bool)
	var notes []string
	for _, e := range entries {
		if e.Note == "" || seen[e.Note] {
			continue
		}
		seen[e.Note] = true
		notes = append(notes, e.Note)
	}
	return strings.Join(notes, "; ")
}

// UndoMerge reverses a recorded merge: the target gets its pre-merge fields
// back, deleted sources are reinserted with their original ids, and every
// detail record returns to its original owner. A history can be undone once.
func (s *ledgerEdit) UndoMerge(ctx context.Context, req models.UndoMergeRequest) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	history, err := s.srv.sqlRepo.GetMergeHistoryRepository().GetByID(ctx, req.HistoryID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyHistoryNotFound)
		return
	}
	if history.Undone {
		err = models.GetErrMap(models.ErrKeyHistoryAlreadyUndone)
		return
	}

	s.srv.locks.Lock(history.CardIDm)
	defer s.srv.locks.Unlock(history.CardIDm)

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		// The row-level guard makes a concurrent double undo lose here.
		if stepErr := r.GetMergeHistoryRepository().MarkUndone(ctx, history.ID); stepErr != nil {
			return checkDatabaseError(stepErr, models.ErrKeyHistoryAlreadyUndone)
		}

		snapshot := history.Snapshot

		target, stepErr := r.GetLedgerRepository().GetByID(ctx, snapshot.Target.ID)
		if stepErr != nil {
			return checkDatabaseError(stepErr)
		}
		before, stepErr := json.Marshal(target)
		if stepErr != nil {
			return stepErr
		}

		restored := *target
		restored.Summary = snapshot.Target.Summary
		restored.Income = snapshot.Target.Income
		restored.Expense = snapshot.Target.Expense
		restored.Balance = snapshot.Target.Balance
		restored.Note = snapshot.Target.Note
		if stepErr = r.GetLedgerRepository().Update(ctx, &restored); stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		for i := range snapshot.RemovedEntries {
			if stepErr = r.GetLedgerRepository().Restore(ctx, &snapshot.RemovedEntries[i]); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
		}

		for owner, detailIDs := range groupByOwner(snapshot.DetailOwners) {
			if owner == snapshot.Target.ID {
				continue
			}
			if stepErr = r.GetDetailRepository().SetOwner(ctx, detailIDs, owner); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
		}

		after, stepErr := json.Marshal(snapshot)
		if stepErr != nil {
			return stepErr
		}
		return r.GetAuditRepository().Record(ctx, models.AuditEvent{
			Operator:   req.Operator,
			Action:     models.AuditActionMergeUndone,
			TargetType: "ledger",
			TargetID:   snapshot.Target.ID,
			Before:     before,
			After:      after,
		})
	})

	return
}

func groupByOwner(owners map[uint64]uint64) map[uint64][]uint64 {
	grouped := make(map[uint64][]uint64)
	for detailID, owner := range owners {
		grouped[owner] = append(grouped[owner], detailID)
	}
	for _, ids := range grouped {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return grouped
}

// Split breaks one entry into several along the group tags on its detail
// records. The lowest tag keeps the original entry, every further tag gets a
// fresh entry. Split has no undo, it is the inverse edit of merge and the
// operator can merge the pieces back.
func (s *ledgerEdit) Split(ctx context.Context, req models.SplitEntryRequest) (output *models.SplitOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	entry, err := s.srv.sqlRepo.GetLedgerRepository().GetByID(ctx, req.EntryID)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	s.srv.locks.Lock(entry.CardIDm)
	defer s.srv.locks.Unlock(entry.CardIDm)

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		original, stepErr := r.GetLedgerRepository().GetByID(ctx, req.EntryID)
		if stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		details, stepErr := r.GetDetailRepository().GetByLedgerID(ctx, req.EntryID)
		if stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		tags := details.GroupTags()
		if len(tags) < 2 {
			return models.GetErrMap(models.ErrKeyTooFewGroups)
		}

		before, stepErr := json.Marshal(original)
		if stepErr != nil {
			return stepErr
		}

		resultIDs := []uint64{original.ID}

		// lowest tag rewrites the original in place
		first := details.ByGroupTag(tags[0])
		updated := *original
		updated.Income = first.SumIncome()
		updated.Expense = first.SumExpense()
		updated.Balance = closingBalance(first, original.Balance)
		updated.Summary = s.srv.Summary.RenderEntry(first)
		if stepErr = r.GetLedgerRepository().Update(ctx, &updated); stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		for _, tag := range tags[1:] {
			group := details.ByGroupTag(tag)

			entryDate := original.EntryDate
			if tap, ok := group.EarliestTap(); ok {
				entryDate = tap
			}

			created, stepErr := r.GetLedgerRepository().Insert(ctx, &models.LedgerEntry{
				CardIDm:    original.CardIDm,
				EntryDate:  entryDate,
				Summary:    s.srv.Summary.RenderEntry(group),
				Income:     group.SumIncome(),
				Expense:    group.SumExpense(),
				Balance:    closingBalance(group, original.Balance),
				StaffIDm:   original.StaffIDm,
				StaffName:  original.StaffName,
				IsLent:     original.IsLent,
				LentAt:     original.LentAt,
				ReturnedAt: original.ReturnedAt,
			})
			if stepErr != nil {
				return checkDatabaseError(stepErr)
			}

			detailIDs := make([]uint64, 0, len(group))
			for _, d := range group {
				detailIDs = append(detailIDs, d.ID)
			}
			if stepErr = r.GetDetailRepository().SetOwner(ctx, detailIDs, created.ID); stepErr != nil {
				return checkDatabaseError(stepErr)
			}
			if stepErr = r.GetDetailRepository().ClearGroupTags(ctx, created.ID); stepErr != nil {
				return checkDatabaseError(stepErr)
			}

			resultIDs = append(resultIDs, created.ID)
		}

		if stepErr = r.GetDetailRepository().ClearGroupTags(ctx, original.ID); stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		after, stepErr := json.Marshal(resultIDs)
		if stepErr != nil {
			return stepErr
		}
		if stepErr = r.GetAuditRepository().Record(ctx, models.AuditEvent{
			Operator:   req.Operator,
			Action:     models.AuditActionSplit,
			TargetType: "ledger",
			TargetID:   original.ID,
			Before:     before,
			After:      after,
		}); stepErr != nil {
			return checkDatabaseError(stepErr)
		}

		output = &models.SplitOut{EntryIDs: resultIDs}
		return nil
	})

	return
}

func (s *ledgerEdit) GetMergeHistoryList(ctx context.Context, req models.GetMergeHistoryListRequest) (output []models.MergeHistory, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	opts := req.ToFilterOpts()

	output, err = s.srv.sqlRepo.GetMergeHistoryRepository().GetList(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	total, err = s.srv.sqlRepo.GetMergeHistoryRepository().CountAll(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}
