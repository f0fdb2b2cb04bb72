package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/transitops/cardledger/internal/config"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/services"
)

func mergeFixture() ([]models.LedgerEntry, map[uint64]models.DetailRecords) {
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	tap1 := day.Add(10 * time.Hour)
	tap2 := day.Add(11 * time.Hour)
	bal1 := int64(4790)
	bal2 := int64(4490)

	entries := []models.LedgerEntry{
		{ID: 10, CardIDm: testCardIDm, EntryDate: day, Summary: "Hakata～Tenjin", Expense: 210, Balance: 4790},
		{ID: 11, CardIDm: testCardIDm, EntryDate: day, Summary: "Tenjin～Meinohama", Expense: 300, Balance: 4490, Note: "lunch run"},
	}

	details := map[uint64]models.DetailRecords{
		10: {
			{ID: 1, LedgerID: 10, TappedAt: &tap1, EntryStation: "Hakata", ExitStation: "Tenjin", Amount: 210, BalanceAfter: &bal1},
		},
		11: {
			{ID: 2, LedgerID: 11, TappedAt: &tap2, EntryStation: "Tenjin", ExitStation: "Meinohama", Amount: 300, BalanceAfter: &bal2},
		},
	}

	return entries, details
}

func TestLedgerEditService_Merge(t *testing.T) {
	testHelper := serviceTestHelper(t)

	entries, details := mergeFixture()
	ids := []uint64{10, 11}

	// once to learn the card for locking, once inside the transaction
	testHelper.mockLedgerRepository.EXPECT().
		GetByIDs(gomock.Any(), ids).
		Return(entries, nil).
		Times(2)
	expectAtomic(testHelper)
	testHelper.mockDetailRepository.EXPECT().
		GetByLedgerIDs(gomock.Any(), ids).
		Return(details, nil)

	var updated models.LedgerEntry
	testHelper.mockLedgerRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.LedgerEntry) error {
			updated = *in
			return nil
		})
	testHelper.mockDetailRepository.EXPECT().
		Reparent(gomock.Any(), uint64(11), uint64(10)).
		Return(nil)
	testHelper.mockLedgerRepository.EXPECT().
		Delete(gomock.Any(), uint64(11)).
		Return(nil)

	var savedHistory models.MergeHistory
	testHelper.mockMergeHistoryRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.MergeHistory) (*models.MergeHistory, error) {
			savedHistory = *in
			savedHistory.ID = 7
			return &savedHistory, nil
		})
	testHelper.mockAuditRepository.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil)

	out, err := testHelper.ledgerEditService.Merge(context.Background(), models.MergeEntriesRequest{EntryIDs: ids})
	require.NoError(t, err)

	assert.Equal(t, uint64(10), out.TargetID)
	assert.Equal(t, uint64(7), out.HistoryID)
	assert.Equal(t, int64(0), out.Income)
	assert.Equal(t, int64(510), out.Expense)
	assert.Equal(t, int64(4490), out.Balance)
	assert.Equal(t, "Hakata～Meinohama", out.Summary)

	assert.Equal(t, int64(510), updated.Expense)
	assert.Equal(t, int64(4490), updated.Balance)
	assert.Equal(t, "lunch run", updated.Note)

	// the snapshot must be enough to reverse everything
	assert.Equal(t, uint64(10), savedHistory.Snapshot.Target.ID)
	assert.Equal(t, int64(210), savedHistory.Snapshot.Target.Expense)
	require.Len(t, savedHistory.Snapshot.RemovedEntries, 1)
	assert.Equal(t, uint64(11), savedHistory.Snapshot.RemovedEntries[0].ID)
	assert.Equal(t, map[uint64]uint64{1: 10, 2: 11}, savedHistory.Snapshot.DetailOwners)
}

func TestLedgerEditService_Merge_Validation(t *testing.T) {
	entries, _ := mergeFixture()

	testCases := []struct {
		name     string
		ids      []uint64
		entries  []models.LedgerEntry
		wantCode string
	}{
		{
			name:     "too few entries",
			ids:      []uint64{10},
			wantCode: models.ErrKeyTooFewEntries,
		},
		{
			name: "unknown entry id",
			ids:  []uint64{10, 99},
			entries: []models.LedgerEntry{
				entries[0],
			},
			wantCode: models.ErrKeyDataNotFound,
		},
		{
			name: "cross card selection",
			ids:  []uint64{10, 11},
			entries: []models.LedgerEntry{
				entries[0],
				{ID: 11, CardIDm: "0202000000000000", EntryDate: entries[1].EntryDate},
			},
			wantCode: models.ErrKeyCrossCardSelection,
		},
		{
			name: "open loan entry selected",
			ids:  []uint64{10, 11},
			entries: []models.LedgerEntry{
				entries[0],
				{ID: 11, CardIDm: testCardIDm, EntryDate: entries[1].EntryDate, IsLent: true},
			},
			wantCode: models.ErrKeyOpenLoanSelected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testHelper := serviceTestHelper(t)

			if tc.entries != nil {
				if len(tc.entries) == len(tc.ids) {
					// selection loads twice, validation fails inside the
					// transaction
					testHelper.mockLedgerRepository.EXPECT().
						GetByIDs(gomock.Any(), tc.ids).
						Return(tc.entries, nil).
						Times(2)
					expectAtomic(testHelper)
				} else {
					testHelper.mockLedgerRepository.EXPECT().
						GetByIDs(gomock.Any(), tc.ids).
						Return(tc.entries, nil)
				}
			}

			out, err := testHelper.ledgerEditService.Merge(context.Background(), models.MergeEntriesRequest{EntryIDs: tc.ids})
			assert.Nil(t, out)
			assert.Equal(t, models.GetErrMap(tc.wantCode), err)
		})
	}
}

func TestLedgerEditService_Merge_RejectMixedEntriesFlag(t *testing.T) {
	testHelper := serviceTestHelper(t)

	conf := config.Config{}
	conf.Ledger.RejectMixedMergeEntries = true
	srv := services.New(conf, testHelper.mockSQLRepository, testHelper.locks)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	mixed := []models.LedgerEntry{
		{ID: 10, CardIDm: testCardIDm, EntryDate: day, Income: 1000, Balance: 5500},
		{ID: 11, CardIDm: testCardIDm, EntryDate: day, Expense: 300, Balance: 5200},
	}

	testHelper.mockLedgerRepository.EXPECT().
		GetByIDs(gomock.Any(), []uint64{10, 11}).
		Return(mixed, nil).
		Times(2)
	expectAtomic(testHelper)

	out, err := srv.LedgerEdit.Merge(context.Background(), models.MergeEntriesRequest{EntryIDs: []uint64{10, 11}})
	assert.Nil(t, out)
	assert.Equal(t, models.GetErrMap(models.ErrKeyMixedMergeEntries), err)
}

func TestLedgerEditService_MergeUndo_RoundTrip(t *testing.T) {
	testHelper := serviceTestHelper(t)

	entries, _ := mergeFixture()
	original := entries[0]
	removed := entries[1]

	history := &models.MergeHistory{
		ID:      7,
		CardIDm: testCardIDm,
		Snapshot: models.MergeUndoSnapshot{
			Target: models.MergeTargetSnapshot{
				ID:      original.ID,
				Summary: original.Summary,
				Income:  original.Income,
				Expense: original.Expense,
				Balance: original.Balance,
				Note:    original.Note,
			},
			RemovedEntries: []models.LedgerEntry{removed},
			DetailOwners:   map[uint64]uint64{1: 10, 2: 11},
		},
	}

	merged := original
	merged.Expense = 510
	merged.Balance = 4490
	merged.Summary = "Hakata～Meinohama"
	merged.Note = "lunch run"

	testHelper.mockMergeHistoryRepository.EXPECT().
		GetByID(gomock.Any(), uint64(7)).
		Return(history, nil)
	expectAtomic(testHelper)
	testHelper.mockMergeHistoryRepository.EXPECT().
		MarkUndone(gomock.Any(), uint64(7)).
		Return(nil)
	testHelper.mockLedgerRepository.EXPECT().
		GetByID(gomock.Any(), uint64(10)).
		Return(&merged, nil)

	var restoredTarget models.LedgerEntry
	testHelper.mockLedgerRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.LedgerEntry) error {
			restoredTarget = *in
			return nil
		})

	var reinserted models.LedgerEntry
	testHelper.mockLedgerRepository.EXPECT().
		Restore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.LedgerEntry) error {
			reinserted = *in
			return nil
		})
	testHelper.mockDetailRepository.EXPECT().
		SetOwner(gomock.Any(), []uint64{2}, uint64(11)).
		Return(nil)
	testHelper.mockAuditRepository.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil)

	err := testHelper.ledgerEditService.UndoMerge(context.Background(), models.UndoMergeRequest{HistoryID: 7})
	require.NoError(t, err)

	// the original entry set comes back exactly
	assert.Equal(t, original.Summary, restoredTarget.Summary)
	assert.Equal(t, original.Income, restoredTarget.Income)
	assert.Equal(t, original.Expense, restoredTarget.Expense)
	assert.Equal(t, original.Balance, restoredTarget.Balance)
	assert.Equal(t, original.Note, restoredTarget.Note)
	assert.Equal(t, removed, reinserted)
}

func TestLedgerEditService_MergeUndo_AlreadyUndone(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockMergeHistoryRepository.EXPECT().
		GetByID(gomock.Any(), uint64(7)).
		Return(&models.MergeHistory{ID: 7, CardIDm: testCardIDm, Undone: true}, nil)

	err := testHelper.ledgerEditService.UndoMerge(context.Background(), models.UndoMergeRequest{HistoryID: 7})
	assert.Equal(t, models.GetErrMap(models.ErrKeyHistoryAlreadyUndone), err)
}

func TestLedgerEditService_Split(t *testing.T) {
	testHelper := serviceTestHelper(t)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	tap1 := day.Add(9 * time.Hour)
	tap2 := day.Add(10 * time.Hour)
	bal1 := int64(5500)
	bal2 := int64(5290)

	original := &models.LedgerEntry{
		ID: 10, CardIDm: testCardIDm, EntryDate: day,
		Income: 1000, Expense: 210, Balance: 5290,
		StaffIDm: "0301000000000001", StaffName: "Sato",
	}

	details := models.DetailRecords{
		{ID: 1, LedgerID: 10, TappedAt: &tap1, IsCharge: true, Amount: 1000, BalanceAfter: &bal1, GroupTag: 1},
		{ID: 2, LedgerID: 10, TappedAt: &tap2, EntryStation: "Hakata", ExitStation: "Tenjin", Amount: 210, BalanceAfter: &bal2, GroupTag: 2},
	}

	testHelper.mockLedgerRepository.EXPECT().
		GetByID(gomock.Any(), uint64(10)).
		Return(original, nil).
		Times(2)
	expectAtomic(testHelper)
	testHelper.mockDetailRepository.EXPECT().
		GetByLedgerID(gomock.Any(), uint64(10)).
		Return(details, nil)

	var updated models.LedgerEntry
	testHelper.mockLedgerRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.LedgerEntry) error {
			updated = *in
			return nil
		})

	var inserted models.LedgerEntry
	testHelper.mockLedgerRepository.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.LedgerEntry) (*models.LedgerEntry, error) {
			inserted = *in
			created := *in
			created.ID = 20
			return &created, nil
		})
	testHelper.mockDetailRepository.EXPECT().
		SetOwner(gomock.Any(), []uint64{2}, uint64(20)).
		Return(nil)
	testHelper.mockDetailRepository.EXPECT().
		ClearGroupTags(gomock.Any(), uint64(20)).
		Return(nil)
	testHelper.mockDetailRepository.EXPECT().
		ClearGroupTags(gomock.Any(), uint64(10)).
		Return(nil)
	testHelper.mockAuditRepository.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil)

	out, err := testHelper.ledgerEditService.Split(context.Background(), models.SplitEntryRequest{EntryID: 10})
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 20}, out.EntryIDs)

	// lowest tag keeps the original entry
	assert.Equal(t, int64(1000), updated.Income)
	assert.Equal(t, int64(0), updated.Expense)
	assert.Equal(t, int64(5500), updated.Balance)
	assert.Equal(t, "Topped up", updated.Summary)

	// the second tag becomes a fresh entry dated by its earliest tap
	assert.Equal(t, tap2, inserted.EntryDate)
	assert.Equal(t, int64(0), inserted.Income)
	assert.Equal(t, int64(210), inserted.Expense)
	assert.Equal(t, int64(5290), inserted.Balance)
	assert.Equal(t, "Hakata～Tenjin", inserted.Summary)
	assert.Equal(t, original.StaffIDm, inserted.StaffIDm)
	assert.Equal(t, original.StaffName, inserted.StaffName)
}

func TestLedgerEditService_Split_SingleGroupTag(t *testing.T) {
	testHelper := serviceTestHelper(t)

	original := &models.LedgerEntry{ID: 10, CardIDm: testCardIDm}
	details := models.DetailRecords{
		{ID: 1, LedgerID: 10, Amount: 210, GroupTag: 1},
		{ID: 2, LedgerID: 10, Amount: 300, GroupTag: 1},
	}

	testHelper.mockLedgerRepository.EXPECT().
		GetByID(gomock.Any(), uint64(10)).
		Return(original, nil).
		Times(2)
	expectAtomic(testHelper)
	testHelper.mockDetailRepository.EXPECT().
		GetByLedgerID(gomock.Any(), uint64(10)).
		Return(details, nil)

	// no Insert, no Update: validation failure creates zero entries
	out, err := testHelper.ledgerEditService.Split(context.Background(), models.SplitEntryRequest{EntryID: 10})
	assert.Nil(t, out)
	assert.Equal(t, models.GetErrMap(models.ErrKeyTooFewGroups), err)
}

func TestLedgerEditService_GetMergeHistoryList(t *testing.T) {
	testHelper := serviceTestHelper(t)

	histories := []models.MergeHistory{{ID: 7, CardIDm: testCardIDm}}

	testHelper.mockMergeHistoryRepository.EXPECT().
		GetList(gomock.Any(), models.MergeHistoryFilterOptions{CardIDm: testCardIDm, Limit: 20}).
		Return(histories, nil)
	testHelper.mockMergeHistoryRepository.EXPECT().
		CountAll(gomock.Any(), models.MergeHistoryFilterOptions{CardIDm: testCardIDm, Limit: 20}).
		Return(1, nil)

	out, total, err := testHelper.ledgerEditService.GetMergeHistoryList(context.Background(), models.GetMergeHistoryListRequest{CardIDm: testCardIDm})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, histories, out)
}
