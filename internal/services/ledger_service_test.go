package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/transitops/cardledger/internal/common"
	"github.com/transitops/cardledger/internal/models"
)

func TestLedgerService_GetList_ReordersByBalanceChain(t *testing.T) {
	testHelper := serviceTestHelper(t)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	// dump order disagrees with the balance chain
	stored := []models.LedgerEntry{
		{ID: 3, CardIDm: testCardIDm, EntryDate: day, Income: 1000, Balance: 5500},
		{ID: 1, CardIDm: testCardIDm, EntryDate: day, Expense: 200, Balance: 4800},
		{ID: 2, CardIDm: testCardIDm, EntryDate: day, Expense: 300, Balance: 4500},
	}

	testHelper.mockLedgerRepository.EXPECT().
		GetList(gomock.Any(), gomock.Any()).
		Return(stored, nil)
	testHelper.mockLedgerRepository.EXPECT().
		CountAll(gomock.Any(), gomock.Any()).
		Return(3, nil)
	testHelper.mockLedgerRepository.EXPECT().
		GetLatestBefore(gomock.Any(), testCardIDm, day).
		Return(&models.LedgerEntry{ID: 0, Balance: 5000}, nil)

	out, total, err := testHelper.ledgerService.GetList(context.Background(), models.GetLedgerListRequest{CardIDm: testCardIDm})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	ids := make([]uint64, 0, len(out))
	for _, e := range out {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestLedgerService_GetList_NoHistoryBeforeWindow(t *testing.T) {
	testHelper := serviceTestHelper(t)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	stored := []models.LedgerEntry{
		{ID: 1, CardIDm: testCardIDm, EntryDate: day, Income: 3000, Balance: 3000},
	}

	testHelper.mockLedgerRepository.EXPECT().
		GetList(gomock.Any(), gomock.Any()).
		Return(stored, nil)
	testHelper.mockLedgerRepository.EXPECT().
		CountAll(gomock.Any(), gomock.Any()).
		Return(1, nil)
	testHelper.mockLedgerRepository.EXPECT().
		GetLatestBefore(gomock.Any(), testCardIDm, day).
		Return(nil, common.ErrDataNotFound)

	out, total, err := testHelper.ledgerService.GetList(context.Background(), models.GetLedgerListRequest{CardIDm: testCardIDm})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, out, 1)
	assert.Equal(t, uint64(1), out[0].ID)
}

func TestLedgerService_GetList_EmptyWindow(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockLedgerRepository.EXPECT().
		GetList(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	testHelper.mockLedgerRepository.EXPECT().
		CountAll(gomock.Any(), gomock.Any()).
		Return(0, nil)

	out, total, err := testHelper.ledgerService.GetList(context.Background(), models.GetLedgerListRequest{CardIDm: testCardIDm})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, out)
}

func TestLedgerService_GetList_InvalidDateRange(t *testing.T) {
	testHelper := serviceTestHelper(t)

	_, _, err := testHelper.ledgerService.GetList(context.Background(), models.GetLedgerListRequest{
		CardIDm:  testCardIDm,
		DateFrom: "not-a-date",
	})
	assert.Equal(t, models.GetErrMap(models.ErrKeyInvalidDateRange), err)
}

func TestLedgerService_GetByID(t *testing.T) {
	testHelper := serviceTestHelper(t)

	entry := &models.LedgerEntry{ID: 10, CardIDm: testCardIDm, Balance: 4790}
	details := models.DetailRecords{{ID: 1, LedgerID: 10, Amount: 210}}

	testHelper.mockLedgerRepository.EXPECT().
		GetByID(gomock.Any(), uint64(10)).
		Return(entry, nil)
	testHelper.mockDetailRepository.EXPECT().
		GetByLedgerID(gomock.Any(), uint64(10)).
		Return(details, nil)

	gotEntry, gotDetails, err := testHelper.ledgerService.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, entry, gotEntry)
	assert.Equal(t, details, gotDetails)
}

func TestLedgerService_GetByID_NotFound(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockLedgerRepository.EXPECT().
		GetByID(gomock.Any(), uint64(99)).
		Return(nil, common.ErrDataNotFound)

	_, _, err := testHelper.ledgerService.GetByID(context.Background(), 99)
	assert.Equal(t, models.GetErrMap(models.ErrKeyDataNotFound), err)
}
