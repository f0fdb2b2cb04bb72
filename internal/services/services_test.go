package services_test

import (
	"os"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/transitops/cardledger/internal/common/lockregistry"
	"github.com/transitops/cardledger/internal/common/log"
	"github.com/transitops/cardledger/internal/config"
	"github.com/transitops/cardledger/internal/repositories/mock"
	"github.com/transitops/cardledger/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl                   *gomock.Controller
	config                     config.Config
	locks                      *lockregistry.Registry
	mockSQLRepository          *mock.MockSQLRepository
	mockLedgerRepository       *mock.MockLedgerRepository
	mockDetailRepository       *mock.MockDetailRepository
	mockMergeHistoryRepository *mock.MockMergeHistoryRepository
	mockAuditRepository        *mock.MockAuditRepository

	ledgerService     services.LedgerService
	balanceService    services.BalanceService
	ledgerEditService services.LedgerEditService
	summaryService    services.SummaryService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockLedgerRepository := mock.NewMockLedgerRepository(mockCtrl)
	mockDetailRepository := mock.NewMockDetailRepository(mockCtrl)
	mockMergeHistoryRepository := mock.NewMockMergeHistoryRepository(mockCtrl)
	mockAuditRepository := mock.NewMockAuditRepository(mockCtrl)

	mockSQLRepository.EXPECT().GetLedgerRepository().Return(mockLedgerRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetDetailRepository().Return(mockDetailRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetMergeHistoryRepository().Return(mockMergeHistoryRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetAuditRepository().Return(mockAuditRepository).AnyTimes()

	conf := config.Config{}

	locks := lockregistry.New(time.Minute, time.Minute)
	t.Cleanup(locks.Close)

	srv := services.New(conf, mockSQLRepository, locks)

	return testServiceHelper{
		mockCtrl:                   mockCtrl,
		config:                     conf,
		locks:                      locks,
		mockSQLRepository:          mockSQLRepository,
		mockLedgerRepository:       mockLedgerRepository,
		mockDetailRepository:       mockDetailRepository,
		mockMergeHistoryRepository: mockMergeHistoryRepository,
		mockAuditRepository:        mockAuditRepository,
		ledgerService:              srv.Ledger,
		balanceService:             srv.Balance,
		ledgerEditService:          srv.LedgerEdit,
		summaryService:             srv.Summary,
	}
}
