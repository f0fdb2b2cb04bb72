package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/transitops/cardledger/internal/common/log"
	"github.com/transitops/cardledger/internal/models"
	"github.com/transitops/cardledger/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCardIDm = "0101AABBCCDDEEFF"

func Test_Handler_getLedgerList(t *testing.T) {
	testHelper := ledgerTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/cards/" + testCardIDm + "/ledgers",
			expectation: Expectation{
				wantRes:  `{"kind":"collection","contents":[{"id":1,"cardIDm":"0101AABBCCDDEEFF","entryDate":"0001-01-01T00:00:00Z","summary":"Topped up","income":1000,"expense":0,"balance":6000,"staffIDm":"","staffName":"","note":"","isLent":false,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockLedgerService.EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background()), models.GetLedgerListRequest{CardIDm: testCardIDm}).
					Return([]models.LedgerEntry{{
						ID:      1,
						CardIDm: testCardIDm,
						Summary: "Topped up",
						Income:  1000,
						Balance: 6000,
					}}, 1, nil)
			},
		},
		{
			name:      "error validating card id",
			urlCalled: "/api/v1/cards/not-a-card/ledgers",
			expectation: Expectation{
				wantCode: 422,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/cards/" + testCardIDm + "/ledgers",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"CL-4001","message":"invalid date range"}`,
				wantCode: 400,
			},
			doMock: func() {
				testHelper.mockLedgerService.EXPECT().
					GetList(gomock.AssignableToTypeOf(context.Background()), models.GetLedgerListRequest{CardIDm: testCardIDm}).
					Return(nil, 0, models.GetErrMap(models.ErrKeyInvalidDateRange))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			if tc.expectation.wantRes != "" {
				require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
			}
		})
	}
}

func Test_Handler_getLedger(t *testing.T) {
	testHelper := ledgerTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/ledgers/7",
			expectation: Expectation{
				wantRes:  `{"entry":{"id":7,"cardIDm":"0101AABBCCDDEEFF","entryDate":"0001-01-01T00:00:00Z","summary":"Hakata～Tenjin","income":0,"expense":210,"balance":5290,"staffIDm":"","staffName":"","note":"","isLent":false,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"},"details":null}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockLedgerService.EXPECT().
					GetByID(gomock.AssignableToTypeOf(context.Background()), uint64(7)).
					Return(&models.LedgerEntry{
						ID:      7,
						CardIDm: testCardIDm,
						Summary: "Hakata～Tenjin",
						Expense: 210,
						Balance: 5290,
					}, nil, nil)
			},
		},
		{
			name:      "not found",
			urlCalled: "/api/v1/ledgers/999",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"CL-4004","message":"data not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockLedgerService.EXPECT().
					GetByID(gomock.AssignableToTypeOf(context.Background()), uint64(999)).
					Return(nil, nil, models.GetErrMap(models.ErrKeyDataNotFound))
			},
		},
		{
			name:      "non numeric id",
			urlCalled: "/api/v1/ledgers/abc",
			expectation: Expectation{
				wantCode: 400,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			req := httptest.NewRequest(http.MethodGet, tc.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			if tc.expectation.wantRes != "" {
				require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
			}
		})
	}
}

func Test_Handler_mergeLedgers(t *testing.T) {
	testHelper := ledgerTestHelper(t)

	type args struct {
		ctx context.Context
		req models.MergeEntriesRequest
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name     string
		args     args
		mockData mockData
		doMock   func(args args, mockData mockData)
	}{
		{
			name: "success",
			args: args{
				ctx: context.Background(),
				req: models.MergeEntriesRequest{
					EntryIDs: []uint64{10, 11},
					Operator: "suzuki",
				},
			},
			mockData: mockData{
				wantRes:  `{"targetId":10,"historyId":3,"summary":"Hakata～Meinohama","income":0,"expense":510,"balance":4490}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockEditService.EXPECT().Merge(args.ctx, args.req).Return(&models.MergeOut{
					TargetID:  10,
					HistoryID: 3,
					Summary:   "Hakata～Meinohama",
					Expense:   510,
					Balance:   4490,
				}, nil)
			},
		},
		{
			name: "error validating request",
			args: args{
				ctx: context.Background(),
				req: models.MergeEntriesRequest{
					EntryIDs: []uint64{10},
				},
			},
			mockData: mockData{
				wantCode: 422,
			},
		},
		{
			name: "error cross card selection",
			args: args{
				ctx: context.Background(),
				req: models.MergeEntriesRequest{
					EntryIDs: []uint64{10, 11},
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"CL-4202","message":"entries from different cards cannot be merged"}`,
				wantCode: 400,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockEditService.EXPECT().Merge(args.ctx, args.req).
					Return(nil, models.GetErrMap(models.ErrKeyCrossCardSelection))
			},
		},
		{
			name: "error service",
			args: args{
				ctx: context.Background(),
				req: models.MergeEntriesRequest{
					EntryIDs: []uint64{10, 11},
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockEditService.EXPECT().Merge(args.ctx, args.req).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.args.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers/merge", &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			if tt.mockData.wantRes != "" {
				require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
			}
		})
	}
}

func Test_Handler_splitLedger(t *testing.T) {
	testHelper := ledgerTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		urlCalled   string
		expectation Expectation
		doMock      func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/ledgers/10/split",
			expectation: Expectation{
				wantRes:  `{"entryIds":[10,20]}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockEditService.EXPECT().
					Split(context.Background(), models.SplitEntryRequest{EntryID: 10, Operator: "suzuki"}).
					Return(&models.SplitOut{EntryIDs: []uint64{10, 20}}, nil)
			},
		},
		{
			name:      "error too few groups",
			urlCalled: "/api/v1/ledgers/10/split",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"CL-4205","message":"assign at least two distinct groups before splitting"}`,
				wantCode: 400,
			},
			doMock: func() {
				testHelper.mockEditService.EXPECT().
					Split(context.Background(), models.SplitEntryRequest{EntryID: 10, Operator: "suzuki"}).
					Return(nil, models.GetErrMap(models.ErrKeyTooFewGroups))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			b := strings.NewReader(`{"operator":"suzuki"}`)

			req := httptest.NewRequest(http.MethodPost, tc.urlCalled, b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tc.expectation.wantCode, resp.StatusCode)
			if tc.expectation.wantRes != "" {
				require.Equal(t, tc.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
			}
		})
	}
}

type testLedgerHelper struct {
	router            *echo.Echo
	mockCtrl          *gomock.Controller
	mockLedgerService *mock.MockLedgerService
	mockEditService   *mock.MockLedgerEditService
}

func ledgerTestHelper(t *testing.T) testLedgerHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockLedgerSvc := mock.NewMockLedgerService(mockCtrl)
	mockEditSvc := mock.NewMockLedgerEditService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockLedgerSvc, mockEditSvc)

	return testLedgerHelper{
		router:            app,
		mockCtrl:          mockCtrl,
		mockLedgerService: mockLedgerSvc,
		mockEditService:   mockEditSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
