package balance

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

func Test_Handler_check(t *testing.T) {
	testHelper := balanceTestHelper(t)

	type args struct {
		ctx context.Context
		req models.BalanceCheckRequest
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		args      args
		mockData  mockData
		doMock    func(args args, mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/cards/" + testCardIDm + "/balance/check",
			args: args{
				ctx: context.Background(),
				req: models.BalanceCheckRequest{
					CardIDm:  testCardIDm,
					DateFrom: "2024-04-01",
				},
			},
			mockData: mockData{
				wantRes:  `{"corrections":[{"ledgerId":5,"actualBalance":4400,"expectedBalance":4500}]}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Check(args.ctx, args.req).Return(&models.BalanceCheckOut{
					Corrections: []models.BalanceCorrection{{
						LedgerID:        5,
						ActualBalance:   4400,
						ExpectedBalance: 4500,
					}},
				}, nil)
			},
		},
		{
			name:      "consistent window",
			urlCalled: "/api/v1/cards/" + testCardIDm + "/balance/check",
			args: args{
				ctx: context.Background(),
				req: models.BalanceCheckRequest{CardIDm: testCardIDm},
			},
			mockData: mockData{
				wantRes:  `{"corrections":[]}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Check(args.ctx, args.req).Return(&models.BalanceCheckOut{
					Corrections: []models.BalanceCorrection{},
				}, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/cards/" + testCardIDm + "/balance/check",
			args: args{
				ctx: context.Background(),
				req: models.BalanceCheckRequest{
					CardIDm:  testCardIDm,
					DateFrom: "01-04-2024",
				},
			},
			mockData: mockData{
				wantCode: 422,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/cards/" + testCardIDm + "/balance/check",
			args: args{
				ctx: context.Background(),
				req: models.BalanceCheckRequest{CardIDm: testCardIDm},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Check(args.ctx, args.req).Return(nil, assert.AnError)
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

			req := httptest.NewRequest(http.MethodPost, tt.urlCalled, &b)
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

func Test_Handler_recalculate(t *testing.T) {
	testHelper := balanceTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		expectation Expectation
		doMock      func()
	}{
		{
			name: "happy path",
			expectation: Expectation{
				wantRes:  `{"corrections":[{"ledgerId":5,"actualBalance":4400,"expectedBalance":4500}]}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Recalculate(context.Background(), models.BalanceCheckRequest{CardIDm: testCardIDm}).
					Return(&models.BalanceCheckOut{
						Corrections: []models.BalanceCorrection{{
							LedgerID:        5,
							ActualBalance:   4400,
							ExpectedBalance: 4500,
						}},
					}, nil)
			},
		},
		{
			name: "error service",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Recalculate(context.Background(), models.BalanceCheckRequest{CardIDm: testCardIDm}).
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.doMock != nil {
				tc.doMock()
			}

			b := strings.NewReader(`{}`)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/"+testCardIDm+"/balance/recalculate", b)
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

func Test_Handler_undoRecalculate(t *testing.T) {
	testHelper := balanceTestHelper(t)

	type args struct {
		ctx context.Context
		req models.UndoRecalculateRequest
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
				req: models.UndoRecalculateRequest{
					Corrections: []models.BalanceCorrection{{
						LedgerID:        5,
						ActualBalance:   4400,
						ExpectedBalance: 4500,
					}},
					Operator: "suzuki",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"ok"}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().UndoRecalculate(args.ctx, args.req).Return(nil)
			},
		},
		{
			name: "error validating request",
			args: args{
				ctx: context.Background(),
				req: models.UndoRecalculateRequest{},
			},
			mockData: mockData{
				wantCode: 422,
			},
		},
		{
			name: "error service",
			args: args{
				ctx: context.Background(),
				req: models.UndoRecalculateRequest{
					Corrections: []models.BalanceCorrection{{LedgerID: 5}},
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().UndoRecalculate(args.ctx, args.req).Return(assert.AnError)
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

			req := httptest.NewRequest(http.MethodPost, "/api/v1/balance/recalculate/undo", &b)
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

type testBalanceHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockBalanceService
}

func balanceTestHelper(t *testing.T) testBalanceHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockBalanceService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testBalanceHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
