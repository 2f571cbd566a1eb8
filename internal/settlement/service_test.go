package settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/albapay/albapay/internal/binuuid"
	"github.com/albapay/albapay/internal/settlement"
)

const testUserID = "550e8400-e29b-41d4-a716-446655440000"

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	svc := settlement.NewService(repo)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	id1, err := binuuid.Encode("11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	id2, err := binuuid.Encode("22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)

	// Descending by settlement date, as the query layer returns them.
	settlements := []settlement.Settlement{
		{
			ID:        id1,
			Amount:    120000,
			SettledAt: datePtr(2025, 3, 20),
			WorkDate:  datePtr(2025, 3, 15),
			StoreName: "Cafe A",
		},
		{
			ID:       id2,
			Amount:   50000,
			WorkDate: datePtr(2025, 3, 2),
			// no settlement date recorded yet
		},
	}

	repo.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), start, end).Return(settlements, nil)
	repo.EXPECT().TotalByPeriod(gomock.Any(), gomock.Any(), start, end).Return(int64(170000), nil)

	report, err := svc.History(context.Background(), testUserID, start, end)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", report.PeriodStart)
	assert.Equal(t, "2025-03-31", report.PeriodEnd)
	assert.Equal(t, int64(170000), report.TotalAmount)

	require.Len(t, report.Settlements, 2)
	assert.Equal(t, settlement.HistoryItem{
		SettlementID: "11111111-1111-1111-1111-111111111111",
		WorkDate:     "2025-03-15",
		StoreName:    "Cafe A",
		Amount:       120000,
		SettledAt:    "2025-03-20",
	}, report.Settlements[0])
	assert.Equal(t, settlement.HistoryItem{
		SettlementID: "22222222-2222-2222-2222-222222222222",
		WorkDate:     "2025-03-02",
		Amount:       50000,
		SettledAt:    "",
	}, report.Settlements[1])

	// For a consistent snapshot the independent total matches the items.
	var sum int64
	for _, item := range report.Settlements {
		sum += item.Amount
	}

	assert.Equal(t, report.TotalAmount, sum)
}

func TestService_History_Errors(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		userID    string
		setupMock func(m *settlement.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "InvalidUserID",
			userID:  "nope",
			wantErr: binuuid.ErrInvalidFormat,
		},
		{
			name:   "ListFails",
			userID: testUserID,
			setupMock: func(m *settlement.MockRepository) {
				m.EXPECT().
					ListByPeriod(gomock.Any(), gomock.Any(), start, end).
					Return(nil, errors.New("db down"))
			},
		},
		{
			name:   "TotalFails",
			userID: testUserID,
			setupMock: func(m *settlement.MockRepository) {
				m.EXPECT().
					ListByPeriod(gomock.Any(), gomock.Any(), start, end).
					Return(nil, nil)
				m.EXPECT().
					TotalByPeriod(gomock.Any(), gomock.Any(), start, end).
					Return(int64(0), errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := settlement.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := settlement.NewService(repo)

			report, err := svc.History(context.Background(), tt.userID, start, end)
			require.Error(t, err)
			assert.Nil(t, report)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_MonthlySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	svc := settlement.NewService(repo)

	// Raw rows grouped by settlement date; two January dates collapse into
	// one month. March arrives before January to prove the service sorts.
	rows := []settlement.MonthlyRow{
		{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Total: 200, Count: 1},
		{Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Total: 100, Count: 1},
		{Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), Total: 50, Count: 1},
	}

	repo.EXPECT().ListMonthlyRows(gomock.Any(), gomock.Any(), 2025).Return(rows, nil)

	summaries, err := svc.MonthlySummaries(context.Background(), testUserID, 2025)
	require.NoError(t, err)

	assert.Equal(t, []settlement.MonthlySummary{
		{Month: "2025-01", TotalAmount: 150, Count: 2},
		{Month: "2025-03", TotalAmount: 200, Count: 1},
	}, summaries)
}

func TestService_MonthlySummaries_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	svc := settlement.NewService(repo)

	repo.EXPECT().ListMonthlyRows(gomock.Any(), gomock.Any(), 2025).Return(nil, nil)

	summaries, err := svc.MonthlySummaries(context.Background(), testUserID, 2025)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
