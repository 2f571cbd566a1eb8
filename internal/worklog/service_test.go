package worklog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapay/albapay/internal/binuuid"
)

const testUserID = "550e8400-e29b-41d4-a716-446655440000"

type mockRepo struct {
	listByDayFunc func(ctx context.Context, userID []byte, start, end time.Time) ([]Session, error)
}

func (m *mockRepo) ListByDay(ctx context.Context, userID []byte, start, end time.Time) ([]Session, error) {
	if m.listByDayFunc != nil {
		return m.listByDayFunc(ctx, userID, start, end)
	}

	return nil, nil
}

func TestService_Today(t *testing.T) {
	startAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	endAt := time.Date(2025, 6, 15, 17, 30, 0, 0, time.UTC)

	logID, err := binuuid.Encode("11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)

	repo := &mockRepo{
		listByDayFunc: func(_ context.Context, _ []byte, start, end time.Time) ([]Session, error) {
			assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), end)

			return []Session{
				{ID: logID, StoreName: "Cafe A", StartAt: &startAt, EndAt: &endAt, WorkMinutes: 510},
				{ID: logID, StoreName: "Mart B"},
			}, nil
		},
	}

	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 11, 45, 0, 0, time.UTC) }

	list, err := svc.Today(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", list.Date)
	require.Len(t, list.Schedules, 2)

	assert.Equal(t, Schedule{
		WorkLogID:   "11111111-1111-1111-1111-111111111111",
		StoreName:   "Cafe A",
		StartAt:     "09:00",
		EndAt:       "17:30",
		WorkMinutes: 510,
	}, list.Schedules[0])

	// Unscheduled session renders empty clock strings.
	assert.Empty(t, list.Schedules[1].StartAt)
	assert.Empty(t, list.Schedules[1].EndAt)
}

func TestService_Today_Errors(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Today(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, binuuid.ErrInvalidFormat)

	svc = NewService(&mockRepo{
		listByDayFunc: func(context.Context, []byte, time.Time, time.Time) ([]Session, error) {
			return nil, errors.New("db down")
		},
	})

	_, err = svc.Today(context.Background(), testUserID)
	assert.Error(t, err)
}
