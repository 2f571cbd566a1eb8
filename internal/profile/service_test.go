package profile

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

// Hand-rolled mock; the func fields override the happy-path defaults.
type mockRepo struct {
	getUserFunc    func(ctx context.Context, userID []byte) (*User, error)
	updateUserFunc func(ctx context.Context, userID []byte, params UpdateParams) error
	workCount      int
	avgRating      float64
}

func (m *mockRepo) GetUser(ctx context.Context, userID []byte) (*User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, userID)
	}

	return nil, ErrNotFound
}

func (m *mockRepo) CountWorkLogs(ctx context.Context, userID []byte) (int, error) {
	return m.workCount, nil
}

func (m *mockRepo) AverageRating(ctx context.Context, userID []byte) (float64, error) {
	return m.avgRating, nil
}

func (m *mockRepo) UpdateUser(ctx context.Context, userID []byte, params UpdateParams) error {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, userID, params)
	}

	return nil
}

func TestService_Get(t *testing.T) {
	uid, err := binuuid.Encode(testUserID)
	require.NoError(t, err)

	birth := time.Date(2000, 8, 20, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{
		getUserFunc: func(_ context.Context, userID []byte) (*User, error) {
			assert.Equal(t, uid, userID)

			return &User{
				ID:     userID,
				Name:   "지은",
				Birth:  &birth,
				Gender: "female",
			}, nil
		},
		workCount: 42,
		avgRating: 4.7,
	}

	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }

	p, err := svc.Get(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, testUserID, p.UserID)
	assert.Equal(t, "지은", p.UserName)
	assert.Equal(t, "2000-08-20", p.UserBirth)
	assert.Equal(t, 24, p.Age) // birthday not reached yet
	assert.Equal(t, 42, p.TotalWorkCount)
	assert.Equal(t, 4.7, p.TrustScore)
}

func TestService_Get_NotFound(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Get(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get_InvalidID(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Get(context.Background(), "garbage")
	assert.ErrorIs(t, err, binuuid.ErrInvalidFormat)
}

func TestService_Update(t *testing.T) {
	var gotParams UpdateParams

	repo := &mockRepo{
		getUserFunc: func(_ context.Context, userID []byte) (*User, error) {
			name := "민수"
			if gotParams.UserName != nil {
				name = *gotParams.UserName
			}

			return &User{ID: userID, Name: name}, nil
		},
		updateUserFunc: func(_ context.Context, _ []byte, params UpdateParams) error {
			gotParams = params
			return nil
		},
	}

	svc := NewService(repo)

	newName := "수진"
	p, err := svc.Update(context.Background(), testUserID, UpdateParams{UserName: &newName})
	require.NoError(t, err)

	require.NotNil(t, gotParams.UserName)
	assert.Equal(t, "수진", *gotParams.UserName)
	assert.Nil(t, gotParams.Gender)
	assert.Equal(t, "수진", p.UserName)
}

func TestService_Update_RepoError(t *testing.T) {
	repo := &mockRepo{
		updateUserFunc: func(context.Context, []byte, UpdateParams) error {
			return errors.New("db down")
		},
	}

	svc := NewService(repo)

	_, err := svc.Update(context.Background(), testUserID, UpdateParams{})
	assert.Error(t, err)
}

func TestAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name  string
		birth time.Time
		want  int
	}

	tests := []testCase{
		{"BirthdayPassed", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), 25},
		{"BirthdayToday", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), 25},
		{"BirthdayTomorrow", time.Date(2000, 6, 16, 0, 0, 0, 0, time.UTC), 24},
		{"BirthdayLaterThisYear", time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, age(tt.birth, now))
		})
	}
}
