package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/albapay/albapay/internal/binuuid"
)

type Repository interface {
	// ListByDay returns the user's sessions with work date in [start, end).
	ListByDay(ctx context.Context, userID []byte, start, end time.Time) ([]Session, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Today lists the user's work sessions for the current calendar day.
func (s *Service) Today(ctx context.Context, userID string) (*TodayList, error) {
	uid, err := binuuid.Encode(userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	sessions, err := s.repo.ListByDay(ctx, uid, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing today's work logs: %w", err)
	}

	schedules := make([]Schedule, 0, len(sessions))

	for _, session := range sessions {
		id, err := binuuid.Decode(session.ID)
		if err != nil {
			return nil, fmt.Errorf("decoding work log id: %w", err)
		}

		schedules = append(schedules, Schedule{
			WorkLogID:   id,
			StoreName:   session.StoreName,
			StartAt:     formatClock(session.StartAt),
			EndAt:       formatClock(session.EndAt),
			WorkMinutes: session.WorkMinutes,
		})
	}

	return &TodayList{
		Date:      start.Format(time.DateOnly),
		Schedules: schedules,
	}, nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("15:04")
}
