package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/albapay/albapay/internal/binuuid"
)

type Repository interface {
	GetUser(ctx context.Context, userID []byte) (*User, error)
	CountWorkLogs(ctx context.Context, userID []byte) (int, error)
	AverageRating(ctx context.Context, userID []byte) (float64, error)
	UpdateUser(ctx context.Context, userID []byte, params UpdateParams) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Get returns the user's profile with derived age, work count and trust
// score.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	uid, err := binuuid.Encode(userID)
	if err != nil {
		return nil, err
	}

	return s.get(ctx, uid)
}

func (s *Service) get(ctx context.Context, uid []byte) (*Profile, error) {
	user, err := s.repo.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	workCount, err := s.repo.CountWorkLogs(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("counting work logs: %w", err)
	}

	trustScore, err := s.repo.AverageRating(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("averaging ratings: %w", err)
	}

	id, err := binuuid.Decode(user.ID)
	if err != nil {
		return nil, fmt.Errorf("decoding user id: %w", err)
	}

	p := &Profile{
		UserID:         id,
		UserName:       user.Name,
		Gender:         user.Gender,
		ProfileImage:   user.ProfileImage,
		TotalWorkCount: workCount,
		TrustScore:     trustScore,
	}

	if user.Birth != nil {
		p.UserBirth = user.Birth.Format(time.DateOnly)
		p.Age = age(*user.Birth, s.now())
	}

	return p, nil
}

// Update applies a partial profile update and returns the refreshed profile.
func (s *Service) Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error) {
	uid, err := binuuid.Encode(userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUser(ctx, uid, params); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return s.get(ctx, uid)
}

// age counts completed years between birth and now; the birthday itself
// counts as completed.
func age(birth, now time.Time) int {
	years := now.Year() - birth.Year()

	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}

	return years
}
