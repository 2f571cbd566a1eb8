package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/albapay/albapay/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(ctx context.Context, userID []byte) (*profile.User, error) {
	query := `
		SELECT id, COALESCE(user_name, ''), user_birth,
		       COALESCE(gender, ''), COALESCE(profile_image, '')
		FROM users
		WHERE id = $1
	`

	var (
		user  profile.User
		birth sql.NullTime
	)

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Name, &birth, &user.Gender, &user.ProfileImage,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	if birth.Valid {
		user.Birth = &birth.Time
	}

	return &user, nil
}

func (s *Store) CountWorkLogs(ctx context.Context, userID []byte) (int, error) {
	query := `SELECT COUNT(*) FROM user_work_logs WHERE user_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting work logs: %w", err)
	}

	return count, nil
}

func (s *Store) AverageRating(ctx context.Context, userID []byte) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE user_id = $1`

	var avg float64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("averaging ratings: %w", err)
	}

	return avg, nil
}

// UpdateUser writes only the fields set in params. A params with nothing set
// is a no-op.
func (s *Store) UpdateUser(ctx context.Context, userID []byte, params profile.UpdateParams) error {
	query := `UPDATE users SET updated_at = NOW()`

	var args []any

	argIdx := 1

	if params.UserName != nil {
		query += fmt.Sprintf(", user_name = $%d", argIdx)

		args = append(args, *params.UserName)
		argIdx++
	}

	if params.UserBirth != nil {
		query += fmt.Sprintf(", user_birth = $%d", argIdx)

		args = append(args, *params.UserBirth)
		argIdx++
	}

	if params.Gender != nil {
		query += fmt.Sprintf(", gender = $%d", argIdx)

		args = append(args, *params.Gender)
		argIdx++
	}

	if params.ProfileImage != nil {
		query += fmt.Sprintf(", profile_image = $%d", argIdx)

		args = append(args, *params.ProfileImage)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	if affected == 0 {
		return profile.ErrNotFound
	}

	return nil
}
