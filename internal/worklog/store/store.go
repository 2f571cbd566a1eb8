package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/albapay/albapay/internal/worklog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListByDay(ctx context.Context, userID []byte, start, end time.Time) ([]worklog.Session, error) {
	query := `
		SELECT w.id, COALESCE(st.store_name, ''), w.start_at, w.end_at,
		       COALESCE(w.work_minutes, 0)
		FROM user_work_logs w
		LEFT JOIN alba_postings p ON p.id = w.posting_id
		LEFT JOIN stores st ON st.id = p.store_id
		WHERE w.user_id = $1 AND w.work_date >= $2 AND w.work_date < $3
		ORDER BY w.start_at ASC NULLS LAST
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing work logs for day: %w", err)
	}
	defer rows.Close()

	var sessions []worklog.Session

	for rows.Next() {
		var (
			session worklog.Session
			startAt sql.NullTime
			endAt   sql.NullTime
		)

		if err := rows.Scan(
			&session.ID, &session.StoreName, &startAt, &endAt, &session.WorkMinutes,
		); err != nil {
			return nil, fmt.Errorf("scanning work log: %w", err)
		}

		if startAt.Valid {
			session.StartAt = &startAt.Time
		}

		if endAt.Valid {
			session.EndAt = &endAt.Time
		}

		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work log rows: %w", err)
	}

	return sessions, nil
}
