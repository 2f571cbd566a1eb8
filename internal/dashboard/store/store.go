package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/albapay/albapay/internal/dashboard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListWorkLogs returns the user's work sessions in [start, end), each joined
// with its posting's hourly rate, store name and category ids. Missing numeric
// fields come back as zero so the aggregation never sees NULLs.
func (s *Store) ListWorkLogs(ctx context.Context, userID []byte, start, end time.Time) ([]dashboard.WorkLog, error) {
	query := `
		SELECT w.alba_id, w.work_date,
		       COALESCE(w.work_minutes, 0),
		       COALESCE(p.hourly_rate, 0),
		       COALESCE(st.store_name, ''),
		       COALESCE(string_agg(sc.category_id::text, ','), '')
		FROM user_work_logs w
		LEFT JOIN alba_postings p ON p.id = w.posting_id
		LEFT JOIN stores st ON st.id = p.store_id
		LEFT JOIN store_categories sc ON sc.store_id = st.id
		WHERE w.user_id = $1 AND w.work_date >= $2 AND w.work_date < $3
		GROUP BY w.id, w.alba_id, w.work_date, w.work_minutes, p.hourly_rate, st.store_name
		ORDER BY w.work_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing work logs: %w", err)
	}
	defer rows.Close()

	var logs []dashboard.WorkLog

	for rows.Next() {
		var (
			log        dashboard.WorkLog
			categories string
		)

		if err := rows.Scan(
			&log.AssignmentID, &log.WorkDate, &log.WorkMinutes,
			&log.HourlyRate, &log.StoreName, &categories,
		); err != nil {
			return nil, fmt.Errorf("scanning work log: %w", err)
		}

		log.CategoryIDs, err = parseCategoryIDs(categories)
		if err != nil {
			return nil, fmt.Errorf("scanning work log: %w", err)
		}

		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work log rows: %w", err)
	}

	return logs, nil
}

// ListStatusRecords returns every assignment of the user with its current
// settlement status, unbounded by date.
func (s *Store) ListStatusRecords(ctx context.Context, userID []byte) ([]dashboard.StatusRecord, error) {
	query := `
		SELECT ua.alba_id, COALESCE(ua.settlement_status, '')
		FROM user_albas ua
		WHERE ua.user_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing settlement statuses: %w", err)
	}
	defer rows.Close()

	var records []dashboard.StatusRecord

	for rows.Next() {
		var (
			record dashboard.StatusRecord
			status string
		)

		if err := rows.Scan(&record.AssignmentID, &status); err != nil {
			return nil, fmt.Errorf("scanning settlement status: %w", err)
		}

		record.Status = dashboard.Status(status)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement status rows: %w", err)
	}

	return records, nil
}

func parseCategoryIDs(joined string) ([]int64, error) {
	if joined == "" {
		return nil, nil
	}

	parts := strings.Split(joined, ",")
	ids := make([]int64, 0, len(parts))

	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing category id %q: %w", p, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
