package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/albapay/albapay/internal/period"
	"github.com/albapay/albapay/internal/settlement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSettlement(s scanner) (settlement.Settlement, error) {
	var (
		st        settlement.Settlement
		settledAt sql.NullTime
		workDate  sql.NullTime
	)

	if err := s.Scan(&st.ID, &st.Amount, &settledAt, &workDate, &st.StoreName); err != nil {
		return settlement.Settlement{}, err
	}

	if settledAt.Valid {
		st.SettledAt = &settledAt.Time
	}

	if workDate.Valid {
		st.WorkDate = &workDate.Time
	}

	return st, nil
}

// ListByPeriod returns the user's settlements with settlement date in
// [start, end] inclusive, newest first.
func (s *Store) ListByPeriod(ctx context.Context, userID []byte, start, end time.Time) ([]settlement.Settlement, error) {
	query := `
		SELECT il.id, COALESCE(il.amount, 0), il.income_date, w.work_date,
		       COALESCE(st.store_name, '')
		FROM income_logs il
		LEFT JOIN user_work_logs w ON w.id = il.work_log_id
		LEFT JOIN alba_postings p ON p.id = w.posting_id
		LEFT JOIN stores st ON st.id = p.store_id
		WHERE il.user_id = $1 AND il.income_date >= $2 AND il.income_date <= $3
		ORDER BY il.income_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.Settlement

	for rows.Next() {
		st, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning settlement: %w", err)
		}

		settlements = append(settlements, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement rows: %w", err)
	}

	return settlements, nil
}

// TotalByPeriod sums settlement amounts over [start, end] inclusive.
func (s *Store) TotalByPeriod(ctx context.Context, userID []byte, start, end time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM income_logs
		WHERE user_id = $1 AND income_date >= $2 AND income_date <= $3
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, userID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("totalling settlements: %w", err)
	}

	return total, nil
}

// ListMonthlyRows groups the year's settlements by raw settlement date.
// Rows without a settlement date cannot be attributed to a month and are
// filtered out here.
func (s *Store) ListMonthlyRows(ctx context.Context, userID []byte, year int) ([]settlement.MonthlyRow, error) {
	rng := period.YearRange(year)

	query := `
		SELECT income_date, COALESCE(SUM(amount), 0), COUNT(*)
		FROM income_logs
		WHERE user_id = $1 AND income_date IS NOT NULL
		  AND income_date >= $2 AND income_date <= $3
		GROUP BY income_date
		ORDER BY income_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("listing monthly settlement rows: %w", err)
	}
	defer rows.Close()

	var monthly []settlement.MonthlyRow

	for rows.Next() {
		var row settlement.MonthlyRow
		if err := rows.Scan(&row.Date, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("scanning monthly settlement row: %w", err)
		}

		monthly = append(monthly, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly settlement rows: %w", err)
	}

	return monthly, nil
}
