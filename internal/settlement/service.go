package settlement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/albapay/albapay/internal/binuuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	// ListByPeriod returns settlements with settlement date in [start, end],
	// both bounds inclusive, ordered descending by settlement date.
	ListByPeriod(ctx context.Context, userID []byte, start, end time.Time) ([]Settlement, error)

	// TotalByPeriod sums the settlement amounts over the same inclusive range.
	TotalByPeriod(ctx context.Context, userID []byte, start, end time.Time) (int64, error)

	// ListMonthlyRows returns the year's settlements grouped by raw
	// settlement date.
	ListMonthlyRows(ctx context.Context, userID []byte, year int) ([]MonthlyRow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// History lists the user's settlements over [start, end] inclusive together
// with the period total. The listing keeps the query's descending date order;
// the total is an independent derived figure over the same range.
func (s *Service) History(ctx context.Context, userID string, start, end time.Time) (*HistoryReport, error) {
	uid, err := binuuid.Encode(userID)
	if err != nil {
		return nil, err
	}

	settlements, err := s.repo.ListByPeriod(ctx, uid, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing settlements: %w", err)
	}

	total, err := s.repo.TotalByPeriod(ctx, uid, start, end)
	if err != nil {
		return nil, fmt.Errorf("totalling settlements: %w", err)
	}

	items := make([]HistoryItem, 0, len(settlements))

	for _, st := range settlements {
		id, err := binuuid.Decode(st.ID)
		if err != nil {
			return nil, fmt.Errorf("decoding settlement id: %w", err)
		}

		items = append(items, HistoryItem{
			SettlementID: id,
			WorkDate:     formatDate(st.WorkDate),
			StoreName:    st.StoreName,
			Amount:       st.Amount,
			SettledAt:    formatDate(st.SettledAt),
		})
	}

	return &HistoryReport{
		Settlements: items,
		TotalAmount: total,
		PeriodStart: start.Format(time.DateOnly),
		PeriodEnd:   end.Format(time.DateOnly),
	}, nil
}

// MonthlySummaries reduces the year's settlements to per-month totals and
// counts. Months without records are omitted; the result is ascending by
// month.
func (s *Service) MonthlySummaries(ctx context.Context, userID string, year int) ([]MonthlySummary, error) {
	uid, err := binuuid.Encode(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListMonthlyRows(ctx, uid, year)
	if err != nil {
		return nil, fmt.Errorf("listing monthly settlement rows: %w", err)
	}

	type monthAgg struct {
		total int64
		count int
	}

	byMonth := make(map[int]monthAgg)

	for _, row := range rows {
		m := int(row.Date.Month())

		agg := byMonth[m]
		agg.total += row.Total
		agg.count += row.Count
		byMonth[m] = agg
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}

	sort.Ints(months)

	summaries := make([]MonthlySummary, 0, len(months))
	for _, m := range months {
		summaries = append(summaries, MonthlySummary{
			Month:       fmt.Sprintf("%04d-%02d", year, m),
			TotalAmount: byMonth[m].total,
			Count:       byMonth[m].count,
		})
	}

	return summaries, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.DateOnly)
}
