package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albapay/albapay/internal/binuuid"
	"github.com/albapay/albapay/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	ListWorkLogs(ctx context.Context, userID []byte, start, end time.Time) ([]WorkLog, error)
	ListStatusRecords(ctx context.Context, userID []byte) ([]StatusRecord, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetDashboard computes the income dashboard for the given user and month.
// An empty month means the current calendar month. The work-log and
// settlement-status reads are independent and run concurrently; both must
// succeed before anything is aggregated.
func (s *Service) GetDashboard(ctx context.Context, userID, month string, groupBy GroupBy) (*Report, error) {
	uid, err := binuuid.Encode(userID)
	if err != nil {
		return nil, err
	}

	rng, normalized, err := period.MonthRange(month, s.now())
	if err != nil {
		return nil, err
	}

	var (
		logs    []WorkLog
		records []StatusRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		logs, err = s.repo.ListWorkLogs(gctx, uid, rng.Start, rng.End)
		if err != nil {
			return fmt.Errorf("listing work logs: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		records, err = s.repo.ListStatusRecords(gctx, uid)
		if err != nil {
			return fmt.Errorf("listing settlement statuses: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	statuses := NewStatusIndex(records)

	report := &Report{Month: normalized}
	buckets := newBreakdown()

	for _, log := range logs {
		// Sessions without both a positive duration and a positive rate
		// carry no income and stay out of every total.
		if log.WorkMinutes <= 0 || log.HourlyRate <= 0 {
			continue
		}

		income := sessionIncome(log.WorkMinutes, log.HourlyRate)
		report.ExpectedIncome += income

		if !statuses.Completed(log.AssignmentID) {
			continue
		}

		report.ActualIncome += income

		if groupBy == GroupByCategory {
			if len(log.CategoryIDs) == 0 {
				buckets.add(groupKey{kind: kindUncategorized}, income)
				continue
			}

			// Fan out: a multi-category store contributes its full income
			// to every category bucket, not a split share.
			for _, id := range log.CategoryIDs {
				buckets.add(categoryKey(id), income)
			}

			continue
		}

		buckets.add(storeKey(log.StoreName), income)
	}

	report.Breakdown = buckets.entries()

	return report, nil
}

// sessionIncome is minutes*rate/60 rounded half-up. Inputs are positive by the
// time this is called, so the +30 bias is exact.
func sessionIncome(minutes int, hourlyRate int64) int64 {
	return (int64(minutes)*hourlyRate + 30) / 60
}

// breakdown accumulates per-group income while remembering first-encounter
// order, so equal totals sort stably.
type breakdown struct {
	order  []groupKey
	totals map[groupKey]int64
}

func newBreakdown() *breakdown {
	return &breakdown{totals: make(map[groupKey]int64)}
}

func (b *breakdown) add(key groupKey, income int64) {
	if _, seen := b.totals[key]; !seen {
		b.order = append(b.order, key)
	}

	b.totals[key] += income
}

func (b *breakdown) entries() []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, BreakdownEntry{Key: key.String(), Income: b.totals[key]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Income > out[j].Income
	})

	return out
}
