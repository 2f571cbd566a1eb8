package settlement

import "time"

// Settlement is one realized payment event read from the income log, joined
// with the work session and store it settles.
type Settlement struct {
	ID        []byte
	Amount    int64
	SettledAt *time.Time
	WorkDate  *time.Time
	StoreName string
}

// MonthlyRow is one raw grouped row from the store: the settlements sharing a
// single settlement date. The service reduces these to calendar months.
type MonthlyRow struct {
	Date  time.Time
	Total int64
	Count int
}

// HistoryItem is one settlement flattened for listing, ids decoded and dates
// formatted as YYYY-MM-DD.
type HistoryItem struct {
	SettlementID string
	WorkDate     string
	StoreName    string
	Amount       int64
	SettledAt    string
}

// HistoryReport is the settlement listing for one user and period.
type HistoryReport struct {
	Settlements []HistoryItem
	TotalAmount int64
	PeriodStart string
	PeriodEnd   string
}

// MonthlySummary aggregates one calendar month's settlements.
type MonthlySummary struct {
	Month       string // YYYY-MM
	TotalAmount int64
	Count       int
}
