package settlement

import "github.com/albapay/albapay/internal/settlement"

type historyResponse struct {
	Settlements []historyItem `json:"settlements"`
	TotalAmount int64         `json:"totalAmount"`
	PeriodStart string        `json:"periodStart"`
	PeriodEnd   string        `json:"periodEnd"`
}

type historyItem struct {
	SettlementID string `json:"settlementId"`
	WorkDate     string `json:"workDate"`
	StoreName    string `json:"storeName"`
	Amount       int64  `json:"amount"`
	SettledAt    string `json:"settledAt"`
}

type monthlySummary struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"totalAmount"`
	Count       int    `json:"count"`
}

func toHistoryResponse(report *settlement.HistoryReport) historyResponse {
	items := make([]historyItem, len(report.Settlements))
	for i, s := range report.Settlements {
		items[i] = historyItem{
			SettlementID: s.SettlementID,
			WorkDate:     s.WorkDate,
			StoreName:    s.StoreName,
			Amount:       s.Amount,
			SettledAt:    s.SettledAt,
		}
	}

	return historyResponse{
		Settlements: items,
		TotalAmount: report.TotalAmount,
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
	}
}

func toMonthlyResponse(summaries []settlement.MonthlySummary) []monthlySummary {
	resp := make([]monthlySummary, len(summaries))
	for i, s := range summaries {
		resp[i] = monthlySummary{
			Month:       s.Month,
			TotalAmount: s.TotalAmount,
			Count:       s.Count,
		}
	}

	return resp
}
