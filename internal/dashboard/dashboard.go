package dashboard

import (
	"encoding/hex"
	"strconv"
	"time"
)

// Status is the settlement state of an assignment. Only StatusCompleted is
// meaningful to the aggregation; every other value (including absence) counts
// as not yet realized.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// GroupBy selects the breakdown dimension of a dashboard report.
type GroupBy string

const (
	GroupByStore    GroupBy = "store"
	GroupByCategory GroupBy = "category"
)

// ParseGroupBy reads a groupBy query value, defaulting to store grouping.
func ParseGroupBy(s string) GroupBy {
	if s == string(GroupByCategory) {
		return GroupByCategory
	}

	return GroupByStore
}

// WorkLog is one recorded work session joined with its posting and store.
type WorkLog struct {
	AssignmentID []byte
	WorkDate     time.Time
	WorkMinutes  int
	HourlyRate   int64
	StoreName    string // empty when the posting has no store
	CategoryIDs  []int64
}

// StatusRecord is the current settlement state of one assignment.
type StatusRecord struct {
	AssignmentID []byte
	Status       Status
}

// StatusIndex maps the hex form of an assignment id to its settlement status.
// Hex keys give value equality across independently fetched byte slices.
type StatusIndex map[string]Status

// NewStatusIndex builds the index from a flat list of status records. On
// duplicate assignment ids the last record wins.
func NewStatusIndex(records []StatusRecord) StatusIndex {
	idx := make(StatusIndex, len(records))
	for _, r := range records {
		idx[hex.EncodeToString(r.AssignmentID)] = r.Status
	}

	return idx
}

// Completed reports whether the assignment's settlement is realized. A missing
// entry counts as not completed.
func (idx StatusIndex) Completed(assignmentID []byte) bool {
	return idx[hex.EncodeToString(assignmentID)] == StatusCompleted
}

// Report is the income dashboard for one user and month.
type Report struct {
	Month          string
	ExpectedIncome int64
	ActualIncome   int64
	Breakdown      []BreakdownEntry
}

// BreakdownEntry is one group's realized income.
type BreakdownEntry struct {
	Key    string
	Income int64
}

// fallbackStoreName buckets work logs whose posting carries no store.
const fallbackStoreName = "기타"

// uncategorizedKey buckets work logs whose store has no categories.
const uncategorizedKey = "uncategorized"

type groupKind int

const (
	kindStore groupKind = iota
	kindCategory
	kindUncategorized
)

// groupKey tags which dimension a bucket belongs to, so store names and
// category ids can never collide through ad-hoc stringification.
type groupKey struct {
	kind     groupKind
	store    string
	category int64
}

func storeKey(name string) groupKey {
	if name == "" {
		name = fallbackStoreName
	}

	return groupKey{kind: kindStore, store: name}
}

func categoryKey(id int64) groupKey {
	return groupKey{kind: kindCategory, category: id}
}

func (k groupKey) String() string {
	switch k.kind {
	case kindCategory:
		return strconv.FormatInt(k.category, 10)
	case kindUncategorized:
		return uncategorizedKey
	default:
		return k.store
	}
}
