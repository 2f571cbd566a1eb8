package profile

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no user exists for the given id.
var ErrNotFound = errors.New("user not found")

// User is the stored profile row.
type User struct {
	ID           []byte
	Name         string
	Birth        *time.Time
	Gender       string
	ProfileImage string
}

// Profile is the derived view returned to callers: stored fields plus age,
// total work count and trust score.
type Profile struct {
	UserID         string
	UserName       string
	UserBirth      string // YYYY-MM-DD, empty when unknown
	Age            int
	Gender         string
	ProfileImage   string
	TotalWorkCount int
	TrustScore     float64
}

// UpdateParams carries a partial profile update, one optional per mutable
// attribute. Nil fields are left untouched.
type UpdateParams struct {
	UserName     *string
	UserBirth    *time.Time
	Gender       *string
	ProfileImage *string
}
