package transition

import "time"

type PendingTransitionDB struct {
	ID        int64
	OrderID   string
	Kind      string
	DueAt     time.Time
	State     string
	Attempts  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}
