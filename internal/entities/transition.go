package entities

import "time"

// PendingTransition отложенный переход статуса заказа. Создается при
// подтверждении заказа, применяется периодическим sweep'ом даже если
// процесс-создатель давно умер.
type PendingTransition struct {
	ID        int64
	OrderID   string
	Kind      TransitionKind
	DueAt     time.Time
	State     TransitionStateType
	Attempts  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransitionKind string

const (
	TransitionStartDelivery TransitionKind = "start_delivery"
)

func (k TransitionKind) String() string {
	return string(k)
}

type TransitionStateType string

const (
	TransitionPending   TransitionStateType = "pending"
	TransitionCompleted TransitionStateType = "completed"
	TransitionFailed    TransitionStateType = "failed"
)

func (s TransitionStateType) String() string {
	return string(s)
}
