package schedule

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidDueAt   = errors.New("invalid due time")

	ErrOrderNotConfirmable = errors.New("order is not confirmable")

	// ErrUndefinedKind - в хранилище лежит переход неизвестного вида.
	// Ретраи бессмысленны, запись сразу помечается failed.
	ErrUndefinedKind = errors.New("undefined transition kind")
)
