package start_delay

import (
	"time"
)

const (
	basePreparation      = 10 * time.Minute
	perExtraVendor       = 5 * time.Minute
	maxPreparationWindow = 30 * time.Minute
)

type StartTimeFactory struct{}

func New() *StartTimeFactory {
	return &StartTimeFactory{}
}

// CalculateDueAt возвращает момент запуска доставки. Каждый дополнительный
// вендор расширяет окно подготовки, но не дальше верхней границы.
func (f *StartTimeFactory) CalculateDueAt(baseTime time.Time, vendorCount int) time.Time {
	window := basePreparation
	if vendorCount > 1 {
		window += time.Duration(vendorCount-1) * perExtraVendor
	}
	if window > maxPreparationWindow {
		window = maxPreparationWindow
	}

	return baseTime.Add(window)
}
