//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_republish_post_test
package order_republish_post

import (
	"context"

	"orderflow/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Republish(ctx context.Context, orderID string) error
}
