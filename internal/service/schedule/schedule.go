package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderflow/internal/entities"
	"orderflow/pkg/logger"
)

// сколько готовых к применению переходов забирает один проход sweep'а
const defaultBatchLimit = 100

type Service struct {
	log          handlerLogger
	repository   Repository
	orderService OrderService
	subOrders    SubOrderRepository
	applyFactory HandlerFactory
	timeFactory  StartTimeFactory
	txManager    TxManager
	applyTimeout time.Duration
	maxAttempts  int32
}

func New(
	log handlerLogger,
	repository Repository,
	orderService OrderService,
	subOrders SubOrderRepository,
	applyFactory HandlerFactory,
	timeFactory StartTimeFactory,
	txManager TxManager,
	applyTimeout time.Duration,
	maxAttempts int32,
) *Service {
	return &Service{
		log:          log,
		repository:   repository,
		orderService: orderService,
		subOrders:    subOrders,
		applyFactory: applyFactory,
		timeFactory:  timeFactory,
		txManager:    txManager,
		applyTimeout: applyTimeout,
		maxAttempts:  maxAttempts,
	}
}

// Confirm подтверждает заказ: считает время старта доставки от числа
// вендорских частей и записывает отложенный переход. Запись переживает
// рестарт процесса, в отличие от таймера в памяти.
func (s *Service) Confirm(ctx context.Context, orderID string) (time.Time, error) {
	if !isValidOrderID(orderID) {
		return time.Time{}, ErrInvalidOrderID
	}

	ord, err := s.orderService.GetOrder(ctx, orderID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get order: %w", err)
	}
	if ord.Status.IsTerminal() {
		return time.Time{}, fmt.Errorf("%w: status %s", ErrOrderNotConfirmable, ord.Status)
	}

	statuses, err := s.subOrders.GetStatusesByOrderID(ctx, orderID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get sub-order statuses: %w", err)
	}

	dueAt := s.timeFactory.CalculateDueAt(time.Now().UTC(), len(statuses))

	if err := s.Schedule(ctx, orderID, entities.TransitionStartDelivery, dueAt); err != nil {
		return time.Time{}, fmt.Errorf("schedule start delivery: %w", err)
	}

	return dueAt, nil
}

// Schedule записывает отложенный переход. Повторный вызов для того же
// заказа и вида - no-op: дубль гасится уникальным индексом в хранилище.
func (s *Service) Schedule(ctx context.Context, orderID string, kind entities.TransitionKind, dueAt time.Time) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if dueAt.IsZero() {
		return ErrInvalidDueAt
	}

	created, err := s.repository.CreatePending(ctx, orderID, kind, dueAt)
	if err != nil {
		return fmt.Errorf("create pending transition: %w", err)
	}

	if !created {
		s.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("kind", kind.String()),
		).Info("transition already scheduled")
	}

	return nil
}

// Sweep применяет все созревшие переходы. Ошибка одной записи не
// останавливает проход: запись получает попытку и ждет следующего
// sweep'а, остальные обрабатываются дальше. Возвращает число успешно
// примененных переходов.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	due, err := s.repository.GetDue(ctx, time.Now().UTC(), defaultBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("load due transitions: %w", err)
	}

	var applied int64
	for _, transition := range due {
		if err := ctx.Err(); err != nil {
			return applied, err
		}

		if err := s.sweepOne(ctx, transition); err != nil {
			s.log.With(
				logger.NewField("order_id", transition.OrderID),
				logger.NewField("kind", transition.Kind.String()),
				logger.NewField("attempts", transition.Attempts),
				logger.NewField("error", err.Error()),
			).Error("apply pending transition")
			continue
		}

		applied++
	}

	return applied, nil
}

func (s *Service) sweepOne(ctx context.Context, transition entities.PendingTransition) error {
	applyFn, err := s.applyFactory.GetHandler(transition.Kind)
	if err != nil {
		if errors.Is(err, ErrUndefinedKind) {
			// maxAttempts 0: запись уходит в failed с первой же попытки
			if regErr := s.repository.RegisterFailure(ctx, transition.ID, 0); regErr != nil {
				return fmt.Errorf("register failure: %w", regErr)
			}
		}
		return err
	}

	applyCtx, cancel := context.WithTimeout(ctx, s.applyTimeout)
	defer cancel()

	// применение и отметка completed в одной транзакции: после падения
	// между ними повторный sweep применил бы переход заново, а так
	// запись либо полностью обработана, либо целиком ждет ретрая
	err = s.txManager.Do(applyCtx, func(ctx context.Context) error {
		if err := applyFn(ctx, transition.OrderID); err != nil {
			return fmt.Errorf("apply %s: %w", transition.Kind, err)
		}
		if err := s.repository.MarkCompleted(ctx, transition.ID); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		return nil
	})
	if err != nil {
		// таймаут записи - транзиент, попытку не сжигаем
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("apply timed out: %w", err)
		}
		if regErr := s.repository.RegisterFailure(ctx, transition.ID, s.maxAttempts); regErr != nil {
			return fmt.Errorf("register failure: %w (apply error: %v)", regErr, err)
		}
		return err
	}

	return nil
}
