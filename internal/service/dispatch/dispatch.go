package dispatch

import (
	"context"
	"fmt"
	"math"
	"time"

	"orderflow/internal/entities"
	"orderflow/internal/service/geoindex"
	"orderflow/pkg/logger"
)

// Текст пуша согласован с мобильным приложением курьера, не менять
// без синхронизации с ним.
const (
	notificationTitle = "SARIE APP"
	notificationBody  = "لديك طلب جديد بالقرب منك!"
)

type Service struct {
	log          handlerLogger
	orderService OrderService
	workers      WorkerRepository
	repository   Repository
	geoIndex     GeoIndex
	notifier     Notifier
	publisher    Publisher
}

func New(
	log handlerLogger,
	orderService OrderService,
	workers WorkerRepository,
	repository Repository,
	geoIndex GeoIndex,
	notifier Notifier,
	publisher Publisher,
) *Service {
	return &Service{
		log:          log,
		orderService: orderService,
		workers:      workers,
		repository:   repository,
		geoIndex:     geoIndex,
		notifier:     notifier,
		publisher:    publisher,
	}
}

// Dispatch подбирает ближайшего свободного курьера для готового заказа,
// шлет ему пуш и публикует событие назначения. Клейм в хранилище
// гарантирует не больше одного назначения и одного пуша на заказ при
// любом числе повторных доставок события.
func (s *Service) Dispatch(ctx context.Context, orderID string) (*entities.DispatchAssignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	ord, err := s.orderService.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !ord.Customer.Valid() {
		return nil, fmt.Errorf("%w: order %s", ErrMissingCustomerLocation, orderID)
	}

	workers, err := s.workers.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available workers: %w", err)
	}

	candidates := make([]geoindex.Candidate, 0, len(workers))
	byID := make(map[string]entities.DeliveryWorker, len(workers))
	for _, worker := range workers {
		location := entities.GeoPoint{Lat: math.NaN(), Lon: math.NaN()}
		if worker.Location != nil {
			location = *worker.Location
		}
		// курьер без координат остается в списке: geo-индекс отбросит
		// его с логом, а не молча
		candidates = append(candidates, geoindex.Candidate{
			ID:       worker.ID,
			Location: location,
		})
		byID[worker.ID] = worker
	}

	winner, err := s.geoIndex.Nearest(ord.Customer, candidates)
	if err != nil {
		return nil, fmt.Errorf("pick nearest worker: %w", err)
	}

	if err := s.orderService.Transition(ctx, orderID, entities.OrderDispatching); err != nil {
		return nil, fmt.Errorf("advance order to dispatching: %w", err)
	}

	assignment := entities.DispatchAssignment{
		OrderID:    orderID,
		WorkerID:   winner.ID,
		DistanceKm: geoindex.Distance(ord.Customer, winner.Location),
		AssignedAt: time.Now().UTC(),
	}

	if err := s.repository.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("claim dispatch: %w", err)
	}

	// пуш после клейма: упавший пуш клейм не снимает, иначе повторная
	// доставка события раздала бы заказ дважды
	if err := s.notifier.Send(ctx, byID[winner.ID].PushToken, notificationTitle, notificationBody); err != nil {
		s.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("worker_id", winner.ID),
			logger.NewField("error", err.Error()),
		).Warn("push notification failed")
	}

	if err := s.publisher.PublishAssignmentRequested(ctx, orderID, winner.ID); err != nil {
		return &assignment, fmt.Errorf("%w: %w", ErrEventPublish, err)
	}

	return &assignment, nil
}
