package app

import (
	"context"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	eventsGateway "orderflow/internal/gateway/kafka/events"
	pushGateway "orderflow/internal/gateway/push"
	"orderflow/internal/handlers/rest/order_confirm_post"
	"orderflow/internal/handlers/rest/order_get"
	"orderflow/internal/handlers/rest/order_republish_post"
	"orderflow/internal/handlers/rest/worker_put"
	"orderflow/internal/handlers/rest/workers_get"
	"orderflow/internal/handlers/tasks/transition_sweep"
	"orderflow/internal/pkg/config"
	"orderflow/internal/pkg/factory/transition_apply"

	dispatchRepo "orderflow/internal/repository/dispatch"
	orderRepo "orderflow/internal/repository/order"
	subOrderRepo "orderflow/internal/repository/suborder"
	transitionRepo "orderflow/internal/repository/transition"
	workerRepo "orderflow/internal/repository/worker"
	dispatchService "orderflow/internal/service/dispatch"
	"orderflow/internal/service/geoindex"
	orderService "orderflow/internal/service/order"
	scheduleService "orderflow/internal/service/schedule"
	workerService "orderflow/internal/service/worker"

	"orderflow/pkg/background"
	"orderflow/pkg/logger"
	"orderflow/pkg/querier"
	"orderflow/pkg/tx"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceWorker     ServiceWorker
	ServiceSchedule   ServiceSchedule
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	order_republish_post.Service
}

type ServiceWorker interface {
	workers_get.Service
	worker_put.Service
}

type ServiceSchedule interface {
	order_confirm_post.Service
}

// SubOrderWorkerApp для Kafka воркера (cmd/worker-suborder-status-changed)
type SubOrderWorkerApp struct {
	OrderService *orderService.Service
}

// DispatchWorkerApp для Kafka воркера (cmd/worker-order-ready)
type DispatchWorkerApp struct {
	DispatchService *dispatchService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideSubOrderRepository(querier *querier.Querier) *subOrderRepo.Repository {
	return subOrderRepo.New(querier)
}

func provideWorkerRepository(querier *querier.Querier) *workerRepo.Repository {
	return workerRepo.New(querier)
}

func provideTransitionRepository(querier *querier.Querier) *transitionRepo.Repository {
	return transitionRepo.New(querier)
}

func provideDispatchRepository(querier *querier.Querier) *dispatchRepo.Repository {
	return dispatchRepo.New(querier)
}

func provideEventGateway(producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.EventGateway {
	return eventsGateway.New(producer, cfg.Kafka.Topics)
}

func providePushGateway(client *http.Client, cfg *config.Config) *pushGateway.PushGateway {
	return pushGateway.New(client, cfg.Push.Endpoint, cfg.Push.APIKey)
}

func provideGeoIndex(log logger.Logger) *geoindex.Index {
	return geoindex.New(log)
}

func provideServiceOrder(
	repository orderService.Repository,
	subOrders orderService.SubOrderRepository,
	publisher orderService.Publisher,
) *orderService.Service {
	return orderService.New(repository, subOrders, publisher)
}

func provideServiceWorker(repository workerService.Repository) *workerService.Service {
	return workerService.New(repository)
}

func provideApplyHandlerFactory(orderService *orderService.Service) *transition_apply.ApplyHandlerFactory {
	return transition_apply.NewApplyHandlerFactory(orderService)
}

func provideServiceSchedule(
	log logger.Logger,
	repository scheduleService.Repository,
	orderService scheduleService.OrderService,
	subOrders scheduleService.SubOrderRepository,
	applyFactory scheduleService.HandlerFactory,
	timeFactory scheduleService.StartTimeFactory,
	txManager scheduleService.TxManager,
	cfg *config.Config,
) *scheduleService.Service {
	return scheduleService.New(
		log,
		repository,
		orderService,
		subOrders,
		applyFactory,
		timeFactory,
		txManager,
		cfg.Transitions.ApplyTimeout,
		int32(cfg.Transitions.MaxAttempts),
	)
}

func provideServiceDispatch(
	log logger.Logger,
	orderService dispatchService.OrderService,
	workers dispatchService.WorkerRepository,
	repository dispatchService.Repository,
	geoIndex dispatchService.GeoIndex,
	notifier dispatchService.Notifier,
	publisher dispatchService.Publisher,
) *dispatchService.Service {
	return dispatchService.New(
		log,
		orderService,
		workers,
		repository,
		geoIndex,
		notifier,
		publisher,
	)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.TransitionSweepInterval)
}

func provideTransitionSweepTask(
	log logger.Logger,
	scheduleService transition_sweep.Service,
	interval SweepInterval,
) *transition_sweep.TransitionSweep {
	return transition_sweep.NewTransitionSweep(log, scheduleService, time.Duration(interval))
}

func provideTaskList(
	transitionSweepTask *transition_sweep.TransitionSweep,
) []background.Task {
	return []background.Task{
		transitionSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
