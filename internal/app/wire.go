//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	eventsGateway "orderflow/internal/gateway/kafka/events"
	pushGateway "orderflow/internal/gateway/push"
	"orderflow/internal/handlers/tasks/transition_sweep"
	"orderflow/internal/pkg/config"
	"orderflow/internal/pkg/factory/start_delay"
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

	"orderflow/pkg/logger"
	"orderflow/pkg/tx"
)

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderRepository,
		provideSubOrderRepository,
		provideWorkerRepository,
		provideTransitionRepository,
		provideEventGateway,
		provideServiceOrder,
		provideServiceWorker,
		provideApplyHandlerFactory,
		start_delay.New,
		provideServiceSchedule,
		provideSweepInterval,
		provideTransitionSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SubOrderRepository), new(*subOrderRepo.Repository)),
		wire.Bind(new(orderService.Publisher), new(*eventsGateway.EventGateway)),
		wire.Bind(new(workerService.Repository), new(*workerRepo.Repository)),
		wire.Bind(new(scheduleService.Repository), new(*transitionRepo.Repository)),
		wire.Bind(new(scheduleService.OrderService), new(*orderService.Service)),
		wire.Bind(new(scheduleService.SubOrderRepository), new(*subOrderRepo.Repository)),
		wire.Bind(new(scheduleService.HandlerFactory), new(*transition_apply.ApplyHandlerFactory)),
		wire.Bind(new(scheduleService.StartTimeFactory), new(*start_delay.StartTimeFactory)),
		wire.Bind(new(scheduleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(transition_sweep.Service), new(*scheduleService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceWorker), new(*workerService.Service)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Service)),

		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

func InitializeSubOrderWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*SubOrderWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideSubOrderRepository,
		provideEventGateway,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SubOrderRepository), new(*subOrderRepo.Repository)),
		wire.Bind(new(orderService.Publisher), new(*eventsGateway.EventGateway)),

		wire.Struct(new(SubOrderWorkerApp), "*"),
	)
	return nil, nil
}

func InitializeDispatchWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	httpClient *http.Client,
	cfg *config.Config,
) (*DispatchWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideSubOrderRepository,
		provideWorkerRepository,
		provideDispatchRepository,
		provideEventGateway,
		providePushGateway,
		provideGeoIndex,
		provideServiceOrder,
		provideServiceDispatch,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SubOrderRepository), new(*subOrderRepo.Repository)),
		wire.Bind(new(orderService.Publisher), new(*eventsGateway.EventGateway)),
		wire.Bind(new(dispatchService.OrderService), new(*orderService.Service)),
		wire.Bind(new(dispatchService.WorkerRepository), new(*workerRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(dispatchService.GeoIndex), new(*geoindex.Index)),
		wire.Bind(new(dispatchService.Notifier), new(*pushGateway.PushGateway)),
		wire.Bind(new(dispatchService.Publisher), new(*eventsGateway.EventGateway)),

		wire.Struct(new(DispatchWorkerApp), "*"),
	)
	return nil, nil
}
