//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"tracker/internal/handlers/rest/admin_performance_get"
	"tracker/internal/handlers/rest/admin_reference_post"
	"tracker/internal/handlers/rest/admin_session_post"
	"tracker/internal/handlers/rest/admin_users_get"
	"tracker/internal/handlers/rest/dispatch_line_get"
	"tracker/internal/handlers/rest/dispatch_lines_get"
	"tracker/internal/handlers/rest/dispatch_lookup_get"
	"tracker/internal/handlers/rest/dispatch_print_get"
	"tracker/internal/handlers/rest/dispatch_utilisation_get"
	"tracker/internal/handlers/rest/dispatches_get"
	"tracker/internal/handlers/rest/dispatches_import_post"
	"tracker/internal/handlers/rest/dispatches_report_get"
	"tracker/internal/handlers/rest/loading_order_get"
	"tracker/internal/handlers/rest/loading_order_print_get"
	"tracker/internal/handlers/rest/loading_orders_get"
	"tracker/internal/handlers/rest/loading_orders_report_get"
	"tracker/internal/handlers/rest/reference_get"
	"tracker/internal/handlers/rest/shipment_drivers_lookup_get"
	"tracker/internal/handlers/rest/shipment_history_get"
	"tracker/internal/handlers/rest/shipment_updates_post"
	"tracker/internal/handlers/rest/shipments_delivered_get"
	"tracker/internal/handlers/rest/shipments_delivered_report_get"
	"tracker/internal/handlers/rest/shipments_get"
	"tracker/internal/handlers/rest/shipments_import_post"
	"tracker/internal/handlers/rest/shipments_post"
	"tracker/internal/handlers/rest/shipments_trucks_get"
	"tracker/internal/handlers/rest/ticket_attachment_get"
	"tracker/internal/handlers/rest/ticket_attachment_post"
	"tracker/internal/handlers/rest/ticket_get"
	"tracker/internal/handlers/rest/ticket_put"
	"tracker/internal/handlers/rest/tickets_get"
	"tracker/internal/handlers/rest/users_assignable_get"
	"tracker/internal/handlers/tasks/drafts_cleanup"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/middlewares/admin"
	"tracker/internal/pkg/storage"

	dispatchRepo "tracker/internal/repository/dispatch"
	deliveryRepo "tracker/internal/repository/delivery"
	draftRepo "tracker/internal/repository/draft"
	referenceRepo "tracker/internal/repository/reference"
	shipmentRepo "tracker/internal/repository/shipment"
	ticketRepo "tracker/internal/repository/ticket"
	accessService "tracker/internal/service/access"
	deliveryService "tracker/internal/service/delivery"
	dispatchService "tracker/internal/service/dispatch"
	"tracker/internal/service/draft"
	referenceService "tracker/internal/service/reference"
	shipmentService "tracker/internal/service/shipment"
	ticketService "tracker/internal/service/ticket"

	"tracker/pkg/background"
	"tracker/pkg/logger"
	"tracker/pkg/querier"
	"tracker/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	DraftTTL        time.Duration
)

type Application struct {
	Wizards           draft.Wizards
	ServiceDispatch   ServiceDispatch
	ServiceDelivery   ServiceDelivery
	ServiceShipment   ServiceShipment
	ServiceTicket     ServiceTicket
	ServiceReference  ServiceReference
	ServiceAccess     ServiceAccess
	BackgroundWorkers *background.Worker
}

type ServiceDispatch interface {
	dispatches_get.Service
	dispatch_lookup_get.Service
	dispatch_lines_get.Service
	dispatch_line_get.Service
	dispatch_print_get.Service
	dispatches_report_get.Service
	dispatches_import_post.Service
}

type ServiceDelivery interface {
	dispatch_utilisation_get.Service
	loading_orders_get.Service
	loading_order_get.Service
	loading_order_print_get.Service
	loading_orders_report_get.Service
}

type ServiceShipment interface {
	shipment_updates_post.Service
	shipment_history_get.Service
	shipments_get.Service
	shipments_post.Service
	shipments_trucks_get.Service
	shipments_delivered_get.Service
	shipments_delivered_report_get.Service
	shipments_import_post.Service
	shipment_drivers_lookup_get.Service
}

type ServiceTicket interface {
	ticket_attachment_post.Service
	ticket_attachment_get.Service
	tickets_get.Service
	ticket_get.Service
	ticket_put.Service
	admin_performance_get.Service
}

type ServiceReference interface {
	reference_get.Service
	admin_reference_post.Service
	users_assignable_get.Service
	admin_users_get.Service
}

type ServiceAccess interface {
	admin_session_post.Service
	admin.Authorizer
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideDraftTTL,
		provideAttachmentStorage,

		provideDispatchRepository,
		provideDeliveryRepository,
		provideShipmentRepository,
		provideTicketRepository,
		provideReferenceRepository,
		provideDraftRepository,

		provideServiceDispatch,
		provideServiceDelivery,
		provideServiceShipment,
		provideServiceTicket,
		provideServiceReference,
		provideServiceAccess,
		provideWizards,
		draft.NewCleaner,

		provideDraftsCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDispatch), new(*dispatchService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Service)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceTicket), new(*ticketService.Service)),
		wire.Bind(new(ServiceReference), new(*referenceService.Service)),
		wire.Bind(new(ServiceAccess), new(*accessService.Service)),

		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(ticketService.Repository), new(*ticketRepo.Repository)),
		wire.Bind(new(referenceService.Repository), new(*referenceRepo.Repository)),
		wire.Bind(new(draft.Repository), new(*draftRepo.Repository)),

		wire.Bind(new(deliveryService.DispatchLookup), new(*dispatchService.Service)),
		wire.Bind(new(ticketService.References), new(*referenceService.Service)),
		wire.Bind(new(ticketService.AttachmentStore), new(*storage.Storage)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ticketService.TxManager), new(*tx.Manager)),
		wire.Bind(new(draft.TxManager), new(*tx.Manager)),

		wire.Bind(new(drafts_cleanup.Service), new(*draft.Cleaner)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideServiceShipment,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

type CLIApp struct {
	DispatchService *dispatchService.Service
	ShipmentService *shipmentService.Service
}

// InitializeCLIApp для импорта таблиц из trackerctl
func InitializeCLIApp(
	ctx context.Context,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*CLIApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDispatchRepository,
		provideShipmentRepository,
		provideServiceDispatch,
		provideServiceShipment,

		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(CLIApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDispatchRepository(querier *querier.Querier) *dispatchRepo.Repository {
	return dispatchRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTicketRepository(querier *querier.Querier) *ticketRepo.Repository {
	return ticketRepo.New(querier)
}

func provideReferenceRepository(querier *querier.Querier) *referenceRepo.Repository {
	return referenceRepo.New(querier)
}

func provideDraftRepository(querier *querier.Querier) *draftRepo.Repository {
	return draftRepo.New(querier)
}

func provideAttachmentStorage(cfg *config.Config) (*storage.Storage, error) {
	return storage.NewOnDisk(cfg.Storage.Root)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	txManager dispatchService.TxManager,
) *dispatchService.Service {
	return dispatchService.New(repository, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	dispatches deliveryService.DispatchLookup,
	txManager deliveryService.TxManager,
) *deliveryService.Service {
	return deliveryService.New(repository, dispatches, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	txManager shipmentService.TxManager,
) *shipmentService.Service {
	return shipmentService.New(repository, txManager)
}

func provideServiceTicket(
	repository ticketService.Repository,
	references ticketService.References,
	attachments ticketService.AttachmentStore,
	txManager ticketService.TxManager,
) *ticketService.Service {
	return ticketService.New(repository, references, attachments, txManager)
}

func provideServiceReference(repository referenceService.Repository) *referenceService.Service {
	return referenceService.New(repository)
}

func provideServiceAccess(cfg *config.Config) *accessService.Service {
	return accessService.New(cfg.Access.AdminKeyHash, cfg.Access.TokenSecret, cfg.Access.TokenTTL)
}

// provideWizards три мастера делят одну таблицу черновиков.
func provideWizards(
	dispatches *dispatchService.Service,
	deliveries *deliveryService.Service,
	tickets *ticketService.Service,
	repository draft.Repository,
	txManager draft.TxManager,
	ttl DraftTTL,
) (draft.Wizards, error) {
	dispatchWizard, err := draft.New(dispatches.Flow(), repository, txManager, time.Duration(ttl))
	if err != nil {
		return nil, err
	}
	deliveryWizard, err := draft.New(deliveries.Flow(), repository, txManager, time.Duration(ttl))
	if err != nil {
		return nil, err
	}
	ticketWizard, err := draft.New(tickets.Flow(), repository, txManager, time.Duration(ttl))
	if err != nil {
		return nil, err
	}
	return draft.NewWizards(dispatchWizard, deliveryWizard, ticketWizard), nil
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.DraftsCleanupInterval)
}

func provideDraftTTL(cfg *config.Config) DraftTTL {
	return DraftTTL(cfg.Tasks.DraftTTL)
}

func provideDraftsCleanupTask(
	log logger.Logger,
	cleaner drafts_cleanup.Service,
	interval CleanupInterval,
) *drafts_cleanup.DraftsCleanup {
	return drafts_cleanup.NewDraftsCleanup(log, cleaner, time.Duration(interval))
}

func provideTaskList(
	draftsCleanupTask *drafts_cleanup.DraftsCleanup,
) []background.Task {
	return []background.Task{
		draftsCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
