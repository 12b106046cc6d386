package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "tracker/internal/app"
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
	"tracker/internal/handlers/rest/healthcheck_head"
	"tracker/internal/handlers/rest/loading_order_get"
	"tracker/internal/handlers/rest/loading_order_print_get"
	"tracker/internal/handlers/rest/loading_orders_get"
	"tracker/internal/handlers/rest/loading_orders_report_get"
	"tracker/internal/handlers/rest/ping_get"
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
	"tracker/internal/handlers/rest/wizard_action_post"
	"tracker/internal/handlers/rest/wizard_draft_get"
	"tracker/internal/handlers/rest/wizard_draft_patch"
	"tracker/internal/handlers/rest/wizard_draft_post"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/middlewares/actor"
	"tracker/internal/pkg/middlewares/admin"
	"tracker/internal/pkg/middlewares/graceful_shutdown"
	"tracker/internal/pkg/middlewares/metrics"
	"tracker/internal/pkg/middlewares/rate_limiter"
	"tracker/internal/pkg/middlewares/timeout"
	"tracker/pkg/debounce"
	"tracker/pkg/logger"
	"tracker/pkg/token_bucket"
)

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout, cfg.LongRequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, pool)).Methods("GET")

	limiter := token_bucket.NewRegistry(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), 10*time.Minute)
	lookups := debounce.New(cfg.LookupDebounce)

	api := router.NewRoute().Subrouter()
	api.Use(actor.Middleware())
	api.Use(rate_limiter.Middleware(log, limiter))

	api.Handle("/wizards/{kind}/drafts", wizard_draft_post.New(log, app.Wizards)).Methods("POST")
	api.Handle("/wizards/{kind}/drafts/{id}", wizard_draft_get.New(log, app.Wizards)).Methods("GET")
	api.Handle("/wizards/{kind}/drafts/{id}", wizard_draft_patch.New(log, app.Wizards)).Methods("PATCH")
	api.Handle("/wizards/{kind}/drafts/{id}/actions", wizard_action_post.New(log, app.Wizards)).Methods("POST")

	api.Handle("/dispatches", dispatches_get.New(log, app.ServiceDispatch)).Methods("GET")
	api.Handle("/dispatches/lookup", dispatch_lookup_get.New(log, app.ServiceDispatch, lookups)).Methods("GET")
	api.Handle("/dispatches/import", dispatches_import_post.New(log, app.ServiceDispatch)).Methods("POST")
	api.Handle("/dispatches/report.pdf", dispatches_report_get.New(log, app.ServiceDispatch)).Methods("GET")
	api.Handle("/dispatches/{number}/lines", dispatch_lines_get.New(log, app.ServiceDispatch)).Methods("GET")
	api.Handle("/dispatches/{number}/lines/{line}", dispatch_line_get.New(log, app.ServiceDispatch)).Methods("GET")
	api.Handle("/dispatches/{number}/print.pdf", dispatch_print_get.New(log, app.ServiceDispatch)).Methods("GET")
	api.Handle("/dispatches/{number}/utilisation", dispatch_utilisation_get.New(log, app.ServiceDelivery)).Methods("GET")

	// report.pdf регистрируется раньше {number}
	api.Handle("/loading-orders", loading_orders_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/loading-orders/report.pdf", loading_orders_report_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/loading-orders/{number}", loading_order_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/loading-orders/{number}/print.pdf", loading_order_print_get.New(log, app.ServiceDelivery)).Methods("GET")

	api.Handle("/shipments", shipments_get.New(log, app.ServiceShipment)).Methods("GET")
	api.Handle("/shipments", shipments_post.New(log, app.ServiceShipment)).Methods("POST")
	api.Handle("/shipments/trucks", shipments_trucks_get.New(log, app.ServiceShipment)).Methods("GET")
	api.Handle("/shipments/delivered", shipments_delivered_get.New(log, app.ServiceShipment)).Methods("GET")
	api.Handle("/shipments/delivered/report.pdf", shipments_delivered_report_get.New(log, app.ServiceShipment)).Methods("GET")
	api.Handle("/shipments/import", shipments_import_post.New(log, app.ServiceShipment)).Methods("POST")
	api.Handle("/shipments/drivers/lookup", shipment_drivers_lookup_get.New(log, app.ServiceShipment, lookups)).Methods("GET")
	api.Handle("/shipments/{serial}/updates", shipment_updates_post.New(log, app.ServiceShipment)).Methods("POST")
	api.Handle("/shipments/{serial}/history", shipment_history_get.New(log, app.ServiceShipment)).Methods("GET")

	api.Handle("/tickets", tickets_get.New(log, app.ServiceTicket)).Methods("GET")
	api.Handle("/tickets/attachments", ticket_attachment_post.New(log, app.ServiceTicket)).Methods("POST")
	api.Handle("/tickets/{number}", ticket_get.New(log, app.ServiceTicket)).Methods("GET")
	api.Handle("/tickets/{number}", ticket_put.New(log, app.ServiceTicket)).Methods("PUT")
	api.Handle("/tickets/{number}/attachment", ticket_attachment_get.New(log, app.ServiceTicket)).Methods("GET")

	api.Handle("/reference/{kind}", reference_get.New(log, app.ServiceReference)).Methods("GET")
	api.Handle("/users/assignable", users_assignable_get.New(log, app.ServiceReference)).Methods("GET")

	// сессия выдаётся до проверки токена
	api.Handle("/admin/session", admin_session_post.New(log, app.ServiceAccess)).Methods("POST")

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(admin.Middleware(log, app.ServiceAccess))
	adminRouter.Handle("/reference/{kind}", admin_reference_post.New(log, app.ServiceReference)).Methods("POST")
	adminRouter.Handle("/users", admin_users_get.New(log, app.ServiceReference)).Methods("GET")
	adminRouter.Handle("/performance", admin_performance_get.New(log, app.ServiceTicket)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
