package handler

import (
	"net/http"

	"github.com/freshkart/sales-etl/internal/api/handler/router"
	"github.com/freshkart/sales-etl/internal/scheduler"
	"github.com/freshkart/sales-etl/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Summaries(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summaries/:date",
			Method:  http.MethodGet,
			Handler: GetDailySummary(service),
		},
		{
			Path:    "/v1/summaries/:date/orders",
			Method:  http.MethodGet,
			Handler: GetCleanOrders(service),
		},
	}
}

func Runs(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/runs/:date",
			Method:  http.MethodGet,
			Handler: GetRuns(service),
		},
	}
}

func CronJobs(syncService *scheduler.DailyConsolidationSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/consolidation/run",
			Method:  http.MethodPost,
			Handler: RunConsolidationJob(syncService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(syncService),
		},
	}
}
