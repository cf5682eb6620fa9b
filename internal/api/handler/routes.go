package handler

import (
	"net/http"

	"github.com/vfg2006/analytics-forge-api/internal/api/handler/router"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-forge-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Upload(service dashboarding.DashboardService, authenticator authenticating.Authenticator, maxMemoryMB int64) []router.Route {
	return []router.Route{
		{
			Path:        "/api/upload",
			Method:      http.MethodPost,
			Handler:     UploadCSV(service, maxMemoryMB),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCredentials(authenticator)},
		},
	}
}

func Analytics(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/summary/:projectType",
			Method:  http.MethodGet,
			Handler: GetLatestSummary(service),
		},
		{
			Path:    "/api/analytics/id/:id",
			Method:  http.MethodGet,
			Handler: GetSummaryByID(service),
		},
		{
			Path:    "/api/analytics/id/:id/render",
			Method:  http.MethodGet,
			Handler: RenderDashboard(service),
		},
		{
			Path:    "/api/analytics/dashboards",
			Method:  http.MethodGet,
			Handler: ListDashboards(service),
		},
		{
			Path:    "/api/analytics/status/:id",
			Method:  http.MethodGet,
			Handler: GetStatus(service),
		},
	}
}

func CronJobs(services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireCredentials(authenticator)},
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
