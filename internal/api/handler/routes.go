package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/budget-review-api/internal/api/handler/router"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing"
	"github.com/vfg2006/budget-review-api/pkg/middleware"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Reviews(service reviewing.ReviewService, logsDefaultLimit int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reviews",
			Method:      http.MethodPost,
			Handler:     RunReview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Reviewers()},
		},
		{
			Path:    "/v1/reviews",
			Method:  http.MethodOptions,
			Handler: ReviewPreflight(),
		},
		{
			Path:        "/v1/reviews/accounts",
			Method:      http.MethodGet,
			Handler:     AccountViews(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyRole()},
		},
		{
			Path:        "/v1/reviews/progress",
			Method:      http.MethodGet,
			Handler:     LatestProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyRole()},
		},
		{
			Path:        "/v1/reviews/logs",
			Method:      http.MethodGet,
			Handler:     BatchLogs(service, logsDefaultLimit),
			Middlewares: []func(http.Handler) http.Handler{middleware.Reviewers()},
		},
		{
			Path:        "/v1/reviews/:clientId/ignore-warning",
			Method:      http.MethodPost,
			Handler:     IgnoreWarning(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyRole()},
		},
	}
}

// CronJobs é registrada sob /v1/cron
func CronJobs(runner CronRunner) []router.Route {
	return []router.Route{
		{
			Path:    "/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(runner),
		},
		{
			Path:        "/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
