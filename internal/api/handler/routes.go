package handler

import (
	"net/http"

	"github.com/kipmadden/car-sales-dashboard-api/internal/api/handler/router"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/authenticating"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
	}
}

func Sessions(service session.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/sessions/me",
			Method:  http.MethodDelete,
			Handler: DeleteMe(service),
		},
	}
}

func Filters(service session.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Scenario(service session.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scenario/filters",
			Method:  http.MethodPut,
			Handler: UpdateScenarioFilters(service),
		},
		{
			Path:    "/v1/scenario/modifiers",
			Method:  http.MethodPut,
			Handler: UpdateScenarioModifiers(service),
		},
		{
			Path:    "/v1/scenario/model",
			Method:  http.MethodPut,
			Handler: UpdateScenarioModel(service),
		},
		{
			Path:    "/v1/scenario/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
	}
}

func Charts(service session.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/sales-trend",
			Method:  http.MethodGet,
			Handler: GetSalesTrendChart(service),
		},
		{
			Path:    "/v1/charts/vehicle-types",
			Method:  http.MethodGet,
			Handler: GetVehicleTypeChart(service),
		},
		{
			Path:    "/v1/charts/regions",
			Method:  http.MethodGet,
			Handler: GetRegionChart(service),
		},
		{
			Path:    "/v1/charts/exogenous",
			Method:  http.MethodGet,
			Handler: GetExogenousChart(service),
		},
		{
			Path:    "/v1/charts/top-models",
			Method:  http.MethodGet,
			Handler: GetTopModelsChart(service),
		},
		{
			Path:    "/v1/charts/state-map",
			Method:  http.MethodGet,
			Handler: GetStateMapChart(service),
		},
		{
			Path:    "/v1/charts/heatmap",
			Method:  http.MethodGet,
			Handler: GetHeatmapChart(service),
		},
	}
}

func Tables(service session.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tables/forecast",
			Method:  http.MethodGet,
			Handler: GetForecastTable(service),
		},
		{
			Path:    "/v1/tables/summary",
			Method:  http.MethodGet,
			Handler: GetSummaryTable(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
	}
}
