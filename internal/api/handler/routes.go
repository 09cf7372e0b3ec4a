package handler

import (
	"net/http"

	"github.com/vfg2006/sequencer-stats-api/internal/api/handler/router"
	"github.com/vfg2006/sequencer-stats-api/internal/scheduler"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/account"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/sharing"
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

func Campaigns(runner ingesting.Runner, aggregator aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/fetch",
			Method:  http.MethodPost,
			Handler: FetchCampaigns(runner),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(aggregator),
		},
		{
			Path:    "/v1/campaigns/combined",
			Method:  http.MethodPost,
			Handler: CombinedStats(aggregator),
		},
	}
}

func Shares(sharer sharing.Sharer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shares",
			Method:  http.MethodPost,
			Handler: CreateShare(sharer),
		},
		{
			Path:    "/v1/shares/:token",
			Method:  http.MethodGet,
			Handler: GetShare(sharer),
		},
	}
}

func APIKeys(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/api-keys",
			Method:  http.MethodPost,
			Handler: RegisterAPIKey(service),
		},
	}
}

func CronJobs(syncer scheduler.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/sync/run",
			Method:  http.MethodPost,
			Handler: RunStatsSync(syncer),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(syncer),
		},
	}
}
