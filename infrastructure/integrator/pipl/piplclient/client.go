package piplclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	pipldomain "github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/pipl/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
)

const provider = "pipl"

type StatsParams struct {
	APIKey      string
	WorkspaceID string
	StartDate   string
	EndDate     string
}

type Client interface {
	GetCampaignStats(ctx context.Context, params StatsParams) ([]pipldomain.CampaignStats, error)
}

type PiplClient struct {
	httpClient integrator.HTTPDoer
	baseURL    string
}

func NewClient(cfg config.Pipl, httpClient integrator.HTTPDoer) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &PiplClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
	}
}

func (c *PiplClient) GetCampaignStats(ctx context.Context, params StatsParams) ([]pipldomain.CampaignStats, error) {
	query := url.Values{}
	query.Set("api_key", params.APIKey)
	query.Set("workspace_id", params.WorkspaceID)
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)

	endpoint := c.baseURL + "/api/v1/analytics/campaign/stats?" + query.Encode()
	headers := map[string]string{"Authorization": "Bearer " + params.APIKey}

	var stats []pipldomain.CampaignStats
	if err := integrator.GetJSON(ctx, c.httpClient, provider, endpoint, headers, &stats); err != nil {
		return nil, err
	}

	return stats, nil
}
