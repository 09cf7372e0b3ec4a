package instantlyclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	instantlydomain "github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/instantly/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
)

const provider = "instantly"

type Client interface {
	GetCampaignSummary(ctx context.Context, apiKey string) ([]instantlydomain.CampaignSummary, error)
}

type InstantlyClient struct {
	httpClient integrator.HTTPDoer
	baseURL    string
}

func NewClient(cfg config.Instantly, httpClient integrator.HTTPDoer) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &InstantlyClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
	}
}

func (c *InstantlyClient) GetCampaignSummary(ctx context.Context, apiKey string) ([]instantlydomain.CampaignSummary, error) {
	endpoint := c.baseURL + "/api/v1/analytics/campaign/summary?" + url.Values{"api_key": {apiKey}}.Encode()

	var summary []instantlydomain.CampaignSummary
	if err := integrator.GetJSON(ctx, c.httpClient, provider, endpoint, nil, &summary); err != nil {
		return nil, err
	}

	return summary, nil
}
