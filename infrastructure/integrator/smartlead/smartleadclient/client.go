package smartleadclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	smartleaddomain "github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/smartlead/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
)

const provider = "smartlead"

type Client interface {
	ListCampaigns(ctx context.Context, apiKey string) ([]smartleaddomain.Campaign, error)
	GetCampaignAnalytics(ctx context.Context, apiKey, campaignID string) (*smartleaddomain.Analytics, error)
}

type SmartleadClient struct {
	httpClient integrator.HTTPDoer
	baseURL    string
}

func NewClient(cfg config.Smartlead, httpClient integrator.HTTPDoer) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &SmartleadClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
	}
}

func (c *SmartleadClient) ListCampaigns(ctx context.Context, apiKey string) ([]smartleaddomain.Campaign, error) {
	var campaigns []smartleaddomain.Campaign

	endpoint := c.baseURL + "/api/v1/campaigns?" + url.Values{"api_key": {apiKey}}.Encode()
	if err := integrator.GetJSON(ctx, c.httpClient, provider, endpoint, nil, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *SmartleadClient) GetCampaignAnalytics(ctx context.Context, apiKey, campaignID string) (*smartleaddomain.Analytics, error) {
	if campaignID == "" {
		return nil, integrator.ErrCampaignIDRequired
	}

	var analytics smartleaddomain.Analytics

	endpoint := c.baseURL + "/api/v1/campaigns/" + url.PathEscape(campaignID) + "/analytics?" + url.Values{"api_key": {apiKey}}.Encode()
	if err := integrator.GetJSON(ctx, c.httpClient, provider, endpoint, nil, &analytics); err != nil {
		return nil, err
	}

	return &analytics, nil
}
