package instantlydomain

import "github.com/vfg2006/sequencer-stats-api/internal/domain"

// CampaignSummary é um item da resposta de /analytics/campaign/summary.
// bounced e unsubscribed podem vir null.
type CampaignSummary struct {
	CampaignID      string `json:"campaign_id"`
	CampaignName    string `json:"campaign_name"`
	TotalLeads      int    `json:"total_leads"`
	Contacted       int    `json:"contacted"`
	LeadsWhoRead    int    `json:"leads_who_read"`
	LeadsWhoReplied int    `json:"leads_who_replied"`
	Bounced         *int   `json:"bounced"`
	Unsubscribed    *int   `json:"unsubscribed"`
	Completed       int    `json:"completed"`
}

func (c *CampaignSummary) Sequencer() domain.Sequencer {
	return domain.SequencerInstantly
}

func (c *CampaignSummary) UnsubscribedOrZero() int {
	if c.Unsubscribed == nil {
		return 0
	}
	return *c.Unsubscribed
}

func (c *CampaignSummary) BouncedOrZero() int {
	if c.Bounced == nil {
		return 0
	}
	return *c.Bounced
}
