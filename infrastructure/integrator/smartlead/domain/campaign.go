package smartleaddomain

import "github.com/vfg2006/sequencer-stats-api/internal/domain"

// Campaign é um item da listagem de campanhas
type Campaign struct {
	ID     CampaignID `json:"id"`
	Name   string     `json:"name"`
	Status string     `json:"status"`
}

type LeadStats struct {
	Interested FlexInt   `json:"interested"`
	Revenue    FlexFloat `json:"revenue"`
}

// Analytics é a resposta de /campaigns/{id}/analytics
type Analytics struct {
	ID                CampaignID `json:"id"`
	Name              string     `json:"name"`
	Status            string     `json:"status"`
	SentCount         FlexInt    `json:"sent_count"`
	UniqueSentCount   FlexInt    `json:"unique_sent_count"`
	ReplyCount        FlexInt    `json:"reply_count"`
	TotalCount        FlexInt    `json:"total_count"`
	BounceCount       FlexInt    `json:"bounce_count"`
	UnsubscribedCount FlexInt    `json:"unsubscribed_count"`
	Revenue           FlexFloat  `json:"revenue"`
	CampaignLeadStats LeadStats  `json:"campaign_lead_stats"`
}

func (a *Analytics) Sequencer() domain.Sequencer {
	return domain.SequencerSmartlead
}

// PipelineRevenue retorna a receita quando presente e diferente de zero
func (a *Analytics) PipelineRevenue() *float64 {
	for _, r := range []FlexFloat{a.CampaignLeadStats.Revenue, a.Revenue} {
		if r.Valid && r.Value != 0 {
			v := r.Value
			return &v
		}
	}
	return nil
}
