package pipldomain

import "github.com/vfg2006/sequencer-stats-api/internal/domain"

// CampaignStats é um item da resposta de /analytics/campaign/stats
type CampaignStats struct {
	ID                     string  `json:"_id"`
	CampName               string  `json:"camp_name"`
	Status                 string  `json:"status"`
	LeadCount              int     `json:"lead_count"`
	CompletedLeadCount     int     `json:"completed_lead_count"`
	LeadContactedCount     int     `json:"lead_contacted_count"`
	SentCount              int     `json:"sent_count"`
	RepliedCount           int     `json:"replied_count"`
	BouncedCount           int     `json:"bounced_count"`
	PositiveReplyCount     int     `json:"positive_reply_count"`
	OpportunityVal         float64 `json:"opportunity_val"`
	OpportunityValPerCount float64 `json:"opportunity_val_per_count"`
	CreatedAt              string  `json:"created_at"`
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
}

func (c *CampaignStats) Sequencer() domain.Sequencer {
	return domain.SequencerPipl
}
