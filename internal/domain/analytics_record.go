package domain

import "time"

// CampaignAnalyticsRecord é a linha persistida de campaign_analytics.
// A chave de conflito é (campaign_id, sequencer, user_id): cada ciclo sobrescreve o anterior.
type CampaignAnalyticsRecord struct {
	CampaignID        string    `json:"campaign_id"`
	Sequencer         Sequencer `json:"sequencer"`
	UserID            string    `json:"user_id"`
	APIKey            string    `json:"-"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	SentCount         int       `json:"sent_count"`
	UniqueSentCount   int       `json:"unique_sent_count"`
	ReplyCount        int       `json:"reply_count"`
	InterestedCount   int       `json:"interested_count"`
	TotalCount        int       `json:"total_count"`
	BounceCount       int       `json:"bounce_count"`
	UnsubscribedCount int       `json:"unsubscribed_count"`
	Revenue           *float64  `json:"revenue,omitempty"`
	DataFetchedAt     time.Time `json:"data_fetched_at"`
}

// NewCampaignAnalyticsRecord monta o registro persistido a partir da campanha normalizada
func NewCampaignAnalyticsRecord(c NormalizedCampaign, run RunContext, fetchedAt time.Time) CampaignAnalyticsRecord {
	return CampaignAnalyticsRecord{
		CampaignID:        c.ID,
		Sequencer:         c.Sequencer,
		UserID:            run.UserID,
		APIKey:            run.APIKey,
		Name:              c.Name,
		Status:            c.Counts.Status,
		SentCount:         c.Counts.Sent,
		UniqueSentCount:   c.ProspectsEmailed,
		ReplyCount:        c.Replies,
		InterestedCount:   c.PositiveReplies,
		TotalCount:        c.Counts.Total,
		BounceCount:       c.Counts.Bounced,
		UnsubscribedCount: c.Counts.Unsubscribed,
		Revenue:           c.PipelineValue,
		DataFetchedAt:     fetchedAt,
	}
}

// ToNormalizedCampaign reconstrói a campanha canônica a partir do registro persistido
func (r CampaignAnalyticsRecord) ToNormalizedCampaign() NormalizedCampaign {
	c := NormalizedCampaign{
		ID:               r.CampaignID,
		Name:             r.Name,
		Sequencer:        r.Sequencer,
		ProspectsEmailed: r.UniqueSentCount,
		Replies:          r.ReplyCount,
		PositiveReplies:  r.InterestedCount,
		PipelineValue:    r.Revenue,
		Counts: DeliveryCounts{
			Status:       r.Status,
			Sent:         r.SentCount,
			Total:        r.TotalCount,
			Bounced:      r.BounceCount,
			Unsubscribed: r.UnsubscribedCount,
		},
	}

	return c.WithRates()
}
