package domain

import "time"

// SharedCampaign é um snapshot de um subconjunto de campanhas compartilhado por token
type SharedCampaign struct {
	ID                string               `json:"id"`
	Token             string               `json:"token"`
	UserID            string               `json:"user_id"`
	Sequencer         Sequencer            `json:"sequencer"`
	ShowPipelineValue bool                 `json:"show_pipeline_value"`
	Campaigns         []NormalizedCampaign `json:"campaigns"`
	CreatedAt         time.Time            `json:"created_at"`
}

type SharedCampaignView struct {
	Token             string               `json:"token"`
	Sequencer         Sequencer            `json:"sequencer"`
	ShowPipelineValue bool                 `json:"show_pipeline_value"`
	Campaigns         []NormalizedCampaign `json:"campaigns"`
	Combined          CombinedStats        `json:"combined"`
	CreatedAt         time.Time            `json:"created_at"`
}
