package domain

import "sort"

// Credential é a credencial informada pelo usuário para um provedor
type Credential struct {
	APIKey      string
	WorkspaceID string
}

// RawPayload é o payload bruto de estatísticas de um provedor.
// Cada integrador define o seu tipo concreto.
type RawPayload interface {
	Sequencer() Sequencer
}

// CampaignRef referencia uma campanha listada pelo provedor.
// Payload vem preenchido quando o provedor já entrega as estatísticas na listagem.
type CampaignRef struct {
	ID      string
	Name    string
	Payload RawPayload
}

// DeliveryCounts guarda contadores brutos que não fazem parte do schema canônico,
// mas são persistidos junto do registro de analytics
type DeliveryCounts struct {
	Status       string
	Sent         int
	Total        int
	Bounced      int
	Unsubscribed int
}

// NormalizedCampaign é a unidade canônica de métricas de uma campanha
type NormalizedCampaign struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Sequencer        Sequencer      `json:"sequencer"`
	ProspectsEmailed int            `json:"prospects_emailed"`
	Replies          int            `json:"replies"`
	PositiveReplies  int            `json:"positive_replies"`
	PipelineValue    *float64       `json:"pipeline_value,omitempty"`
	ReplyRate        float64        `json:"reply_rate"`
	PositiveRate     float64        `json:"positive_rate"`
	Counts           DeliveryCounts `json:"-"`
}

// PipelineValueOrZero trata o valor de pipeline ausente como zero
func (c NormalizedCampaign) PipelineValueOrZero() float64 {
	if c.PipelineValue == nil {
		return 0
	}
	return *c.PipelineValue
}

// SortByReplyRate ordena por taxa de resposta decrescente; empates pelo ID
func SortByReplyRate(campaigns []NormalizedCampaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		if campaigns[i].ReplyRate != campaigns[j].ReplyRate {
			return campaigns[i].ReplyRate > campaigns[j].ReplyRate
		}
		return campaigns[i].ID < campaigns[j].ID
	})
}
