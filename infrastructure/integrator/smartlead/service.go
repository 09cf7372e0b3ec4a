package smartlead

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	smartleaddomain "github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/smartlead/domain"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/smartlead/smartleadclient"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

// SmartleadIntegrator lista as campanhas e busca as estatísticas de cada uma separadamente
type SmartleadIntegrator struct {
	Client smartleadclient.Client
}

func New(client smartleadclient.Client) *SmartleadIntegrator {
	return &SmartleadIntegrator{
		Client: client,
	}
}

func (s *SmartleadIntegrator) Sequencer() domain.Sequencer {
	return domain.SequencerSmartlead
}

func (s *SmartleadIntegrator) ListCampaigns(ctx context.Context, cred domain.Credential) ([]domain.CampaignRef, error) {
	campaigns, err := s.Client.ListCampaigns(ctx, cred.APIKey)
	if err != nil {
		logrus.WithError(err).Error("smartlead: failed to list campaigns")
		return nil, err
	}

	refs := make([]domain.CampaignRef, 0, len(campaigns))
	for _, c := range campaigns {
		if c.ID == "" {
			logrus.WithField("name", c.Name).Warn("smartlead: skipping campaign without id")
			continue
		}
		refs = append(refs, domain.CampaignRef{ID: c.ID.String(), Name: c.Name})
	}

	logrus.WithField("campaigns", len(refs)).Debug("smartlead: campaigns listed")

	return refs, nil
}

func (s *SmartleadIntegrator) FetchStats(ctx context.Context, cred domain.Credential, ref domain.CampaignRef) (domain.RawPayload, error) {
	analytics, err := s.Client.GetCampaignAnalytics(ctx, cred.APIKey, ref.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": ref.ID,
			"error":       err.Error(),
		}).Error("smartlead: failed to get campaign analytics")
		return nil, err
	}

	return analytics, nil
}

func (s *SmartleadIntegrator) Normalize(ref domain.CampaignRef, payload domain.RawPayload) (*domain.NormalizedCampaign, error) {
	analytics, ok := payload.(*smartleaddomain.Analytics)
	if !ok || analytics == nil {
		return nil, integrator.UnexpectedPayload(domain.SequencerSmartlead, payload)
	}

	name := analytics.Name
	if name == "" {
		name = ref.Name
	}

	return &domain.NormalizedCampaign{
		ID:               ref.ID,
		Name:             name,
		Sequencer:        domain.SequencerSmartlead,
		ProspectsEmailed: analytics.UniqueSentCount.Int(),
		Replies:          analytics.ReplyCount.Int(),
		PositiveReplies:  analytics.CampaignLeadStats.Interested.Int(),
		PipelineValue:    analytics.PipelineRevenue(),
		Counts: domain.DeliveryCounts{
			Status:       analytics.Status,
			Sent:         analytics.SentCount.Int(),
			Total:        analytics.TotalCount.Int(),
			Bounced:      analytics.BounceCount.Int(),
			Unsubscribed: analytics.UnsubscribedCount.Int(),
		},
	}, nil
}
