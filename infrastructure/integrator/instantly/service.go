package instantly

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	instantlydomain "github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/instantly/domain"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/instantly/instantlyclient"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

var ErrMissingPayload = errors.New("instantly: campaign reference without summary payload")

// InstantlyIntegrator usa o resumo de campanhas, que já traz as estatísticas de todas elas
type InstantlyIntegrator struct {
	Client instantlyclient.Client
}

func New(client instantlyclient.Client) *InstantlyIntegrator {
	return &InstantlyIntegrator{
		Client: client,
	}
}

func (s *InstantlyIntegrator) Sequencer() domain.Sequencer {
	return domain.SequencerInstantly
}

func (s *InstantlyIntegrator) ListCampaigns(ctx context.Context, cred domain.Credential) ([]domain.CampaignRef, error) {
	summary, err := s.Client.GetCampaignSummary(ctx, cred.APIKey)
	if err != nil {
		logrus.WithError(err).Error("instantly: failed to get campaign summary")
		return nil, err
	}

	refs := make([]domain.CampaignRef, 0, len(summary))
	for i := range summary {
		c := summary[i]
		if c.CampaignID == "" {
			logrus.WithField("name", c.CampaignName).Warn("instantly: skipping campaign without id")
			continue
		}
		refs = append(refs, domain.CampaignRef{ID: c.CampaignID, Name: c.CampaignName, Payload: &c})
	}

	return refs, nil
}

func (s *InstantlyIntegrator) FetchStats(_ context.Context, _ domain.Credential, ref domain.CampaignRef) (domain.RawPayload, error) {
	if ref.Payload == nil {
		return nil, ErrMissingPayload
	}

	if ref.Payload.Sequencer() != domain.SequencerInstantly {
		return nil, integrator.UnexpectedPayload(domain.SequencerInstantly, ref.Payload)
	}

	return ref.Payload, nil
}

// Normalize: respostas positivas são as respostas menos os descadastros, nunca abaixo de zero.
// O provedor não informa valor de pipeline.
func (s *InstantlyIntegrator) Normalize(ref domain.CampaignRef, payload domain.RawPayload) (*domain.NormalizedCampaign, error) {
	summary, ok := payload.(*instantlydomain.CampaignSummary)
	if !ok || summary == nil {
		return nil, integrator.UnexpectedPayload(domain.SequencerInstantly, payload)
	}

	name := summary.CampaignName
	if name == "" {
		name = ref.Name
	}

	unsubscribed := summary.UnsubscribedOrZero()

	return &domain.NormalizedCampaign{
		ID:               ref.ID,
		Name:             name,
		Sequencer:        domain.SequencerInstantly,
		ProspectsEmailed: summary.Contacted,
		Replies:          summary.LeadsWhoReplied,
		PositiveReplies:  max(0, summary.LeadsWhoReplied-unsubscribed),
		Counts: domain.DeliveryCounts{
			Sent:         summary.Contacted,
			Total:        summary.TotalLeads,
			Bounced:      summary.BouncedOrZero(),
			Unsubscribed: unsubscribed,
		},
	}, nil
}
