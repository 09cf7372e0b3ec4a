package pipl

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	pipldomain "github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/pipl/domain"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator/pipl/piplclient"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/pkg/utils"
)

const DefaultLookbackDays = 90

var (
	ErrWorkspaceIDRequired = errors.New("pipl: workspace ID is required")
	ErrMissingPayload      = errors.New("pipl: campaign reference without stats payload")
)

// PiplIntegrator busca todas as estatísticas em uma única chamada; a listagem já carrega o payload
type PiplIntegrator struct {
	Client       piplclient.Client
	lookbackDays int
	now          func() time.Time
}

func New(client piplclient.Client, lookbackDays int) *PiplIntegrator {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	return &PiplIntegrator{
		Client:       client,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

func (s *PiplIntegrator) Sequencer() domain.Sequencer {
	return domain.SequencerPipl
}

func (s *PiplIntegrator) ListCampaigns(ctx context.Context, cred domain.Credential) ([]domain.CampaignRef, error) {
	if cred.WorkspaceID == "" {
		return nil, ErrWorkspaceIDRequired
	}

	startDate, endDate := utils.DateWindow(s.now(), s.lookbackDays)

	stats, err := s.Client.GetCampaignStats(ctx, piplclient.StatsParams{
		APIKey:      cred.APIKey,
		WorkspaceID: cred.WorkspaceID,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": cred.WorkspaceID,
			"start_date":   startDate,
			"end_date":     endDate,
			"error":        err.Error(),
		}).Error("pipl: failed to get campaign stats")
		return nil, err
	}

	refs := make([]domain.CampaignRef, 0, len(stats))
	for i := range stats {
		c := stats[i]
		if c.ID == "" {
			logrus.WithField("name", c.CampName).Warn("pipl: skipping campaign without id")
			continue
		}
		refs = append(refs, domain.CampaignRef{ID: c.ID, Name: c.CampName, Payload: &c})
	}

	return refs, nil
}

// FetchStats não faz I/O: o payload veio na listagem
func (s *PiplIntegrator) FetchStats(_ context.Context, _ domain.Credential, ref domain.CampaignRef) (domain.RawPayload, error) {
	if ref.Payload == nil {
		return nil, ErrMissingPayload
	}

	if ref.Payload.Sequencer() != domain.SequencerPipl {
		return nil, integrator.UnexpectedPayload(domain.SequencerPipl, ref.Payload)
	}

	return ref.Payload, nil
}

func (s *PiplIntegrator) Normalize(ref domain.CampaignRef, payload domain.RawPayload) (*domain.NormalizedCampaign, error) {
	stats, ok := payload.(*pipldomain.CampaignStats)
	if !ok || stats == nil {
		return nil, integrator.UnexpectedPayload(domain.SequencerPipl, payload)
	}

	name := stats.CampName
	if name == "" {
		name = ref.Name
	}

	return &domain.NormalizedCampaign{
		ID:               ref.ID,
		Name:             name,
		Sequencer:        domain.SequencerPipl,
		ProspectsEmailed: stats.LeadContactedCount,
		Replies:          stats.RepliedCount,
		PositiveReplies:  stats.PositiveReplyCount,
		PipelineValue:    PipelineValue(stats),
		Counts: domain.DeliveryCounts{
			Status:  stats.Status,
			Sent:    stats.SentCount,
			Total:   stats.LeadCount,
			Bounced: stats.BouncedCount,
		},
	}, nil
}

// PipelineValue usa opportunity_val quando positivo; senão estima por
// positive_reply_count * opportunity_val_per_count. Sem nenhum dos dois o valor fica ausente.
func PipelineValue(stats *pipldomain.CampaignStats) *float64 {
	if stats.OpportunityVal > 0 {
		v := stats.OpportunityVal
		return &v
	}

	if stats.PositiveReplyCount > 0 && stats.OpportunityValPerCount > 0 {
		v := utils.RoundWithTwoDecimalPlace(float64(stats.PositiveReplyCount) * stats.OpportunityValPerCount)
		return &v
	}

	return nil
}
