package ingesting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

const (
	defaultFetchTimeout   = 20 * time.Second
	defaultMaxConcurrency = 5
)

// RunRequest pede uma execução completa: listar, buscar, normalizar, persistir e combinar.
// Sequencer vazio é resolvido pela api key cadastrada.
type RunRequest struct {
	UserID      string
	APIKey      string
	Sequencer   domain.Sequencer
	WorkspaceID string
}

type Runner interface {
	Run(ctx context.Context, req RunRequest) (*domain.RunResult, error)
}

type Service struct {
	registry       *integrator.Registry
	apiKeys        repository.APIKeyRepository
	persister      aggregating.BatchPersister
	fetchTimeout   time.Duration
	maxConcurrency int
}

func NewService(
	registry *integrator.Registry,
	apiKeys repository.APIKeyRepository,
	persister aggregating.BatchPersister,
	cfg config.Fetch,
) *Service {
	s := &Service{
		registry:       registry,
		apiKeys:        apiKeys,
		persister:      persister,
		fetchTimeout:   cfg.Timeout,
		maxConcurrency: cfg.MaxConcurrency,
	}

	if s.fetchTimeout <= 0 {
		s.fetchTimeout = defaultFetchTimeout
	}
	if s.maxConcurrency <= 0 {
		s.maxConcurrency = defaultMaxConcurrency
	}

	return s
}

type fetchOutcome struct {
	campaign *domain.NormalizedCampaign
	dropped  *domain.DroppedCampaign
}

func (s *Service) Run(ctx context.Context, req RunRequest) (*domain.RunResult, error) {
	ctx, _ = log.EnsureCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("user_id", req.UserID)

	logger.WithField("phase", domain.RunPhaseAwaitingCredential).Debug("run: aguardando credencial")

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		return nil, newInputError(ErrMissingAPIKey, apiErrors.ErrMissingRequiredData)
	}
	if req.UserID == "" {
		return nil, newInputError(ErrMissingUserID, apiErrors.ErrMissingRequiredData)
	}

	cred := domain.Credential{APIKey: apiKey, WorkspaceID: strings.TrimSpace(req.WorkspaceID)}

	sequencer, err := s.resolveSequencer(ctx, req.Sequencer, &cred)
	if err != nil {
		return nil, err
	}

	adapter, ok := s.registry.Get(sequencer)
	if !ok {
		return nil, newInputError(ErrUnknownSequencer, apiErrors.ErrInvalidRequest)
	}

	if sequencer.RequiresWorkspace() && cred.WorkspaceID == "" {
		return nil, newInputError(ErrMissingWorkspaceID, apiErrors.ErrMissingRequiredData)
	}

	logger = logger.WithField("sequencer", sequencer)
	logger.WithField("phase", domain.RunPhaseFetching).Info("run: buscando campanhas")

	refs, err := adapter.ListCampaigns(ctx, cred)
	if err != nil {
		logger.WithError(err).Error("run: falha ao listar campanhas")
		return nil, newUpstreamError(ErrListCampaigns, err)
	}

	outcomes := s.fetchAll(ctx, adapter, cred, refs)

	campaigns := make([]domain.NormalizedCampaign, 0, len(outcomes))
	dropped := make([]domain.DroppedCampaign, 0)
	for _, o := range outcomes {
		if o.dropped != nil {
			dropped = append(dropped, *o.dropped)
			continue
		}
		campaigns = append(campaigns, *o.campaign)
	}

	domain.SortByReplyRate(campaigns)

	if _, err := s.persister.PersistBatch(ctx, campaigns, domain.RunContext{UserID: req.UserID, APIKey: apiKey}); err != nil {
		return nil, newPersistenceError(ErrPersistBatch, err)
	}

	result := &domain.RunResult{
		Sequencer: sequencer,
		Campaigns: campaigns,
		Combined:  domain.Combine(campaigns),
		Dropped:   dropped,
	}

	logger.WithFields(log.Fields{
		"phase":     domain.RunPhaseCompleted,
		"campaigns": len(campaigns),
		"dropped":   len(dropped),
	}).Info("run: concluído")

	return result, nil
}

// resolveSequencer usa o sequencer informado ou o da api key cadastrada.
// O workspace cadastrado só é usado quando a requisição não trouxe um.
func (s *Service) resolveSequencer(ctx context.Context, requested domain.Sequencer, cred *domain.Credential) (domain.Sequencer, error) {
	if requested != "" {
		return requested, nil
	}

	key, err := s.apiKeys.GetByAPIKey(ctx, cred.APIKey)
	if err != nil {
		return "", newPersistenceError(ErrResolveAPIKey, err)
	}
	if key == nil {
		return "", newInputError(ErrAPIKeyNotFound, apiErrors.ErrInvalidRequest)
	}

	if cred.WorkspaceID == "" && key.WorkspaceID != nil {
		cred.WorkspaceID = *key.WorkspaceID
	}

	return key.Sequencer, nil
}

// fetchAll busca e normaliza cada campanha com concorrência limitada.
// Cada resultado ocupa a posição da campanha na listagem.
func (s *Service) fetchAll(ctx context.Context, adapter integrator.ProviderAdapter, cred domain.Credential, refs []domain.CampaignRef) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(refs))
	semaphore := make(chan struct{}, s.maxConcurrency)

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, ref domain.CampaignRef) {
			defer wg.Done()
			defer func() { <-semaphore }()

			outcomes[i] = s.fetchOne(ctx, adapter, cred, ref)
		}(i, ref)
	}

	wg.Wait()

	return outcomes
}

func (s *Service) fetchOne(ctx context.Context, adapter integrator.ProviderAdapter, cred domain.Credential, ref domain.CampaignRef) fetchOutcome {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"sequencer":   adapter.Sequencer(),
		"campaign_id": ref.ID,
	})

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	payload, err := adapter.FetchStats(fetchCtx, cred, ref)
	if err != nil {
		logger.WithError(err).Warn("run: campanha descartada, falha ao buscar estatísticas")
		return dropOutcome(ref.ID, domain.DropReasonFetch, err)
	}

	normalized, err := adapter.Normalize(ref, payload)
	if err != nil {
		logger.WithError(err).Warn("run: campanha descartada, falha ao normalizar")
		return dropOutcome(ref.ID, domain.DropReasonNormalize, err)
	}

	campaign := normalized.WithRates()
	if !domain.IsValidCampaign(campaign) {
		logger.Debug("run: campanha descartada, sem envios ou contadores inválidos")
		return dropOutcome(ref.ID, domain.DropReasonInvalid, nil)
	}

	return fetchOutcome{campaign: &campaign}
}

func dropOutcome(id, reason string, err error) fetchOutcome {
	dropped := &domain.DroppedCampaign{ID: id, Reason: reason}
	if err != nil {
		dropped.Error = err.Error()
	}
	return fetchOutcome{dropped: dropped}
}
