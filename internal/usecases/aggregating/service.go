package aggregating

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

// BatchPersister grava um lote de campanhas normalizadas
type BatchPersister interface {
	PersistBatch(ctx context.Context, campaigns []domain.NormalizedCampaign, run domain.RunContext) ([]domain.NormalizedCampaign, error)
}

type Aggregator interface {
	BatchPersister
	CombineStored(ctx context.Context, userID string, campaignIDs []string) (*domain.CombinedStats, error)
	ListStored(ctx context.Context, userID string, sequencer *domain.Sequencer) ([]domain.NormalizedCampaign, error)
}

type Engine struct {
	repo repository.CampaignAnalyticsRepository
	now  func() time.Time
}

func NewEngine(repo repository.CampaignAnalyticsRepository) *Engine {
	return &Engine{
		repo: repo,
		now:  time.Now,
	}
}

// PersistBatch faz o upsert de cada campanha em ordem dentro de uma transação.
// Uma falha desfaz o lote e retorna *PersistError. Depois do commit a tabela agregada
// é recalculada uma vez; falhas nesse passo só são logadas.
func (e *Engine) PersistBatch(ctx context.Context, campaigns []domain.NormalizedCampaign, run domain.RunContext) ([]domain.NormalizedCampaign, error) {
	if len(campaigns) == 0 {
		return campaigns, nil
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":   run.UserID,
		"campaigns": len(campaigns),
	})

	fetchedAt := e.now().UTC()

	err := e.repo.WithTransaction(ctx, func(w repository.AnalyticsWriter) error {
		for i, c := range campaigns {
			record := domain.NewCampaignAnalyticsRecord(c, run, fetchedAt)
			if err := w.Upsert(ctx, record); err != nil {
				return &PersistError{Index: i, CampaignID: c.ID, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		var persistErr *PersistError
		if !errors.As(err, &persistErr) {
			persistErr = &PersistError{Index: -1, Err: err}
		}
		logger.WithError(err).Error("falha ao persistir lote de campanhas")
		return nil, persistErr
	}

	if err := e.repo.RefreshCombinedStats(ctx); err != nil {
		logger.WithError(err).Warn("falha ao atualizar estatísticas combinadas")
	}

	logger.Info("lote de campanhas persistido")

	return campaigns, nil
}

// CombineStored soma as campanhas persistidas selecionadas pelo usuário
func (e *Engine) CombineStored(ctx context.Context, userID string, campaignIDs []string) (*domain.CombinedStats, error) {
	if len(campaignIDs) == 0 {
		return nil, ErrNoCampaignsSelected
	}

	records, err := e.repo.ListByCampaignIDs(ctx, userID, campaignIDs)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.NormalizedCampaign, 0, len(records))
	for _, r := range records {
		campaigns = append(campaigns, r.ToNormalizedCampaign())
	}

	stats := domain.Combine(campaigns)
	return &stats, nil
}

// ListStored retorna as campanhas persistidas do usuário já com as taxas, ordenadas por taxa de resposta
func (e *Engine) ListStored(ctx context.Context, userID string, sequencer *domain.Sequencer) ([]domain.NormalizedCampaign, error) {
	records, err := e.repo.ListByUser(ctx, userID, sequencer)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.NormalizedCampaign, 0, len(records))
	for _, r := range records {
		c := r.ToNormalizedCampaign()
		if !domain.IsValidCampaign(c) {
			continue
		}
		campaigns = append(campaigns, c)
	}

	domain.SortByReplyRate(campaigns)

	return campaigns, nil
}
