package sharing

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
	"github.com/vfg2006/sequencer-stats-api/pkg/utils"
)

const (
	tokenSize        = 12
	maxTokenAttempts = 3
)

var (
	ErrNoCampaigns    = errors.New("at least one campaign is required")
	ErrShareNotFound  = errors.New("share not found")
	ErrGenerateToken  = errors.New("error generating share token")
	ErrInvalidPayload = errors.New("invalid campaign in share")
)

type CreateRequest struct {
	UserID            string
	Sequencer         domain.Sequencer
	ShowPipelineValue bool
	Campaigns         []domain.NormalizedCampaign
}

type Sharer interface {
	Create(ctx context.Context, req CreateRequest) (*domain.SharedCampaign, error)
	Get(ctx context.Context, token string) (*domain.SharedCampaignView, error)
}

type Service struct {
	repo     repository.SharedCampaignRepository
	newToken func() (string, error)
}

func NewService(repo repository.SharedCampaignRepository) *Service {
	return &Service{
		repo:     repo,
		newToken: func() (string, error) { return utils.GenerateID(tokenSize) },
	}
}

// Create grava um snapshot das campanhas selecionadas. As taxas são recalculadas
// a partir dos contadores e campanhas inválidas são recusadas.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.SharedCampaign, error) {
	if len(req.Campaigns) == 0 {
		return nil, ErrNoCampaigns
	}

	campaigns := make([]domain.NormalizedCampaign, 0, len(req.Campaigns))
	for _, c := range req.Campaigns {
		rated := c.WithRates()
		if !domain.IsValidCampaign(rated) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, c.ID)
		}
		campaigns = append(campaigns, rated)
	}

	share := &domain.SharedCampaign{
		UserID:            req.UserID,
		Sequencer:         req.Sequencer,
		ShowPipelineValue: req.ShowPipelineValue,
		Campaigns:         campaigns,
	}

	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerateToken, err)
		}
		share.Token = token

		err = s.repo.Create(ctx, share)
		if err == nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"user_id":   req.UserID,
				"campaigns": len(campaigns),
			}).Info("compartilhamento criado")
			return share, nil
		}

		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, err
		}

		log.ForContext(ctx).WithField("attempt", attempt).Warn("token de compartilhamento duplicado, gerando outro")
	}

	return nil, ErrGenerateToken
}

// Get monta a visualização pública; o valor de pipeline só aparece quando o dono permitiu
func (s *Service) Get(ctx context.Context, token string) (*domain.SharedCampaignView, error) {
	share, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}

	campaigns := make([]domain.NormalizedCampaign, 0, len(share.Campaigns))
	for _, c := range share.Campaigns {
		if !share.ShowPipelineValue {
			c.PipelineValue = nil
		}
		campaigns = append(campaigns, c)
	}

	domain.SortByReplyRate(campaigns)

	return &domain.SharedCampaignView{
		Token:             share.Token,
		Sequencer:         share.Sequencer,
		ShowPipelineValue: share.ShowPipelineValue,
		Campaigns:         campaigns,
		Combined:          domain.Combine(campaigns),
		CreatedAt:         share.CreatedAt,
	}, nil
}
