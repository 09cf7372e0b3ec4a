package account

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
)

type RegisterRequest struct {
	UserID      string
	APIKey      string
	Sequencer   string
	WorkspaceID string
}

type AccountService interface {
	RegisterAPIKey(ctx context.Context, req RegisterRequest) (*domain.APIKey, error)
}

type Service struct {
	apiKeyRepository repository.APIKeyRepository
	registry         *integrator.Registry
}

func NewService(apiKeyRepository repository.APIKeyRepository, registry *integrator.Registry) AccountService {
	return &Service{
		apiKeyRepository: apiKeyRepository,
		registry:         registry,
	}
}

// RegisterAPIKey valida a credencial contra o provedor antes de gravá-la.
// Uma nova chave para o mesmo usuário e sequencer substitui a anterior.
func (s *Service) RegisterAPIKey(ctx context.Context, req RegisterRequest) (*domain.APIKey, error) {
	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		return nil, NewAccountError(ErrAPIKeyRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if req.UserID == "" {
		return nil, NewAccountError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	sequencer, err := domain.ParseSequencer(req.Sequencer)
	if err != nil {
		return nil, NewAccountError(ErrInvalidSequencer, apiErrors.ErrInvalidRequest, req.Sequencer)
	}

	adapter, ok := s.registry.Get(sequencer)
	if !ok {
		return nil, NewAccountError(ErrInvalidSequencer, apiErrors.ErrInvalidRequest, sequencer.String())
	}

	cred := domain.Credential{APIKey: apiKey, WorkspaceID: strings.TrimSpace(req.WorkspaceID)}
	if sequencer.RequiresWorkspace() && cred.WorkspaceID == "" {
		return nil, NewAccountError(ErrWorkspaceIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if _, err := adapter.ListCampaigns(ctx, cred); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":   req.UserID,
			"sequencer": sequencer,
		}).WithError(err).Warn("api key recusada pelo provedor")
		return nil, NewAccountError(ErrTokenValidationFailed, apiErrors.ErrInvalidRequest, err.Error())
	}

	key := &domain.APIKey{
		UserID:    req.UserID,
		Sequencer: sequencer,
		APIKey:    apiKey,
	}
	if cred.WorkspaceID != "" {
		key.WorkspaceID = &cred.WorkspaceID
	}

	if err := s.apiKeyRepository.SaveOrUpdate(ctx, key); err != nil {
		return nil, NewAccountError(ErrSaveAPIKey, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    req.UserID,
		"sequencer":  sequencer,
		"api_key_id": key.ID,
	}).Info("api key cadastrada")

	return key, nil
}
