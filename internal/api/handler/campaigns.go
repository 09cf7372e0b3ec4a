package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

type fetchCampaignsRequest struct {
	APIKey      string `json:"api_key"`
	Sequencer   string `json:"sequencer"`
	WorkspaceID string `json:"workspace_id"`
}

type combinedStatsRequest struct {
	CampaignIDs []string `json:"campaign_ids"`
}

type campaignsResponse struct {
	Campaigns []domain.NormalizedCampaign `json:"campaigns"`
	Combined  domain.CombinedStats        `json:"combined"`
}

// FetchCampaigns busca as campanhas no provedor, persiste e devolve as métricas normalizadas
func FetchCampaigns(runner ingesting.Runner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req fetchCampaignsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		var sequencer domain.Sequencer
		if req.Sequencer != "" {
			parsed, err := domain.ParseSequencer(req.Sequencer)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Sequencer inválido", map[string]any{"sequencer": req.Sequencer})
				return
			}
			sequencer = parsed
		}

		result, err := runner.Run(r.Context(), ingesting.RunRequest{
			UserID:      userID,
			APIKey:      req.APIKey,
			Sequencer:   sequencer,
			WorkspaceID: req.WorkspaceID,
		})
		if err != nil {
			writeRunError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func writeRunError(w http.ResponseWriter, r *http.Request, err error) {
	var runErr *ingesting.RunError
	if !errors.As(err, &runErr) {
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao buscar campanhas")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar campanhas", nil)
		return
	}

	details := map[string]any{"kind": runErr.Kind}
	if runErr.Kind == ingesting.KindUpstream {
		details["provider_status"] = runErr.HTTPStatus
	}

	if runErr.Kind == ingesting.KindInput {
		log.ForContext(r.Context()).WithError(err).Warn("Requisição de busca recusada")
	} else {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar campanhas")
	}

	apiErrors.WriteError(w, runErr.Code, runErr.Err.Error(), details)
}

// ListCampaigns retorna as campanhas persistidas do usuário, opcionalmente filtradas por sequencer
func ListCampaigns(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var sequencer *domain.Sequencer
		if raw := r.URL.Query().Get("sequencer"); raw != "" {
			parsed, err := domain.ParseSequencer(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Sequencer inválido", map[string]any{"sequencer": raw})
				return
			}
			sequencer = &parsed
		}

		campaigns, err := aggregator.ListStored(r.Context(), userID, sequencer)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, campaignsResponse{
			Campaigns: campaigns,
			Combined:  domain.Combine(campaigns),
		})
	})
}

// CombinedStats soma as campanhas persistidas escolhidas pelo usuário
func CombinedStats(aggregator aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req combinedStatsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		stats, err := aggregator.CombineStored(r.Context(), userID, req.CampaignIDs)
		if err != nil {
			if errors.Is(err, aggregating.ErrNoCampaignsSelected) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione ao menos uma campanha", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao combinar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao combinar campanhas", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	})
}
