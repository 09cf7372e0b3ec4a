package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/sharing"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

type createShareRequest struct {
	Sequencer         string                      `json:"sequencer"`
	ShowPipelineValue bool                        `json:"show_pipeline_value"`
	Campaigns         []domain.NormalizedCampaign `json:"campaigns"`
}

type createShareResponse struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func CreateShare(sharer sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req createShareRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		sequencer, err := domain.ParseSequencer(req.Sequencer)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Sequencer inválido", map[string]any{"sequencer": req.Sequencer})
			return
		}

		share, err := sharer.Create(r.Context(), sharing.CreateRequest{
			UserID:            userID,
			Sequencer:         sequencer,
			ShowPipelineValue: req.ShowPipelineValue,
			Campaigns:         req.Campaigns,
		})
		if err != nil {
			switch {
			case errors.Is(err, sharing.ErrNoCampaigns):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Selecione ao menos uma campanha", nil)
			case errors.Is(err, sharing.ErrInvalidPayload):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao criar compartilhamento")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar compartilhamento", nil)
			}
			return
		}

		writeJSON(w, r, http.StatusCreated, createShareResponse{Token: share.Token, CreatedAt: share.CreatedAt})
	})
}

// GetShare é público: quem tem o token vê o snapshot
func GetShare(sharer sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := httprouter.ParamsFromContext(r.Context()).ByName("token")
		if token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token é obrigatório", nil)
			return
		}

		view, err := sharer.Get(r.Context(), token)
		if err != nil {
			if errors.Is(err, sharing.ErrShareNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Compartilhamento não encontrado", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar compartilhamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar compartilhamento", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}
