package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sequencer-stats-api/internal/usecases/account"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

type registerAPIKeyRequest struct {
	APIKey      string `json:"api_key"`
	Sequencer   string `json:"sequencer"`
	WorkspaceID string `json:"workspace_id"`
}

func RegisterAPIKey(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		var req registerAPIKeyRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		key, err := service.RegisterAPIKey(r.Context(), account.RegisterRequest{
			UserID:      userID,
			APIKey:      req.APIKey,
			Sequencer:   req.Sequencer,
			WorkspaceID: req.WorkspaceID,
		})
		if err != nil {
			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Err.Error(), nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao cadastrar api key")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao cadastrar api key", nil)
			return
		}

		writeJSON(w, r, http.StatusCreated, key)
	})
}
