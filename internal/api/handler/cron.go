package handler

import (
	"net/http"

	"github.com/vfg2006/sequencer-stats-api/internal/scheduler"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
)

// RunStatsSync dispara manualmente a sincronização das api keys cadastradas
func RunStatsSync(syncer scheduler.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Serviço de sincronização não disponível", nil)
			return
		}

		if !syncer.TriggerManualSync() {
			writeJSON(w, r, http.StatusConflict, map[string]any{
				"message": "Sincronização já em andamento",
			})
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada com sucesso",
		})
	})
}

func GetCronStatus(syncer scheduler.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, syncer.GetStatus())
	})
}
