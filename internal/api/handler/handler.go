package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
	"github.com/vfg2006/sequencer-stats-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodySize = 5 << 20

var errEmptyBody = errors.New("empty request body")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(errors.Wrap(err, "encode response")).Error("Erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return errors.Wrap(err, "decode request body")
}

// authenticatedUser escreve 401 e retorna false quando não há usuário no contexto
func authenticatedUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return userID, true
}
