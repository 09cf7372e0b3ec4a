package ingesting

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
)

var (
	// Erros de entrada
	ErrMissingAPIKey      = errors.New("api key is required")
	ErrMissingUserID      = errors.New("user ID is required")
	ErrMissingWorkspaceID = errors.New("workspace ID is required for pipl")
	ErrUnknownSequencer   = errors.New("unknown sequencer")
	ErrAPIKeyNotFound     = errors.New("api key not found")

	// Erros de provedor
	ErrListCampaigns = errors.New("error listing campaigns from provider")

	// Erros de banco de dados
	ErrResolveAPIKey = errors.New("error resolving api key")
	ErrPersistBatch  = errors.New("error persisting campaign analytics")
)

type ErrorKind string

const (
	KindInput       ErrorKind = "InputError"
	KindUpstream    ErrorKind = "UpstreamError"
	KindPersistence ErrorKind = "PersistenceError"
)

// RunError é o erro de uma execução com o tipo e o código de API correspondente
type RunError struct {
	Kind       ErrorKind
	Code       string
	Err        error
	HTTPStatus int    // status devolvido pelo provedor, quando houver
	Details    string
}

func (e *RunError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func newInputError(err error, code string) *RunError {
	return &RunError{Kind: KindInput, Code: code, Err: err}
}

func newUpstreamError(err error, cause error) *RunError {
	runErr := &RunError{
		Kind:       KindUpstream,
		Code:       apiErrors.ErrExternalService,
		Err:        err,
		HTTPStatus: http.StatusBadGateway,
		Details:    cause.Error(),
	}

	var httpErr *integrator.HTTPError
	if errors.As(cause, &httpErr) {
		runErr.HTTPStatus = httpErr.Status
	}

	return runErr
}

func newPersistenceError(err error, cause error) *RunError {
	return &RunError{
		Kind:    KindPersistence,
		Code:    apiErrors.ErrDatabaseOperation,
		Err:     err,
		Details: cause.Error(),
	}
}

// IsInputError verifica se o erro foi causado pela requisição
func IsInputError(err error) bool {
	var runErr *RunError
	return errors.As(err, &runErr) && runErr.Kind == KindInput
}
