package integrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrMalformedBody      = errors.New("malformed response body")
	ErrUnexpectedPayload  = errors.New("unexpected payload for provider")
	ErrCampaignIDRequired = errors.New("campaign ID is required")
)

// HTTPDoer é satisfeito por *http.Client e permite injetar transportes nos testes
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProviderAdapter traduz as estatísticas de um provedor para o formato canônico
type ProviderAdapter interface {
	Sequencer() domain.Sequencer
	ListCampaigns(ctx context.Context, cred domain.Credential) ([]domain.CampaignRef, error)
	FetchStats(ctx context.Context, cred domain.Credential, ref domain.CampaignRef) (domain.RawPayload, error)
	Normalize(ref domain.CampaignRef, payload domain.RawPayload) (*domain.NormalizedCampaign, error)
}

// HTTPError representa uma resposta não 2xx de um provedor
type HTTPError struct {
	Provider string
	Status   int
	Body     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.Status, e.Body)
}

// GetJSON executa um GET e decodifica o corpo em out
func GetJSON(ctx context.Context, doer HTTPDoer, provider, rawURL string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := doer.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider": provider,
			"error":    err.Error(),
		}).Error(provider + ": request failed")
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithFields(logrus.Fields{
			"provider": provider,
			"status":   resp.StatusCode,
		}).Warn(provider + ": non-2xx response")
		return &HTTPError{Provider: provider, Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: %w: %v", provider, ErrMalformedBody, err)
	}

	return nil
}

// UnexpectedPayload monta o erro de payload com tag de provedor diferente
func UnexpectedPayload(want domain.Sequencer, got domain.RawPayload) error {
	if got == nil {
		return fmt.Errorf("%w %s: nil payload", ErrUnexpectedPayload, want)
	}
	return fmt.Errorf("%w %s: got %s", ErrUnexpectedPayload, want, got.Sequencer())
}
