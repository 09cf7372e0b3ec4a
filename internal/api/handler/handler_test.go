package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/integrator"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/sequencer-stats-api/internal/usecases/account/mocks"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating"
	aggregatingmocks "github.com/vfg2006/sequencer-stats-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	ingestingmocks "github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/sharing"
	sharingmocks "github.com/vfg2006/sequencer-stats-api/internal/usecases/sharing/mocks"
	"github.com/vfg2006/sequencer-stats-api/pkg/apiErrors"
	"github.com/vfg2006/sequencer-stats-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	claims := &domain.Claims{}
	claims.Subject = "user-1"
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestFetchCampaigns(t *testing.T) {
	tests := []struct {
		name     string
		request  *http.Request
		setup    func(runner *ingestingmocks.MockRunner)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "busca com sucesso",
			request: authedRequest(http.MethodPost, "/v1/campaigns/fetch", `{"api_key":"k","sequencer":"Instantly"}`),
			setup: func(runner *ingestingmocks.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), ingesting.RunRequest{
					UserID: "user-1", APIKey: "k", Sequencer: domain.SequencerInstantly,
				}).Return(&domain.RunResult{
					Sequencer: domain.SequencerInstantly,
					Campaigns: []domain.NormalizedCampaign{{ID: "c1", ProspectsEmailed: 100, Replies: 12, ReplyRate: 12}},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var result domain.RunResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.Equal(t, "c1", result.Campaigns[0].ID)
				assert.Equal(t, 12.0, result.Campaigns[0].ReplyRate)
			},
		},
		{
			name:    "sequencer inválido",
			request: authedRequest(http.MethodPost, "/v1/campaigns/fetch", `{"api_key":"k","sequencer":"lemlist"}`),
			setup: func(runner *ingestingmocks.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:    "corpo vazio",
			request: authedRequest(http.MethodPost, "/v1/campaigns/fetch", ``),
			setup:   func(runner *ingestingmocks.MockRunner) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:    "erro do provedor vira 502",
			request: authedRequest(http.MethodPost, "/v1/campaigns/fetch", `{"api_key":"k","sequencer":"smartlead"}`),
			setup: func(runner *ingestingmocks.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, &ingesting.RunError{
					Kind:       ingesting.KindUpstream,
					Code:       apiErrors.ErrExternalService,
					Err:        ingesting.ErrListCampaigns,
					HTTPStatus: http.StatusUnauthorized,
					Details:    (&integrator.HTTPError{Provider: "smartlead", Status: 401}).Error(),
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
				details := apiErr.Details.(map[string]any)
				assert.Equal(t, float64(http.StatusUnauthorized), details["provider_status"])
			},
		},
		{
			name:    "erro de entrada vira 400",
			request: authedRequest(http.MethodPost, "/v1/campaigns/fetch", `{"api_key":""}`),
			setup: func(runner *ingestingmocks.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, &ingesting.RunError{
					Kind: ingesting.KindInput,
					Code: apiErrors.ErrMissingRequiredData,
					Err:  ingesting.ErrMissingAPIKey,
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, ingesting.ErrMissingAPIKey.Error(), decodeAPIError(t, rec).Message)
			},
		},
		{
			name:    "erro de persistência vira 500",
			request: authedRequest(http.MethodPost, "/v1/campaigns/fetch", `{"api_key":"k"}`),
			setup: func(runner *ingestingmocks.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, &ingesting.RunError{
					Kind: ingesting.KindPersistence,
					Code: apiErrors.ErrDatabaseOperation,
					Err:  ingesting.ErrPersistBatch,
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:    "sem usuário autenticado",
			request: httptest.NewRequest(http.MethodPost, "/v1/campaigns/fetch", bytes.NewBufferString(`{"api_key":"k"}`)),
			setup:   func(runner *ingestingmocks.MockRunner) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := ingestingmocks.NewMockRunner(ctrl)
			tt.setup(runner)

			rec := httptest.NewRecorder()
			FetchCampaigns(runner).ServeHTTP(rec, tt.request)

			tt.validate(t, rec)
		})
	}
}

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	aggregator := aggregatingmocks.NewMockAggregator(ctrl)

	sequencer := domain.SequencerPipl
	aggregator.EXPECT().ListStored(gomock.Any(), "user-1", &sequencer).Return([]domain.NormalizedCampaign{
		domain.NormalizedCampaign{ID: "a", ProspectsEmailed: 100, Replies: 10, PositiveReplies: 5}.WithRates(),
		domain.NormalizedCampaign{ID: "b", ProspectsEmailed: 100, Replies: 30, PositiveReplies: 15}.WithRates(),
	}, nil)

	rec := httptest.NewRecorder()
	ListCampaigns(aggregator).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/campaigns?sequencer=pipl", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp campaignsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Campaigns, 2)
	assert.Equal(t, 200, resp.Combined.ProspectsEmailed)
	assert.Equal(t, 20.0, resp.Combined.ReplyRate)
	assert.Equal(t, 50.0, resp.Combined.PositiveRate)

	rec = httptest.NewRecorder()
	ListCampaigns(aggregator).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/campaigns?sequencer=xyz", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCombinedStats(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(aggregator *aggregatingmocks.MockAggregator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "combina campanhas selecionadas",
			body: `{"campaign_ids":["a","b"]}`,
			setup: func(aggregator *aggregatingmocks.MockAggregator) {
				aggregator.EXPECT().CombineStored(gomock.Any(), "user-1", []string{"a", "b"}).Return(&domain.CombinedStats{
					Campaigns: 2, ProspectsEmailed: 200, Replies: 40, ReplyRate: 20,
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var stats domain.CombinedStats
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
				assert.Equal(t, 20.0, stats.ReplyRate)
			},
		},
		{
			name: "nenhuma campanha selecionada",
			body: `{"campaign_ids":[]}`,
			setup: func(aggregator *aggregatingmocks.MockAggregator) {
				aggregator.EXPECT().CombineStored(gomock.Any(), "user-1", []string{}).Return(nil, aggregating.ErrNoCampaignsSelected)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "erro no banco",
			body: `{"campaign_ids":["a"]}`,
			setup: func(aggregator *aggregatingmocks.MockAggregator) {
				aggregator.EXPECT().CombineStored(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			aggregator := aggregatingmocks.NewMockAggregator(ctrl)
			tt.setup(aggregator)

			rec := httptest.NewRecorder()
			CombinedStats(aggregator).ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/campaigns/combined", tt.body))

			tt.validate(t, rec)
		})
	}
}

func TestCreateShare(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(sharer *sharingmocks.MockSharer)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "cria compartilhamento",
			body: `{"sequencer":"smartlead","show_pipeline_value":true,"campaigns":[{"id":"c1","prospects_emailed":10,"replies":2,"positive_replies":1}]}`,
			setup: func(sharer *sharingmocks.MockSharer) {
				sharer.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req sharing.CreateRequest) (*domain.SharedCampaign, error) {
						assert.Equal(t, "user-1", req.UserID)
						assert.Equal(t, domain.SequencerSmartlead, req.Sequencer)
						assert.True(t, req.ShowPipelineValue)
						assert.Equal(t, 10, req.Campaigns[0].ProspectsEmailed)
						return &domain.SharedCampaign{Token: "tok123"}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				var resp createShareResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "tok123", resp.Token)
			},
		},
		{
			name: "sem campanhas",
			body: `{"sequencer":"smartlead","campaigns":[]}`,
			setup: func(sharer *sharingmocks.MockSharer) {
				sharer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, sharing.ErrNoCampaigns)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:  "sequencer ausente",
			body:  `{"campaigns":[{"id":"c1"}]}`,
			setup: func(sharer *sharingmocks.MockSharer) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sharer := sharingmocks.NewMockSharer(ctrl)
			tt.setup(sharer)

			rec := httptest.NewRecorder()
			CreateShare(sharer).ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/shares", tt.body))

			tt.validate(t, rec)
		})
	}
}

func TestGetShare(t *testing.T) {
	withToken := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/shares/"+token, nil)
		ctx := context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "token", Value: token}})
		return req.WithContext(ctx)
	}

	ctrl := gomock.NewController(t)
	sharer := sharingmocks.NewMockSharer(ctrl)

	sharer.EXPECT().Get(gomock.Any(), "tok").Return(&domain.SharedCampaignView{
		Token:     "tok",
		Campaigns: []domain.NormalizedCampaign{{ID: "c1"}},
	}, nil)
	sharer.EXPECT().Get(gomock.Any(), "missing").Return(nil, sharing.ErrShareNotFound)

	rec := httptest.NewRecorder()
	GetShare(sharer).ServeHTTP(rec, withToken("tok"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	GetShare(sharer).ServeHTTP(rec, withToken("missing"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}

func TestRegisterAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := accountmocks.NewMockAccountService(ctrl)

	service.EXPECT().RegisterAPIKey(gomock.Any(), account.RegisterRequest{
		UserID: "user-1", APIKey: "k", Sequencer: "pipl", WorkspaceID: "ws",
	}).Return(&domain.APIKey{ID: "k1", Sequencer: domain.SequencerPipl, APIKey: "k"}, nil)

	rec := httptest.NewRecorder()
	RegisterAPIKey(service).ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/api-keys", `{"api_key":"k","sequencer":"pipl","workspace_id":"ws"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"k"`)

	service.EXPECT().RegisterAPIKey(gomock.Any(), gomock.Any()).Return(nil,
		account.NewAccountError(account.ErrWorkspaceIDRequired, apiErrors.ErrMissingRequiredData, ""))

	rec = httptest.NewRecorder()
	RegisterAPIKey(service).ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/api-keys", `{"api_key":"k","sequencer":"pipl"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, account.ErrWorkspaceIDRequired.Error(), decodeAPIError(t, rec).Message)
}

type fakeSyncer struct {
	started bool
}

func (f *fakeSyncer) TriggerManualSync() bool {
	return f.started
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	RunStatsSync(&fakeSyncer{started: true}).ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/cron/sync/run", ""))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	RunStatsSync(&fakeSyncer{started: false}).ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/cron/sync/run", ""))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	GetCronStatus(&fakeSyncer{}).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/cron/status", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sync_enabled")

	rec = httptest.NewRecorder()
	GetCronStatus(nil).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/cron/status", ""))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
