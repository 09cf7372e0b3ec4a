package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	ingestingmocks "github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestStatsSyncService_syncAll(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mockRepo *mocks.MockAPIKeyRepository, mockRunner *ingestingmocks.MockRunner)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "executa uma ingestão por api key com workspace quando houver",
			setup: func(mockRepo *mocks.MockAPIKeyRepository, mockRunner *ingestingmocks.MockRunner) {
				mockRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.APIKey{
					{ID: "k1", UserID: "u1", Sequencer: domain.SequencerSmartlead, APIKey: "sl-key"},
					{ID: "k2", UserID: "u2", Sequencer: domain.SequencerPipl, APIKey: "pl-key", WorkspaceID: stringPtr("ws-1")},
				}, nil)

				mockRunner.EXPECT().Run(gomock.Any(), ingesting.RunRequest{
					UserID: "u1", APIKey: "sl-key", Sequencer: domain.SequencerSmartlead,
				}).Return(&domain.RunResult{Sequencer: domain.SequencerSmartlead}, nil)

				mockRunner.EXPECT().Run(gomock.Any(), ingesting.RunRequest{
					UserID: "u2", APIKey: "pl-key", Sequencer: domain.SequencerPipl, WorkspaceID: "ws-1",
				}).Return(&domain.RunResult{Sequencer: domain.SequencerPipl}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 2, status["last_sync_keys"])
				assert.Equal(t, 0, status["last_sync_failures"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "falha de uma api key não interrompe as demais",
			setup: func(mockRepo *mocks.MockAPIKeyRepository, mockRunner *ingestingmocks.MockRunner) {
				mockRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.APIKey{
					{ID: "k1", UserID: "u1", Sequencer: domain.SequencerInstantly, APIKey: "a"},
					{ID: "k2", UserID: "u1", Sequencer: domain.SequencerSmartlead, APIKey: "b"},
				}, nil)

				mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("upstream"))
				mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.RunResult{}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 2, status["last_sync_keys"])
				assert.Equal(t, 1, status["last_sync_failures"])
			},
		},
		{
			name: "erro ao listar api keys",
			setup: func(mockRepo *mocks.MockAPIKeyRepository, mockRunner *ingestingmocks.MockRunner) {
				mockRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))
				mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 0, status["last_sync_keys"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "nenhuma api key cadastrada",
			setup: func(mockRepo *mocks.MockAPIKeyRepository, mockRunner *ingestingmocks.MockRunner) {
				mockRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.APIKey{}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 0, status["last_sync_keys"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockAPIKeyRepository(ctrl)
			mockRunner := ingestingmocks.NewMockRunner(ctrl)
			tt.setup(mockRepo, mockRunner)

			service := NewStatsSyncService(mockRepo, mockRunner, config.StatsSync{MaxConcurrentJobs: 1})
			service.syncAll(context.Background())

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestStatsSyncService_ignoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAPIKeyRepository(ctrl)
	mockRunner := ingestingmocks.NewMockRunner(ctrl)

	service := NewStatsSyncService(mockRepo, mockRunner, config.StatsSync{})
	service.syncRunning = true

	mockRepo.EXPECT().ListAll(gomock.Any()).Times(0)

	service.syncAll(context.Background())
	assert.False(t, service.TriggerManualSync())
}

func TestStatsSyncService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewStatsSyncService(mocks.NewMockAPIKeyRepository(ctrl), ingestingmocks.NewMockRunner(ctrl), config.StatsSync{
		CronSchedule: "0 */6 * * *",
		Enabled:      false,
	})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestStatsSyncService_StartCronInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewStatsSyncService(mocks.NewMockAPIKeyRepository(ctrl), ingestingmocks.NewMockRunner(ctrl), config.StatsSync{
		CronSchedule: "não é cron",
		Enabled:      true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
