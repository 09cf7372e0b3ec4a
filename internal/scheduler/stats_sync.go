package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sequencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/sequencer-stats-api/internal/config"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/ingesting"
	"github.com/vfg2006/sequencer-stats-api/pkg/log"
)

// Syncer é o que a API expõe do agendador
type Syncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// StatsSyncService reexecuta periodicamente a ingestão de todas as api keys cadastradas
type StatsSyncService struct {
	scheduler  *gocron.Scheduler
	config     config.StatsSync
	apiKeyRepo repository.APIKeyRepository
	runner     ingesting.Runner

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncKeys        int
	lastSyncFailures    int
}

func NewStatsSyncService(apiKeyRepo repository.APIKeyRepository, runner ingesting.Runner, cfg config.StatsSync) *StatsSyncService {
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         cfg.CronSchedule,
		"request_delay_seconds": cfg.RequestDelaySeconds,
		"max_concurrent_jobs":   cfg.MaxConcurrentJobs,
		"sync_enabled":          cfg.Enabled,
	}).Info("Configuração do agendador de estatísticas carregada")

	return &StatsSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     cfg,
		apiKeyRepo: apiKeyRepo,
		runner:     runner,
	}
}

// Start agenda a sincronização e para o agendador quando o contexto for cancelado
func (s *StatsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de estatísticas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de estatísticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StatsSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatísticas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx)
	startTime := time.Now()

	keys, err := s.apiKeyRepo.ListAll(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar api keys para sincronização")
		return
	}

	if len(keys) == 0 {
		log.ForContext(ctx).Info("Nenhuma api key cadastrada para sincronização")
		s.finish(0, 0)
		return
	}

	failures := s.processKeys(ctx, keys)

	log.ForContext(ctx).WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"keys":     len(keys),
		"failures": failures,
	}).Info("Sincronização de estatísticas concluída")

	s.finish(len(keys), failures)
}

func (s *StatsSyncService) finish(keys, failures int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncKeys = keys
	s.lastSyncFailures = failures
}

// processKeys executa uma ingestão por api key respeitando o limite de jobs concorrentes
func (s *StatsSyncService) processKeys(ctx context.Context, keys []*domain.APIKey) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, key := range keys {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(key *domain.APIKey) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.processKey(ctx, key); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(key)
	}

	wg.Wait()
	return failures
}

func (s *StatsSyncService) processKey(ctx context.Context, key *domain.APIKey) error {
	req := ingesting.RunRequest{
		UserID:    key.UserID,
		APIKey:    key.APIKey,
		Sequencer: key.Sequencer,
	}
	if key.WorkspaceID != nil {
		req.WorkspaceID = *key.WorkspaceID
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"api_key_id": key.ID,
		"user_id":    key.UserID,
		"sequencer":  key.Sequencer,
	})

	result, err := s.runner.Run(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Erro ao sincronizar estatísticas da api key")
		return err
	}

	logger.WithFields(log.Fields{
		"campaigns": len(result.Campaigns),
		"dropped":   len(result.Dropped),
	}).Info("Estatísticas da api key sincronizadas")

	return nil
}

// TriggerManualSync dispara uma sincronização em segundo plano; retorna false se já houver uma em andamento
func (s *StatsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatísticas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de estatísticas")
	go s.syncAll(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *StatsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_keys":         s.lastSyncKeys,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
