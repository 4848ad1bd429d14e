package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/infrastructure/repository"
	"github.com/vfg2006/budget-review-api/internal/config"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/usecases/reviewing"
)

var ErrSyncAlreadyRunning = errors.New("revisão automática já em andamento")

// BudgetReviewSyncConfig representa a configuração do agendador de revisões
type BudgetReviewSyncConfig struct {
	Schedules            map[domain.Platform]string
	UpdateCampaignHealth bool
	SyncEnabled          bool
}

type platformStatus struct {
	running     bool
	startedAt   time.Time
	completedAt time.Time
	lastResult  *domain.BatchReviewResult
	lastError   string
}

// BudgetReviewSyncService agenda a revisão em lote de todos os clientes ativos de cada plataforma
type BudgetReviewSyncService struct {
	scheduler  *gocron.Scheduler
	config     BudgetReviewSyncConfig
	clientRepo repository.ClientRepository
	reviewer   reviewing.ReviewService
	platforms  reviewing.PlatformClients

	syncMutex sync.Mutex
	status    map[domain.Platform]*platformStatus
	now       func() time.Time
}

func NewBudgetReviewSyncService(
	clientRepo repository.ClientRepository,
	reviewer reviewing.ReviewService,
	platforms reviewing.PlatformClients,
	appConfig *config.Config,
) *BudgetReviewSyncService {
	syncConfig := BudgetReviewSyncConfig{
		Schedules: map[domain.Platform]string{
			domain.PlatformMeta:   appConfig.BudgetReview.MetaCronSchedule,
			domain.PlatformGoogle: appConfig.BudgetReview.GoogleCronSchedule,
		},
		UpdateCampaignHealth: appConfig.BudgetReview.UpdateCampaignHealth,
		SyncEnabled:          appConfig.BudgetReview.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"meta_cron":              syncConfig.Schedules[domain.PlatformMeta],
		"google_cron":            syncConfig.Schedules[domain.PlatformGoogle],
		"update_campaign_health": syncConfig.UpdateCampaignHealth,
		"sync_enabled":           syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de revisão de orçamentos carregada")

	return newBudgetReviewSyncService(clientRepo, reviewer, platforms, syncConfig)
}

func newBudgetReviewSyncService(
	clientRepo repository.ClientRepository,
	reviewer reviewing.ReviewService,
	platforms reviewing.PlatformClients,
	syncConfig BudgetReviewSyncConfig,
) *BudgetReviewSyncService {
	status := make(map[domain.Platform]*platformStatus, len(domain.SupportedPlatforms))
	for _, p := range domain.SupportedPlatforms {
		status[p] = &platformStatus{}
	}

	return &BudgetReviewSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		clientRepo: clientRepo,
		reviewer:   reviewer,
		platforms:  platforms,
		status:     status,
		now:        time.Now,
	}
}

// Start agenda uma execução por plataforma com credenciais e cron configurados
func (s *BudgetReviewSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Revisão automática de orçamentos desabilitada por configuração")
		return nil
	}

	scheduled := 0
	for _, platform := range domain.SupportedPlatforms {
		cron := s.config.Schedules[platform]
		if cron == "" {
			continue
		}

		if _, err := s.platforms.Get(platform); err != nil {
			logrus.WithField("platform", platform).Warn("Plataforma sem credenciais. Revisão automática não agendada")
			continue
		}

		p := platform
		_, err := s.scheduler.Cron(cron).Do(func() {
			if _, err := s.SyncPlatform(ctx, p); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
				logrus.WithFields(logrus.Fields{
					"platform": p,
					"error":    err.Error(),
				}).Error("Erro na revisão automática de orçamentos")
			}
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar revisão de orçamentos (%s): %w", platform, err)
		}

		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"cron":     cron,
		}).Info("Revisão automática de orçamentos agendada")
		scheduled++
	}

	if scheduled == 0 {
		return nil
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de revisão de orçamentos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BudgetReviewSyncService) acquire(platform domain.Platform) bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	st := s.status[platform]
	if st.running {
		return false
	}

	st.running = true
	st.startedAt = s.now()
	return true
}

func (s *BudgetReviewSyncService) release(platform domain.Platform, result *domain.BatchReviewResult, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	st := s.status[platform]
	st.running = false
	st.completedAt = s.now()
	st.lastResult = result
	st.lastError = ""
	if err != nil {
		st.lastError = err.Error()
	}
}

// SyncPlatform revisa todos os clientes ativos com conta na plataforma. Execuções sobrepostas
// da mesma plataforma retornam ErrSyncAlreadyRunning.
func (s *BudgetReviewSyncService) SyncPlatform(ctx context.Context, platform domain.Platform) (*domain.BatchReviewResult, error) {
	if _, ok := s.status[platform]; !ok {
		return nil, reviewing.ErrInvalidPlatform
	}

	if !s.acquire(platform) {
		logrus.WithField("platform", platform).Info("Revisão de orçamentos já em andamento, ignorando")
		return nil, ErrSyncAlreadyRunning
	}

	result, err := s.syncPlatform(ctx, platform)
	s.release(platform, result, err)

	return result, err
}

func (s *BudgetReviewSyncService) syncPlatform(ctx context.Context, platform domain.Platform) (*domain.BatchReviewResult, error) {
	logger := logrus.WithField("platform", platform)
	logger.Info("Iniciando revisão automática de orçamentos")

	clients, err := s.clientRepo.ListClientsWithActiveAccount(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes ativos: %w", err)
	}

	if len(clients) == 0 {
		logger.Info("Nenhum cliente ativo encontrado para revisão automática")
		return &domain.BatchReviewResult{Results: []domain.ReviewResult{}}, nil
	}

	batchClients := make([]domain.BatchClient, 0, len(clients))
	for _, c := range clients {
		batchClients = append(batchClients, domain.BatchClient{ID: c.ID})
	}

	result, err := s.reviewer.ReviewBatch(ctx, domain.BatchReviewRequest{
		Platform: platform,
		Clients:  batchClients,
		BatchOptions: domain.BatchOptions{
			UpdateCampaignHealth: s.config.UpdateCampaignHealth,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"total_clients":            result.TotalClients,
		"success_count":            result.SuccessCount,
		"error_count":              result.ErrorCount,
		"global_updates_performed": result.GlobalUpdatesPerformed,
		"execution_time_ms":        result.ExecutionTimeMs,
	}).Info("Revisão automática de orçamentos concluída")

	return result, nil
}

// TriggerManualSync inicia a revisão em segundo plano. Retorna false se a plataforma já está em execução.
func (s *BudgetReviewSyncService) TriggerManualSync(ctx context.Context, platform domain.Platform) bool {
	s.syncMutex.Lock()
	st, ok := s.status[platform]
	running := ok && st.running
	s.syncMutex.Unlock()

	if !ok || running {
		logrus.WithField("platform", platform).Info("Revisão de orçamentos já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("platform", platform).Info("Iniciando revisão manual de orçamentos")
	go func() {
		if _, err := s.SyncPlatform(context.WithoutCancel(ctx), platform); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithFields(logrus.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("Erro na revisão manual de orçamentos")
		}
	}()

	return true
}

// IsRunning informa se há revisão em andamento para a plataforma
func (s *BudgetReviewSyncService) IsRunning(platform domain.Platform) bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	st, ok := s.status[platform]
	return ok && st.running
}

// GetStatus retorna o status atual do agendador
func (s *BudgetReviewSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	platforms := make(map[string]any, len(s.status))
	for platform, st := range s.status {
		_, err := s.platforms.Get(platform)
		platforms[platform.String()] = map[string]any{
			"cron":                   s.config.Schedules[platform],
			"credentials":            err == nil,
			"running":                st.running,
			"last_sync_started_at":   st.startedAt,
			"last_sync_completed_at": st.completedAt,
			"last_result":            st.lastResult,
			"last_error":             st.lastError,
		}
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"update_campaign_health": s.config.UpdateCampaignHealth,
		"platforms":              platforms,
	}
}
