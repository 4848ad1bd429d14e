package reviewing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-review-api/internal/domain"
	"github.com/vfg2006/budget-review-api/internal/monitoring"
	"github.com/vfg2006/budget-review-api/pkg/pipeline"
	"github.com/vfg2006/budget-review-api/pkg/utils"
)

const (
	stepBalance        = "balance"
	stepCampaignHealth = "campaign_health"
)

// runGlobalUpdates sincroniza saldos e, se pedido, recalcula a saúde das campanhas de todas as contas ativas.
// Retorna true somente se todas as etapas executadas terminaram sem erro.
func (s *Service) runGlobalUpdates(ctx context.Context, platform domain.Platform, updateCampaignHealth bool) bool {
	logger := logrus.WithField("platform", platform)

	client, err := s.platforms.Get(platform)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("Atualizações globais não executadas")
		s.metrics.RecordGlobalUpdate(platform.String(), stepBalance, monitoring.OutcomeError)
		return false
	}

	accounts, err := s.repos.Accounts.ListAccounts(ctx, platform, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logger.WithField("error", err.Error()).Error("Erro ao listar contas para atualizações globais")
		s.metrics.RecordGlobalUpdate(platform.String(), stepBalance, monitoring.OutcomeError)
		return false
	}

	performed := s.syncBalances(ctx, platform, client, accounts)

	if updateCampaignHealth {
		if !s.recomputeCampaignHealth(ctx, platform, client, accounts) {
			performed = false
		}
	}

	return performed
}

func (s *Service) syncBalances(ctx context.Context, platform domain.Platform, client AdPlatformClient, accounts []*domain.AdAccount) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		failed      int
		unsupported bool
	)

	p := pipeline.NewSequential[*domain.AdAccount](s.delay, pipeline.WithSleeper[*domain.AdAccount](s.sleep))
	p.Run(ctx, accounts, func(ctx context.Context, _ int, account *domain.AdAccount) {
		if unsupported {
			return
		}

		err := s.syncBalance(ctx, client, account)
		switch {
		case errors.Is(err, ErrBalanceNotSupported):
			// a plataforma não tem saldo: encerra as esperas restantes
			unsupported = true
			cancel()
		case err != nil:
			failed++
			logrus.WithFields(logrus.Fields{
				"platform":   platform,
				"client_id":  account.ClientID,
				"account_id": account.AccountID,
				"error":      err.Error(),
			}).Error("Erro ao sincronizar saldo da conta")
		}
	})

	switch {
	case unsupported:
		s.metrics.RecordGlobalUpdate(platform.String(), stepBalance, monitoring.OutcomeSkipped)
		return true
	case failed > 0:
		s.metrics.RecordGlobalUpdate(platform.String(), stepBalance, monitoring.OutcomeError)
		return false
	}

	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"accounts": len(accounts),
	}).Info("Saldos sincronizados")
	s.metrics.RecordGlobalUpdate(platform.String(), stepBalance, monitoring.OutcomeSuccess)

	return true
}

func (s *Service) syncBalance(ctx context.Context, client AdPlatformClient, account *domain.AdAccount) error {
	if account == nil {
		return nil
	}

	balance, err := client.FetchBalance(ctx, account.AccountID)
	if err != nil {
		return err
	}
	if balance == nil {
		return nil
	}

	if err := s.repos.Accounts.UpdateBalance(ctx, account.ID, *balance, s.now()); err != nil {
		return errors.Wrap(err, "erro ao salvar saldo")
	}

	return nil
}

func (s *Service) recomputeCampaignHealth(ctx context.Context, platform domain.Platform, client AdPlatformClient, accounts []*domain.AdAccount) bool {
	today := utils.StartOfDay(s.now())
	failed := 0

	p := pipeline.NewSequential[*domain.AdAccount](s.delay, pipeline.WithSleeper[*domain.AdAccount](s.sleep))
	p.Run(ctx, accounts, func(ctx context.Context, _ int, account *domain.AdAccount) {
		if account == nil {
			return
		}

		if err := s.updateCampaignHealth(ctx, platform, client, account, today); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"platform":   platform,
				"client_id":  account.ClientID,
				"account_id": account.AccountID,
				"error":      err.Error(),
			}).Error("Erro ao atualizar saúde das campanhas")
		}
	})

	if failed > 0 {
		s.metrics.RecordGlobalUpdate(platform.String(), stepCampaignHealth, monitoring.OutcomeError)
		return false
	}

	s.metrics.RecordGlobalUpdate(platform.String(), stepCampaignHealth, monitoring.OutcomeSuccess)
	return true
}

func (s *Service) updateCampaignHealth(ctx context.Context, platform domain.Platform, client AdPlatformClient, account *domain.AdAccount, today time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	spend, err := client.FetchSpendAndBudget(ctx, account.AccountID, domain.DateRange{Start: today, End: today})
	if err != nil {
		return errors.Wrap(err, "erro ao consultar campanhas")
	}

	active, unserved := spend.CampaignCounts()

	return s.repos.CampaignHealth.UpsertCampaignHealth(ctx, &domain.CampaignHealth{
		ClientID:               account.ClientID,
		Platform:               platform,
		AccountID:              account.AccountID,
		SnapshotDate:           today,
		ActiveCampaignsCount:   active,
		UnservedCampaignsCount: unserved,
	})
}
