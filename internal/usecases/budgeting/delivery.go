package budgeting

import (
	"fmt"

	"github.com/vfg2006/budget-review-api/internal/domain"
)

// ClassifyDelivery classifica a veiculação da conta a partir das contagens de campanhas.
// health nil significa que os dados de campanha ainda não foram coletados.
func ClassifyDelivery(health *domain.CampaignHealth) domain.VeiculationStatus {
	if health == nil {
		return domain.VeiculationStatus{
			Status:  domain.VeiculationNoData,
			Message: "Sem dados de veiculação",
			Tone:    domain.ToneNeutral,
		}
	}

	return ClassifyDeliveryCounts(health.ActiveCampaignsCount, health.UnservedCampaignsCount)
}

// ClassifyDeliveryCounts espera unserved <= active; contagens negativas são tratadas como zero
func ClassifyDeliveryCounts(active, unserved int) domain.VeiculationStatus {
	active = max(active, 0)
	unserved = max(unserved, 0)

	switch {
	case active == 0:
		return domain.VeiculationStatus{
			Status:  domain.VeiculationNoCampaigns,
			Message: "Nenhuma campanha ativa",
			Tone:    domain.ToneWarning,
		}
	case unserved == 0:
		return domain.VeiculationStatus{
			Status:  domain.VeiculationAllRunning,
			Message: "Todas as campanhas rodando",
			Tone:    domain.ToneSuccess,
		}
	case unserved >= active:
		return domain.VeiculationStatus{
			Status:  domain.VeiculationNoneRunning,
			Message: "Nenhuma campanha rodando",
			Tone:    domain.ToneDanger,
		}
	default:
		return domain.VeiculationStatus{
			Status:  domain.VeiculationPartialRunning,
			Message: fmt.Sprintf("%d de %d campanhas sem veiculação", unserved, active),
			Tone:    domain.ToneWarning,
		}
	}
}

// NoAccountStatus é o status da linha de um cliente sem conta configurada na plataforma
func NoAccountStatus() domain.VeiculationStatus {
	return domain.VeiculationStatus{
		Status:  domain.VeiculationNoAccount,
		Message: "Nenhuma conta configurada",
		Tone:    domain.ToneNeutral,
	}
}
