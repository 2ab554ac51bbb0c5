package usecase

import (
	"context"
	"log"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/entity"
	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
)

type CheckFollowUpsUseCase struct {
	LeadRepo     LeadRepositoryInterface
	FollowUpRepo FollowUpRepositoryInterface
	Alerts       AlertProducerInterface
}

func NewCheckFollowUpsUseCase(
	leadRepo LeadRepositoryInterface,
	followUpRepo FollowUpRepositoryInterface,
	alerts AlertProducerInterface,
) *CheckFollowUpsUseCase {
	return &CheckFollowUpsUseCase{
		LeadRepo:     leadRepo,
		FollowUpRepo: followUpRepo,
		Alerts:       alerts,
	}
}

// Execute vira SENT todo follow-up vencido até `now` e dispara um alerta por
// follow-up. Idempotente: quem já está SENT nunca é selecionado de novo, então
// chamar duas vezes com o mesmo `now` alerta cada follow-up exatamente uma vez.
// O UPDATE condicional no banco garante isso mesmo com varreduras concorrentes.
func (uc *CheckFollowUpsUseCase) Execute(ctx context.Context, now time.Time) ([]*entity.FollowUp, error) {
	due, err := uc.FollowUpRepo.MarkDueSent(ctx, now)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to sweep due follow-ups: " + err.Error(),
		}
	}

	for _, followUp := range due {
		if err := uc.LeadRepo.MarkSent(ctx, followUp.LeadID); err != nil {
			log.Printf("⚠️ Lead %s não marcado como SENT: %v", followUp.LeadID, err)
		}

		if uc.Alerts == nil {
			continue
		}

		lead, err := uc.LeadRepo.FindByID(ctx, followUp.LeadID)
		if err != nil {
			// Referência fraca: o lead pode ter sumido. O follow-up já está
			// SENT e fica assim, sem retentativa.
			log.Printf("⚠️ Lead %s não encontrado para alerta de follow-up: %v", followUp.LeadID, err)
			continue
		}

		if err := uc.Alerts.PublishLeadAlert(ctx, queue.NewLeadAlert(lead, queue.AlertReasonFollowUpDue)); err != nil {
			log.Printf("⚠️ Alerta de follow-up não publicado (%s): %v", followUp.ID, err)
		}
	}

	return due, nil
}
