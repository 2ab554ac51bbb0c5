package usecase

import (
	"context"
	"log"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/entity"
	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
)

type AddLeadUseCase struct {
	LeadRepo     LeadRepositoryInterface
	FollowUpRepo FollowUpRepositoryInterface
	Alerts       AlertProducerInterface
}

func NewAddLeadUseCase(
	leadRepo LeadRepositoryInterface,
	followUpRepo FollowUpRepositoryInterface,
	alerts AlertProducerInterface,
) *AddLeadUseCase {
	return &AddLeadUseCase{
		LeadRepo:     leadRepo,
		FollowUpRepo: followUpRepo,
		Alerts:       alerts,
	}
}

// Execute transforma a submissão do formulário em um Lead pontuado e
// categorizado, com o FollowUp pareado criado junto (atômico via saga).
// O alerta pro operador sai DEPOIS da persistência e nunca a bloqueia.
func (uc *AddLeadUseCase) Execute(ctx context.Context, input LeadSubmissionInput) (*LeadOutput, error) {
	validationErrors := ValidateLeadSubmission(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	lead := entity.NewLead(
		input.FirstName,
		input.LastName,
		input.Email,
		input.Company,
		input.Position,
		input.Revenue,
		input.Requirements,
		input.PlanName,
		time.Now(),
	)

	followUp := entity.NewFollowUp(lead)

	txn := NewTransaction()

	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Create(ctx, lead)
	})

	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Delete(ctx, lead.ID)
	})

	txn.AddOperation("create_follow_up", func(ctx context.Context) error {
		return uc.FollowUpRepo.Create(ctx, followUp)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead and follow-up: " + err.Error(),
		}
	}

	// Fire-and-forget: falha no alerta não desfaz o lead já gravado.
	if uc.Alerts != nil {
		if err := uc.Alerts.PublishLeadAlert(ctx, queue.NewLeadAlert(lead, queue.AlertReasonNewLead)); err != nil {
			log.Printf("⚠️ Alerta de lead novo não publicado (%s): %v", lead.ID, err)
		}
	}

	return &LeadOutput{
		ID:           lead.ID,
		Quality:      lead.Quality,
		Category:     lead.Category,
		FollowUpDate: lead.FollowUpDate,
		Status:       lead.Status,
		Msg:          "Lead registrado com sucesso!",
	}, nil
}
