package usecase

import "context"

type DashboardUseCase struct {
	LeadRepo     LeadRepositoryInterface
	FollowUpRepo FollowUpRepositoryInterface
}

func NewDashboardUseCase(
	leadRepo LeadRepositoryInterface,
	followUpRepo FollowUpRepositoryInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		LeadRepo:     leadRepo,
		FollowUpRepo: followUpRepo,
	}
}

// Execute agrega o estado atual da base: contagens por categoria, follow-ups
// pendentes e qualidade média. Leitura pura, recalculada a cada chamada.
func (uc *DashboardUseCase) Execute(ctx context.Context) (*DashboardOutput, error) {
	stats, err := uc.LeadRepo.Stats(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to aggregate lead stats: " + err.Error(),
		}
	}

	scheduled, err := uc.FollowUpRepo.CountScheduled(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to count scheduled follow-ups: " + err.Error(),
		}
	}

	return &DashboardOutput{
		TotalLeads:         stats.Total,
		HotLeads:           stats.Hot,
		WarmLeads:          stats.Warm,
		ColdLeads:          stats.Cold,
		ScheduledFollowUps: scheduled,
		AverageQuality:     stats.AverageQuality,
	}, nil
}
