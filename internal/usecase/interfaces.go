package usecase

import (
	"context"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/entity"
	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Lead, error)
	MarkSent(ctx context.Context, id string) error
	Stats(ctx context.Context) (*entity.LeadStats, error)
}

type FollowUpRepositoryInterface interface {
	Create(ctx context.Context, followUp *entity.FollowUp) error
	// MarkDueSent vira SCHEDULED -> SENT para todo follow-up vencido até `now`
	// e devolve os que mudaram nessa chamada (e só esses).
	MarkDueSent(ctx context.Context, now time.Time) ([]*entity.FollowUp, error)
	CountScheduled(ctx context.Context) (int, error)
}

type AlertProducerInterface interface {
	PublishLeadAlert(ctx context.Context, payload queue.LeadAlertPayload) error
}
