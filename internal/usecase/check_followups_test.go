package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aurumprivate/aurum-leads/internal/entity"
	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
	"github.com/aurumprivate/aurum-leads/internal/usecase"
)

func dueFollowUp(leadID string, date time.Time) *entity.FollowUp {
	return &entity.FollowUp{
		ID:           "fu-" + leadID,
		LeadID:       leadID,
		FollowUpDate: date,
		Status:       entity.FollowUpStatusSent, // o repo devolve já virado
		Type:         entity.FollowUpTypeScheduled,
	}
}

// TestCheckFollowUpsMarksDueAndAlerts - follow-up vencido vira SENT e gera alerta
func TestCheckFollowUpsMarksDueAndAlerts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	mockLeadRepo := new(MockLeadRepository)
	mockFollowUpRepo := new(MockFollowUpRepository)
	mockAlerts := new(MockAlertProducer)

	due := []*entity.FollowUp{
		dueFollowUp("lead-1", now.Add(-time.Hour)),
		dueFollowUp("lead-2", now.Add(-time.Minute)),
	}

	lead1 := entity.NewLead("Ava", "Sterling", "ava@acmeglobal.com",
		"Acme Global Holdings", "CEO", "Over $1B", "", "", now.Add(-2*time.Hour))
	lead1.ID = "lead-1"
	lead2 := entity.NewLead("Bo", "", "bo@x.com", "X", "Analyst", "$1M - $10M", "", "", now.Add(-80*time.Hour))
	lead2.ID = "lead-2"

	mockFollowUpRepo.On("MarkDueSent", ctx, now).Return(due, nil)
	mockLeadRepo.On("MarkSent", ctx, "lead-1").Return(nil)
	mockLeadRepo.On("MarkSent", ctx, "lead-2").Return(nil)
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead1, nil)
	mockLeadRepo.On("FindByID", ctx, "lead-2").Return(lead2, nil)
	mockAlerts.On("PublishLeadAlert", ctx, mock.MatchedBy(func(p queue.LeadAlertPayload) bool {
		return p.Reason == queue.AlertReasonFollowUpDue
	})).Return(nil)

	uc := usecase.NewCheckFollowUpsUseCase(mockLeadRepo, mockFollowUpRepo, mockAlerts)

	sent, err := uc.Execute(ctx, now)

	assert.NoError(t, err)
	assert.Len(t, sent, 2)

	mockLeadRepo.AssertCalled(t, "MarkSent", ctx, "lead-1")
	mockLeadRepo.AssertCalled(t, "MarkSent", ctx, "lead-2")
	mockAlerts.AssertNumberOfCalls(t, "PublishLeadAlert", 2)
}

// TestCheckFollowUpsIdempotent - segunda varredura com o mesmo `now` é no-op
func TestCheckFollowUpsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	mockLeadRepo := new(MockLeadRepository)
	mockFollowUpRepo := new(MockFollowUpRepository)
	mockAlerts := new(MockAlertProducer)

	due := []*entity.FollowUp{dueFollowUp("lead-1", now.Add(-time.Hour))}
	lead1 := entity.NewLead("Ava", "", "ava@x.com", "", "", "", "", "", now)
	lead1.ID = "lead-1"

	// Primeira varredura encontra; a segunda já não encontra nada (status virou)
	mockFollowUpRepo.On("MarkDueSent", ctx, now).Return(due, nil).Once()
	mockFollowUpRepo.On("MarkDueSent", ctx, now).Return([]*entity.FollowUp{}, nil)
	mockLeadRepo.On("MarkSent", ctx, "lead-1").Return(nil)
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead1, nil)
	mockAlerts.On("PublishLeadAlert", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCheckFollowUpsUseCase(mockLeadRepo, mockFollowUpRepo, mockAlerts)

	first, err := uc.Execute(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := uc.Execute(ctx, now)
	assert.NoError(t, err)
	assert.Empty(t, second)

	// Cada follow-up alerta exatamente uma vez
	mockAlerts.AssertNumberOfCalls(t, "PublishLeadAlert", 1)
}

// TestCheckFollowUpsSweepError - falha do banco sobe como erro técnico
func TestCheckFollowUpsSweepError(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockLeadRepo := new(MockLeadRepository)
	mockFollowUpRepo := new(MockFollowUpRepository)
	mockAlerts := new(MockAlertProducer)

	mockFollowUpRepo.On("MarkDueSent", ctx, now).Return(nil, errors.New("connection refused"))

	uc := usecase.NewCheckFollowUpsUseCase(mockLeadRepo, mockFollowUpRepo, mockAlerts)

	sent, err := uc.Execute(ctx, now)

	assert.Error(t, err)
	assert.Nil(t, sent)
	assert.True(t, usecase.IsTechnicalError(err))
	mockAlerts.AssertNotCalled(t, "PublishLeadAlert")
}

// TestCheckFollowUpsLeadMissing - lead sumido não derruba a varredura
func TestCheckFollowUpsLeadMissing(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockLeadRepo := new(MockLeadRepository)
	mockFollowUpRepo := new(MockFollowUpRepository)
	mockAlerts := new(MockAlertProducer)

	due := []*entity.FollowUp{dueFollowUp("lead-gone", now.Add(-time.Hour))}

	mockFollowUpRepo.On("MarkDueSent", ctx, now).Return(due, nil)
	mockLeadRepo.On("MarkSent", ctx, "lead-gone").Return(errors.New("not found"))
	mockLeadRepo.On("FindByID", ctx, "lead-gone").Return(nil, errors.New("not found"))

	uc := usecase.NewCheckFollowUpsUseCase(mockLeadRepo, mockFollowUpRepo, mockAlerts)

	sent, err := uc.Execute(ctx, now)

	assert.NoError(t, err)
	assert.Len(t, sent, 1)
	mockAlerts.AssertNotCalled(t, "PublishLeadAlert")
}
