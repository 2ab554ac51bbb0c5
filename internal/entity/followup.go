package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	FollowUpStatusScheduled = "SCHEDULED"
	FollowUpStatusSent      = "SENT"

	FollowUpTypeImmediate = "IMMEDIATE"
	FollowUpTypeScheduled = "SCHEDULED"
)

// FollowUp é o lembrete 1:1 pareado com um Lead. Referencia o lead por id
// (referência fraca, sem FK). Transição de status: SCHEDULED -> SENT, sem volta.
type FollowUp struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	FollowUpDate time.Time `json:"follow_up_date"`
	Status       string    `json:"status"` // SCHEDULED, SENT
	Type         string    `json:"type"`   // IMMEDIATE, SCHEDULED
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewFollowUp cria o follow-up pareado com o lead. Lead HOT gera follow-up
// IMMEDIATE; os demais ficam SCHEDULED.
func NewFollowUp(lead *Lead) *FollowUp {
	fuType := FollowUpTypeScheduled
	if lead.Category == CategoryHot {
		fuType = FollowUpTypeImmediate
	}

	return &FollowUp{
		ID:           uuid.New().String(),
		LeadID:       lead.ID,
		FollowUpDate: lead.FollowUpDate,
		Status:       FollowUpStatusScheduled,
		Type:         fuType,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.CreatedAt,
	}
}

// Due informa se o follow-up agendado já venceu.
func (f *FollowUp) Due(now time.Time) bool {
	return f.Status == FollowUpStatusScheduled && !f.FollowUpDate.After(now)
}
