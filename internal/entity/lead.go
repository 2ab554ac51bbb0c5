package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryHot  = "HOT"
	CategoryWarm = "WARM"
	CategoryCold = "COLD"

	LeadStatusNew  = "NEW"
	LeadStatusSent = "SENT"
)

// Entidade: Lead
type Lead struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Company      string `json:"company,omitempty"`
	Position     string `json:"position,omitempty"`
	Revenue      string `json:"revenue,omitempty"`
	Requirements string `json:"requirements,omitempty"`
	PlanName     string `json:"plan_name,omitempty"`

	// Quality é calculado uma única vez na criação e nunca recalculado.
	Quality      int       `json:"quality"`
	Category     string    `json:"category"`
	FollowUpDate time.Time `json:"follow_up_date"`
	Status       string    `json:"status"` // NEW, SENT

	// Reservados para enriquecimento futuro; nenhum fluxo escreve neles hoje.
	Interactions []string `json:"interactions"`
	Notes        []string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Estatísticas agregadas da base de leads (lado de leitura).
type LeadStats struct {
	Total          int     `json:"total"`
	Hot            int     `json:"hot"`
	Warm           int     `json:"warm"`
	Cold           int     `json:"cold"`
	AverageQuality float64 `json:"average_quality"`
}

// Factory
func NewLead(firstName, lastName, email, company, position, revenue, requirements, planName string, now time.Time) *Lead {
	quality := Score(revenue, position, company)
	category := Categorize(quality)

	return &Lead{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Company:      company,
		Position:     position,
		Revenue:      revenue,
		Requirements: requirements,
		PlanName:     planName,

		Quality:      quality,
		Category:     category,
		FollowUpDate: ScheduleFollowUp(category, now),
		Status:       LeadStatusNew,

		Interactions: []string{},
		Notes:        []string{},

		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *Lead) Validate() error {
	if l.FirstName == "" {
		return errors.New("first name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}
