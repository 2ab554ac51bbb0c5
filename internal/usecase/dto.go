package usecase

import "time"

type LeadSubmissionInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	Revenue      string `json:"revenue"`
	Requirements string `json:"requirements"`
	PlanName     string `json:"plan_name"`
}

type LeadOutput struct {
	ID           string    `json:"id"`
	Quality      int       `json:"quality"`
	Category     string    `json:"category"`
	FollowUpDate time.Time `json:"follow_up_date"`
	Status       string    `json:"status"`
	Msg          string    `json:"msg"`
}

type DashboardOutput struct {
	TotalLeads         int     `json:"total_leads"`
	HotLeads           int     `json:"hot_leads"`
	WarmLeads          int     `json:"warm_leads"`
	ColdLeads          int     `json:"cold_leads"`
	ScheduledFollowUps int     `json:"scheduled_follow_ups"`
	AverageQuality     float64 `json:"average_quality"`
}
