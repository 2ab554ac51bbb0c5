package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		To:       to,
	}
}

// DeliverAlert envia o alerta de lead para a caixa do operador via SMTP.
func (s *EmailSender) DeliverAlert(ctx context.Context, payload queue.LeadAlertPayload) error {
	data := LeadAlertEmailData{
		Reason:       payload.Reason,
		Name:         payload.Name,
		Email:        payload.Email,
		Company:      payload.Company,
		Position:     payload.Position,
		Revenue:      payload.Revenue,
		Quality:      payload.Quality,
		Category:     payload.Category,
		PlanName:     payload.PlanName,
		FollowUpDate: payload.FollowUpDate.Format(time.RFC1123),
	}

	tmplPath := filepath.Join("templates", "lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	subject := fmt.Sprintf("🔥 Lead %s: %s (%d pts)", payload.Category, payload.Name, payload.Quality)
	if payload.Reason == queue.AlertReasonFollowUpDue {
		subject = fmt.Sprintf("⏰ Follow-up vencido: %s (%s)", payload.Name, payload.Category)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "alerts@aurumprivate.com")
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
