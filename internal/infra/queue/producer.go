package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/aurumprivate/aurum-leads/internal/entity"
)

const (
	AlertReasonNewLead     = "NEW_LEAD"
	AlertReasonFollowUpDue = "FOLLOW_UP_DUE"
)

// LeadAlertPayload é a mensagem que avisa o operador sobre um lead novo ou
// sobre um follow-up vencido. Quem consome decide o canal (email, webhook).
type LeadAlertPayload struct {
	LeadID       string    `json:"lead_id"`
	Reason       string    `json:"reason"` // NEW_LEAD, FOLLOW_UP_DUE
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Revenue      string    `json:"revenue"`
	Quality      int       `json:"quality"`
	Category     string    `json:"category"`
	PlanName     string    `json:"plan_name"`
	FollowUpDate time.Time `json:"follow_up_date"`
}

// NewLeadAlert monta o payload a partir do lead.
func NewLeadAlert(lead *entity.Lead, reason string) LeadAlertPayload {
	return LeadAlertPayload{
		LeadID:       lead.ID,
		Reason:       reason,
		Name:         lead.FullName(),
		Email:        lead.Email,
		Company:      lead.Company,
		Position:     lead.Position,
		Revenue:      lead.Revenue,
		Quality:      lead.Quality,
		Category:     lead.Category,
		PlanName:     lead.PlanName,
		FollowUpDate: lead.FollowUpDate,
	}
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadAlert(ctx context.Context, payload LeadAlertPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
