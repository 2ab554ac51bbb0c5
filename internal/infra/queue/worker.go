package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/aurumprivate/aurum-leads/internal/infra/http/middleware"
)

// AlertSender define o contrato dos canais de entrega (email, webhook...).
type AlertSender interface {
	DeliverAlert(ctx context.Context, payload LeadAlertPayload) error
}

// Worker consome a fila de alertas e entrega nos canais configurados.
// Desacoplado do banco: tudo que ele precisa está no payload.
type Worker struct {
	Channel *amqp.Channel
	Email   AlertSender
	Webhook AlertSender
}

func NewWorker(ch *amqp.Channel, email, webhook AlertSender) *Worker {
	return &Worker{
		Channel: ch,
		Email:   email,
		Webhook: webhook,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadAlertPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Alerta recebido: %s (%s, lead %s)", payload.Reason, payload.Category, payload.LeadID)

			if err := w.deliver(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Falha na entrega: %s", err)
				// Sem retentativa: vai para a DLQ e segue o baile.
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de alertas rodando na fila '%s'", queueName)
	<-forever
}

// deliver tenta todos os canais configurados. Basta um entregar para a
// mensagem ser considerada processada.
func (w *Worker) deliver(ctx context.Context, payload LeadAlertPayload) error {
	if w.Email == nil && w.Webhook == nil {
		log.Printf("⚠️ [WORKER] Nenhum canal de alerta configurado, descartando %s", payload.LeadID)
		return nil
	}

	var lastErr error
	delivered := false

	if w.Email != nil {
		if err := w.Email.DeliverAlert(ctx, payload); err != nil {
			log.Printf("❌ [WORKER] Email falhou para lead %s: %s", payload.LeadID, err)
			middleware.RecordAlertError("email")
			lastErr = err
		} else {
			delivered = true
		}
	}

	if w.Webhook != nil {
		if err := w.Webhook.DeliverAlert(ctx, payload); err != nil {
			log.Printf("❌ [WORKER] Webhook falhou para lead %s: %s", payload.LeadID, err)
			middleware.RecordAlertError("webhook")
			lastErr = err
		} else {
			delivered = true
		}
	}

	if !delivered {
		return lastErr
	}

	return nil
}
