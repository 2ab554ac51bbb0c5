package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
)

// Client entrega alertas em um webhook HTTP genérico (formato compatível com
// Slack incoming webhooks: campo "text" + anexo com os dados do lead).
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		webhookURL: os.Getenv("ALERT_WEBHOOK_URL"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

func (c *Client) DeliverAlert(ctx context.Context, payload queue.LeadAlertPayload) error {
	if c.webhookURL == "" {
		log.Println("⚠️ Webhook: ALERT_WEBHOOK_URL não configurada")
		return fmt.Errorf("webhook não configurado")
	}

	text := fmt.Sprintf("Novo lead %s: %s (%s, %s) - %d pts, follow-up até %s",
		payload.Category, payload.Name, payload.Company, payload.Position,
		payload.Quality, payload.FollowUpDate.Format(time.RFC1123))
	if payload.Reason == queue.AlertReasonFollowUpDue {
		text = fmt.Sprintf("Follow-up vencido: %s (%s) - lead %s",
			payload.Name, payload.Category, payload.LeadID)
	}

	body, err := json.Marshal(map[string]interface{}{
		"text": text,
		"lead": payload,
	})
	if err != nil {
		log.Printf("❌ Webhook: Erro ao serializar payload: %v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("❌ Webhook: Erro ao criar requisição: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Webhook: Erro ao enviar alerta: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("❌ Webhook: endpoint retornou status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("webhook error: %d", resp.StatusCode)
	}

	return nil
}
