package worker

import (
	"context"
	"log"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/entity"
	"github.com/aurumprivate/aurum-leads/internal/infra/http/middleware"
)

// FollowUpChecker é o que o worker precisa do caso de uso de varredura.
type FollowUpChecker interface {
	Execute(ctx context.Context, now time.Time) ([]*entity.FollowUp, error)
}

// FollowUpWorker roda a varredura de follow-ups vencidos em intervalo fixo.
// Para quando o contexto é cancelado.
type FollowUpWorker struct {
	checker      FollowUpChecker
	tickInterval time.Duration
}

func NewFollowUpWorker(checker FollowUpChecker, tickInterval time.Duration) *FollowUpWorker {
	if tickInterval <= 0 {
		tickInterval = 1 * time.Minute
	}

	return &FollowUpWorker{
		checker:      checker,
		tickInterval: tickInterval,
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	log.Printf("🕒 Follow-up Worker iniciado (tick de %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Follow-up Worker encerrado")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *FollowUpWorker) sweep(ctx context.Context) {
	sent, err := w.checker.Execute(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Erro na varredura de follow-ups: %v", err)
		return
	}

	for range sent {
		middleware.RecordFollowUpSent()
	}

	if len(sent) > 0 {
		log.Printf("✅ %d follow-up(s) marcados como SENT", len(sent))
	}
}
