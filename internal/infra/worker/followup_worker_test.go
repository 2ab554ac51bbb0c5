package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aurumprivate/aurum-leads/internal/entity"
)

type stubChecker struct {
	calls int64
	err   error
}

func (s *stubChecker) Execute(ctx context.Context, now time.Time) ([]*entity.FollowUp, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return []*entity.FollowUp{}, nil
}

// TestFollowUpWorkerSweepsOnTick - varre na largada e a cada tick até o cancel
func TestFollowUpWorkerSweepsOnTick(t *testing.T) {
	checker := &stubChecker{}
	w := NewFollowUpWorker(checker, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker não parou após o cancelamento do contexto")
	}

	// Uma na largada + pelo menos uma de tick
	assert.GreaterOrEqual(t, atomic.LoadInt64(&checker.calls), int64(2))
}

// TestFollowUpWorkerSurvivesSweepError - erro de varredura não derruba o loop
func TestFollowUpWorkerSurvivesSweepError(t *testing.T) {
	checker := &stubChecker{err: errors.New("connection refused")}
	w := NewFollowUpWorker(checker, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(40 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker não parou após o cancelamento do contexto")
	}

	assert.GreaterOrEqual(t, atomic.LoadInt64(&checker.calls), int64(2))
}

// TestFollowUpWorkerDefaultInterval - intervalo inválido cai no padrão de 1min
func TestFollowUpWorkerDefaultInterval(t *testing.T) {
	w := NewFollowUpWorker(&stubChecker{}, 0)
	assert.Equal(t, 1*time.Minute, w.tickInterval)
}
