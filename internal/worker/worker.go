package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "token-revoke",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучаться до шлюза
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// RevokeWorker - фоновый best-effort отзыв токенов авторизации на шлюзе.
// Logout кладёт отозванный локально токен в очередь и не ждёт результата:
// консистентность локального состояния важнее удалённой очистки.
type RevokeWorker struct {
	Gateway     client.AuthGateway
	Breaker     *gobreaker.CircuitBreaker
	WaitGroup   sync.WaitGroup
	QuitChan    chan struct{}
	queue       chan string
	CallTimeout time.Duration
}

// NewRevokeWorker - конструктор обработчика отзыва токенов
func NewRevokeWorker(gateway client.AuthGateway) *RevokeWorker {
	return &RevokeWorker{
		Gateway:     gateway,
		Breaker:     InitCircuitBreaker(),
		QuitChan:    make(chan struct{}),
		queue:       make(chan string, 16),
		CallTimeout: 10 * time.Second,
	}
}

// Enqueue - постановка токена в очередь отзыва. Переполненная очередь
// не блокирует вызывающего, токен просто истечёт сам.
func (w *RevokeWorker) Enqueue(token string) {
	select {
	case w.queue <- token:
	default:
		logger.Warn("Revoke queue is full, token dropped")
	}
}

// Start - запускает воркер в фоне
func (w *RevokeWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *RevokeWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *RevokeWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("RevokeWorker signal stop")
			return
		case <-ctx.Done():
			return
		case token := <-w.queue:
			w.Revoke(ctx, token)
		}
	}
}

// Revoke - отзыв одного токена под circuit breaker
func (w *RevokeWorker) Revoke(ctx context.Context, token string) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Token revoke skipped", w.Breaker.Name())
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, w.CallTimeout)
	defer cancel()

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return nil, w.Gateway.RevokeToken(callCtx, token)
	})
	if err != nil {
		// best-effort: ошибка не распространяется
		logger.Error("Error token revoke", err)
		return
	}
	logger.Info("Token revoked")
}
