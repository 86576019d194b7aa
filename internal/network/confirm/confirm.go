package confirm

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/network/middleware"
)

// Путь возврата из 3-DS подтверждения
const RedirectPath = "/checkout/redirect"

// Outcome - закрытое множество исходов 3-DS подтверждения:
// Success, Fail, Cancelled
type Outcome interface {
	isConfirmOutcome()
}

// Success - эмитент подтвердил платёж
type Success struct {
	RequestID string
}

func (Success) isConfirmOutcome() {}

// Fail - эмитент отклонил подтверждение
type Fail struct {
	Reason string
}

func (Fail) isConfirmOutcome() {}

// Cancelled - пользователь закрыл экран подтверждения
type Cancelled struct{}

func (Cancelled) isConfirmOutcome() {}

// Listener - loopback-сервер, принимающий возврат пользователя после
// 3-DS подтверждения на стороне эмитента
type Listener struct {
	server   *http.Server
	outcomes chan Outcome
	addr     string
}

// NewListener - создание и запуск слушателя на свободном loopback-порту
func NewListener() (*Listener, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	l := &Listener{
		outcomes: make(chan Outcome, 1),
		addr:     listener.Addr().String(),
	}

	r := chi.NewRouter()
	r.Use(middleware.LogHandle)
	r.Get(RedirectPath, l.handleRedirect)

	l.server = &http.Server{Handler: r}
	go func() {
		if err := l.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen confirmation server", err.Error())
		}
	}()

	logger.Info("Confirmation listener started", "addr", l.addr)
	return l, nil
}

// ReturnURL - адрес возврата, который передаётся шлюзу при токенизации
func (l *Listener) ReturnURL() string {
	return "http://" + l.addr + RedirectPath
}

func (l *Listener) handleRedirect(w http.ResponseWriter, r *http.Request) {
	var outcome Outcome
	switch r.URL.Query().Get("result") {
	case "success":
		outcome = Success{RequestID: r.URL.Query().Get("requestId")}
	default:
		outcome = Fail{Reason: r.URL.Query().Get("reason")}
	}

	select {
	case l.outcomes <- outcome:
	default:
		// повторный редирект игнорируется, исход уже зафиксирован
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Вы можете вернуться в приложение"))
}

// Await - ожидание исхода подтверждения. Отмена контекста трактуется
// как закрытие экрана пользователем.
func (l *Listener) Await(ctx context.Context) (Outcome, error) {
	defer l.shutdown()
	select {
	case outcome := <-l.outcomes:
		return outcome, nil
	case <-ctx.Done():
		return Cancelled{}, nil
	}
}

func (l *Listener) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown confirmation server", err.Error())
	}
}
