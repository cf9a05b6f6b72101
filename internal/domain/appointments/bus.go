package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
)

// ChangeHandler consume un ChangeEvent. Corre desacoplado del write path:
// no puede devolver error al caller, así que tiene que loguear lo suyo.
type ChangeHandler func(ctx context.Context, ev ChangeEvent)

// Publisher es lo único que el write path conoce del canal de notificación.
type Publisher interface {
	Publish(ev ChangeEvent)
}

const DefaultHandlerTimeout = 10 * time.Second

// Bus es un pub/sub en proceso, inyectado (no global). Publish no bloquea:
// cada handler corre en su goroutine con un context propio (el del request ya puede estar cancelado).
type Bus struct {
	mu       sync.RWMutex
	handlers []ChangeHandler

	wg      sync.WaitGroup
	log     logger.Logger
	timeout time.Duration
}

func NewBus(log logger.Logger, timeout time.Duration) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultHandlerTimeout
	}
	return &Bus{log: log, timeout: timeout}
}

// OnAppointmentChanged registra un handler.
func (b *Bus) OnAppointmentChanged(h ChangeHandler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) SubscribersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

func (b *Bus) Publish(ev ChangeEvent) {
	b.mu.RLock()
	handlers := make([]ChangeHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	metrics.AppointmentChanges.WithLabelValues(string(ev.Source)).Inc()

	if len(handlers) == 0 {
		b.log.Warn("appointment change published with no subscribers", map[string]any{
			"appointment_id": ev.Appointment.ID,
			"source":         string(ev.Source),
		})
		return
	}

	for _, h := range handlers {
		b.wg.Add(1)
		go b.dispatch(h, ev)
	}
}

// Wait bloquea hasta que terminen los handlers en vuelo (shutdown y tests).
func (b *Bus) Wait() {
	b.wg.Wait()
}

func (b *Bus) dispatch(h ChangeHandler, ev ChangeEvent) {
	defer b.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			metrics.NotifierFailures.WithLabelValues("panic").Inc()
			b.log.Error("appointment change handler panicked", map[string]any{
				"appointment_id": ev.Appointment.ID,
				"panic":          fmt.Sprint(r),
			})
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	h(ctx, ev)
}
