package appointments

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vet-clinic/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToEverySubscriber(t *testing.T) {
	bus := NewBus(logger.Nop(), time.Second)

	var mu sync.Mutex
	got := map[string]int{}
	for _, name := range []string{"a", "b"} {
		bus.OnAppointmentChanged(func(ctx context.Context, ev ChangeEvent) {
			mu.Lock()
			defer mu.Unlock()
			got[name]++
		})
	}
	assert.Equal(t, 2, bus.SubscribersCount())

	bus.Publish(ChangeEvent{Appointment: Appointment{ID: "a1"}, Source: SourceCancel})
	bus.Wait()

	assert.Equal(t, map[string]int{"a": 1, "b": 1}, got)
}

func TestBus_PanicIsContained(t *testing.T) {
	bus := NewBus(logger.Nop(), time.Second)

	var calls atomic.Int32
	bus.OnAppointmentChanged(func(ctx context.Context, ev ChangeEvent) {
		panic("notifier exploded")
	})
	bus.OnAppointmentChanged(func(ctx context.Context, ev ChangeEvent) {
		calls.Add(1)
	})

	require.NotPanics(t, func() {
		bus.Publish(ChangeEvent{Appointment: Appointment{ID: "a1"}})
		bus.Wait()
	})
	assert.Equal(t, int32(1), calls.Load())
}

func TestBus_HandlerContextOutlivesPublisher(t *testing.T) {
	bus := NewBus(logger.Nop(), 50*time.Millisecond)

	errCh := make(chan error, 1)
	bus.OnAppointmentChanged(func(ctx context.Context, ev ChangeEvent) {
		_, hasDeadline := ctx.Deadline()
		if !hasDeadline {
			errCh <- context.DeadlineExceeded
			return
		}
		errCh <- ctx.Err()
	})

	bus.Publish(ChangeEvent{Appointment: Appointment{ID: "a1"}})
	bus.Wait()

	assert.NoError(t, <-errCh)
}

func TestBus_PublishDoesNotBlock(t *testing.T) {
	bus := NewBus(logger.Nop(), time.Second)

	release := make(chan struct{})
	bus.OnAppointmentChanged(func(ctx context.Context, ev ChangeEvent) {
		<-release
	})

	done := make(chan struct{})
	go func() {
		bus.Publish(ChangeEvent{Appointment: Appointment{ID: "a1"}})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow handler")
	}
	close(release)
	bus.Wait()
}

func TestBus_NoSubscribersIsFine(t *testing.T) {
	bus := NewBus(nil, 0)
	bus.OnAppointmentChanged(nil)

	assert.Equal(t, 0, bus.SubscribersCount())
	assert.NotPanics(t, func() {
		bus.Publish(ChangeEvent{Appointment: Appointment{ID: "a1"}})
		bus.Wait()
	})
}
