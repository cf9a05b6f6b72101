package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "clinic:notifications"

// RedisRelay reparte los broadcasts entre instancias: Broadcast publica en Redis
// y Run (una goroutine por instancia) reenvía lo recibido al Hub local.
type RedisRelay struct {
	rdb     *redis.Client
	channel string
	hub     *Hub
	log     logger.Logger
}

func NewRedisRelay(rdb *redis.Client, channel string, hub *Hub, log logger.Logger) *RedisRelay {
	if strings.TrimSpace(channel) == "" {
		channel = DefaultChannel
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisRelay{
		rdb:     rdb,
		channel: channel,
		hub:     hub,
		log:     log.With(map[string]any{"component": "redis_relay", "channel": channel}),
	}
}

// Broadcast publica el envelope. Si Redis falla se entrega al menos a los clientes locales.
func (r *RedisRelay) Broadcast(ctx context.Context, event string, payload any) error {
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		metrics.RealtimePushes.WithLabelValues("error").Inc()
		return err
	}

	if err := r.rdb.Publish(ctx, r.channel, msg).Err(); err != nil {
		metrics.RealtimePushes.WithLabelValues("error").Inc()
		if lerr := r.hub.broadcastRaw(ctx, msg); lerr != nil {
			return fmt.Errorf("redis publish: %w (local fallback: %v)", err, lerr)
		}
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Run se suscribe al canal hasta que ctx se cancele.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	// Receive confirma la suscripción antes de empezar a leer.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}
	r.log.Info("redis relay subscribed", nil)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			if err := r.hub.broadcastRaw(ctx, []byte(m.Payload)); err != nil {
				r.log.Warn("relay local broadcast failed", map[string]any{"error": err})
			}
		}
	}
}

// Ping se usa al arrancar para fallar temprano si REDIS_URL es inválida.
func (r *RedisRelay) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
