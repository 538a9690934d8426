package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barkeep/internal/pkg/config"
	"barkeep/internal/pkg/errs"
	"barkeep/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	subscriberBuffer    = 16
	redisConnectTimeout = 5 * time.Second
)

// RedisNotifier fans committed domain changes out over redis pub/sub. One
// channel per session carries order and pause events; a single catalog
// channel carries menu and stock events for every connected guest.
type RedisNotifier struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

func NewRedisNotifier(client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client: client,
		prefix: cfg.Prefix,
		logger: logger,
	}
}

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func (n *RedisNotifier) PublishSession(ctx context.Context, sessionID uuid.UUID, ev shared.Event) error {
	return n.publish(ctx, n.sessionChannel(sessionID), ev)
}

func (n *RedisNotifier) PublishCatalog(ctx context.Context, ev shared.Event) error {
	return n.publish(ctx, n.catalogChannel(), ev)
}

func (n *RedisNotifier) SubscribeSession(ctx context.Context, sessionID uuid.UUID) (<-chan shared.Event, func(), error) {
	return n.subscribe(ctx, n.sessionChannel(sessionID))
}

func (n *RedisNotifier) SubscribeCatalog(ctx context.Context) (<-chan shared.Event, func(), error) {
	return n.subscribe(ctx, n.catalogChannel())
}

func (n *RedisNotifier) publish(ctx context.Context, channel string, ev shared.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}
	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

func (n *RedisNotifier) subscribe(ctx context.Context, channel string) (<-chan shared.Event, func(), error) {
	sub := n.client.Subscribe(ctx, channel)

	// Confirm the subscription before handing out the channel so callers
	// never miss events published right after subscribing.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, errs.Wrap(err, "failed to subscribe")
	}

	events := make(chan shared.Event, subscriberBuffer)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var ev shared.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				n.logger.Warn("dropping malformed event", "channel", channel, "error", err.Error())
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			default:
				// Slow consumer: drop rather than block the relay. Events are
				// refresh hints, subscribers re-read on the next one.
				n.logger.Warn("dropping event for slow subscriber", "channel", channel, "type", ev.Type)
			}
		}
	}()

	cancel := func() {
		_ = sub.Close()
	}
	return events, cancel, nil
}

func (n *RedisNotifier) sessionChannel(sessionID uuid.UUID) string {
	return n.prefix + ":session:" + sessionID.String()
}

func (n *RedisNotifier) catalogChannel() string {
	return n.prefix + ":catalog"
}
