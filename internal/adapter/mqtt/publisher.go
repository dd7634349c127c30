// Package mqtt publishes consumption events to an MQTT broker.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/config"
	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

const disconnectQuiesceMs = 250

var (
	errPublishTimeout = errors.New("publish timed out")
	errConnectTimeout = errors.New("connect timed out")
)

// Publisher sends reading and recommendation events. Publish failures are
// logged, never returned: events are best effort.
type Publisher struct {
	client  paho.Client
	prefix  string
	qos     byte
	timeout time.Duration
	log     *slog.Logger
}

// New connects to the broker described by cfg.
func New(cfg config.MQTTConfig, log *slog.Logger) (*Publisher, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("mqtt: broker address is required")
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(cfg.Timeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := paho.NewClient(opts)
	if err := connect(client, cfg.Timeout); err != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", cfg.Broker, err)
	}

	return newPublisher(client, cfg, log), nil
}

// connect waits up to timeout for the first connection. With connect retry
// enabled the client keeps dialing in the background, so it is stopped on
// every failure.
func connect(client paho.Client, timeout time.Duration) error {
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)
		return errConnectTimeout
	}
	if err := token.Error(); err != nil {
		client.Disconnect(0)
		return err
	}
	return nil
}

func newPublisher(client paho.Client, cfg config.MQTTConfig, log *slog.Logger) *Publisher {
	return &Publisher{
		client:  client,
		prefix:  cfg.TopicPrefix,
		qos:     cfg.QoS,
		timeout: cfg.Timeout,
		log:     log.With("component", "mqtt"),
	}
}

type readingEvent struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"usuarioId"`
	Date        time.Time `json:"fecha"`
	KWh         float64   `json:"consumo"`
	CostUSD     *float64  `json:"costo,omitempty"`
	Device      *string   `json:"dispositivo,omitempty"`
	PublishedAt time.Time `json:"publicadoEn"`
}

type recommendationEvent struct {
	UserID        uuid.UUID `json:"usuarioId"`
	Category      string    `json:"tipo"`
	Message       string    `json:"mensaje"`
	PercentChange float64   `json:"porcentajeCambio"`
	PublishedAt   time.Time `json:"publicadoEn"`
}

// ReadingTopic is the topic new readings of userID are published to.
func (p *Publisher) ReadingTopic(userID uuid.UUID) string {
	return fmt.Sprintf("%s/users/%s/readings", p.prefix, userID)
}

// RecommendationTopic is the retained topic carrying userID's latest recommendation.
func (p *Publisher) RecommendationTopic(userID uuid.UUID) string {
	return fmt.Sprintf("%s/users/%s/recommendation", p.prefix, userID)
}

// PublishReading announces a newly stored reading.
func (p *Publisher) PublishReading(ctx context.Context, r domain.Reading) {
	p.publish(ctx, p.ReadingTopic(r.UserID), false, readingEvent{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.Date,
		KWh:         r.KWh,
		CostUSD:     r.CostUSD,
		Device:      r.Device,
		PublishedAt: time.Now().UTC(),
	})
}

// PublishRecommendation announces the latest recommendation for userID.
func (p *Publisher) PublishRecommendation(ctx context.Context, userID uuid.UUID, rec domain.Recommendation) {
	p.publish(ctx, p.RecommendationTopic(userID), true, recommendationEvent{
		UserID:        userID,
		Category:      rec.Category.String(),
		Message:       rec.Message,
		PercentChange: rec.PercentChange,
		PublishedAt:   time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, topic string, retained bool, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.ErrorContext(ctx, "encode event", slog.String("topic", topic), slog.String("error", err.Error()))
		return
	}

	if err := p.wait(ctx, p.client.Publish(topic, p.qos, retained, payload)); err != nil {
		p.log.WarnContext(ctx, "publish event", slog.String("topic", topic), slog.String("error", err.Error()))
		return
	}
	p.log.DebugContext(ctx, "event published", slog.String("topic", topic))
}

func (p *Publisher) wait(ctx context.Context, token paho.Token) error {
	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return errPublishTimeout
	}
}

// IsConnected reports whether the client currently holds a broker connection.
func (p *Publisher) IsConnected() bool {
	return p.client != nil && p.client.IsConnected()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(disconnectQuiesceMs)
	}
}

// Noop discards every event. Used when publishing is disabled.
type Noop struct{}

func (Noop) PublishReading(context.Context, domain.Reading) {}

func (Noop) PublishRecommendation(context.Context, uuid.UUID, domain.Recommendation) {}

// IsConnected is always true: there is no broker to lose.
func (Noop) IsConnected() bool { return true }

func (Noop) Close() {}
