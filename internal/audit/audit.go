package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/tastebud-labs/foodadmin/internal/logger"
	"github.com/tastebud-labs/foodadmin/internal/models"
)

// Event is one admin mutation: who-does-what against which record.
// Events are advisory; a publish failure never fails the admin action.
type Event struct {
	Action     string            `json:"action"`
	Entity     string            `json:"entity"`
	EntityID   string            `json:"entity_id,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Publisher writes audit events to Kafka. A nil Publisher is valid and
// drops everything, so screens can hold one unconditionally.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.SugaredLogger
}

// NewPublisher builds the producer, or returns (nil, nil) when the
// audit trail is disabled.
func NewPublisher(cfg *models.Config) (*Publisher, error) {
	if !cfg.KafkaEnabled {
		return nil, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit producer: %w", err)
	}

	return &Publisher{
		producer: producer,
		topic:    cfg.AuditTopic,
		log:      logger.GetLogger(),
	}, nil
}

// Record publishes an event, stamping it if the caller did not.
func (p *Publisher) Record(event Event) {
	if p == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	msg, err := json.Marshal(event)
	if err != nil {
		p.log.Errorw("failed to encode audit event", "action", event.Action, "error", err)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		p.log.Errorw("failed to publish audit event", "topic", p.topic, "action", event.Action, "error", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
