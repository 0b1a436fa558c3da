package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/saranraj027/alliance-matrimony-backend/config"
)

var kafkaWriter *kafka.Writer

// InitializeKafka sets up the shared writer for notification events.
// Publishing is best-effort; the app keeps working if the broker is down.
func InitializeKafka(cfg *config.Config) {
	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}
	log.Printf("✅ Kafka writer ready (brokers=%s topic=%s)", cfg.KafkaBrokers, cfg.KafkaTopic)
}

// PublishEvent serializes the payload and publishes it under the given key
func PublishEvent(key string, payload interface{}) error {
	if kafkaWriter == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: body,
	})
}

// NewKafkaReader builds a consumer for the notification topic
func NewKafkaReader(cfg *config.Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		Topic:    cfg.KafkaTopic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
