package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/ramo772/blog-management-api/internal/logger"
)

// KafkaPublisher publishes events through a confluent-kafka-go producer.
type KafkaPublisher struct {
	Producer *kafka.Producer
	Brokers  string
}

// NewKafkaPublisher initializes the Kafka producer and starts the delivery
// report loop.
func NewKafkaPublisher(brokers string) (*KafkaPublisher, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	// Delivery reports and producer-level errors arrive on the Events channel.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("message delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaPublisher{
		Producer: p,
		Brokers:  brokers,
	}, nil
}

// Publish sends the event to the given topic, keyed by the event id.
func (k *KafkaPublisher) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.ID),
		Value:          data,
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return k.Producer.Produce(msg, nil)
}

// Close flushes outstanding messages and shuts the producer down.
func (k *KafkaPublisher) Close() {
	if k.Producer != nil {
		if remaining := k.Producer.Flush(5000); remaining > 0 {
			logger.Log.Warnf("%d messages still unflushed after close", remaining)
		}
		k.Producer.Close()
		logger.Log.Info("kafka producer closed")
	}
}
