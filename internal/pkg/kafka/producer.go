package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"dispatch/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(log logger.Logger, versionStr string, brokers []string, topic string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log: log.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", topic),
		),
		producer: producer,
		topic:    topic,
	}, nil
}

// Send publishes one message keyed by key. Keying by order id keeps all
// events of one order in a single partition, so their relative order is
// preserved for consumers.
func (p *Producer) Send(key string, value []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send message to %s: %w", p.topic, err)
	}

	p.log.With(
		logger.NewField("key", key),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("message produced")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
