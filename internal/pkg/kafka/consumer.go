package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"tracker/internal/pkg/config"
	"tracker/pkg/logger"
	"tracker/pkg/retrier"
	"tracker/pkg/retrier/backoff_adapter"
)

var (
	ErrNoBrokers    = errors.New("no kafka brokers configured")
	ErrTopicMissing = errors.New("kafka topic does not exist")
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

// ParseBrokers список брокеров из строки вида "host1:9092, host2:9092".
func ParseBrokers(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	return brokers, nil
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.Strategy = rebalanceStrategy

	return cfg, nil
}

// NewConsumer группа потребителей топика cfg.Topic. Доступность брокеров
// проверяется с ретраями до возврата.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers, err := ParseBrokers(cfg.Brokers)
	if err != nil {
		return nil, err
	}
	groupID := cfg.ConsumerGroup
	topics := []string{cfg.Topic}

	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	err = waitForTopic(ctx, kafkaLog, brokers, cfg.Topic, saramaConfig)
	if err != nil {
		clientCloseErr := client.Close()
		if clientCloseErr != nil {
			return nil, fmt.Errorf("kafka client connection: %w (failed to close: %w)", err, clientCloseErr)
		}
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx или ошибки группы. Consume возвращается
// на каждой ребалансировке, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			c.log.Info("kafka consumer group closed")
			return nil
		case err != nil:
			c.log.With(logger.NewField("error", err)).Error("kafka consume failed")
			return fmt.Errorf("consume %v: %w", c.topics, err)
		}

		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopping")
			return ctx.Err()
		}
		c.log.Info("kafka consumer rebalanced, rejoining group")
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// waitForTopic ждёт, пока брокер ответит и топик статусов появится в
// метаданных: в compose топик создаёт отдельный init-контейнер.
func waitForTopic(ctx context.Context, log logger.Logger, brokers []string, topic string, cfg *sarama.Config) error {
	policy := retrier.Startup()
	policy.OnRetry = func(attempt uint64, err error, wait time.Duration) {
		log.With(
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("kafka is not ready")
	}

	err := backoff_adapter.New(policy).Do(ctx, func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.With(logger.NewField("error", err)).Warn("close kafka probe client")
			}
		}()

		topics, err := client.Topics()
		if err != nil {
			return err
		}
		if !slices.Contains(topics, topic) {
			return fmt.Errorf("%w: %s", ErrTopicMissing, topic)
		}
		return nil
	})
	if err != nil {
		log.With(logger.NewField("error", err)).Error("kafka connection failed")
		return fmt.Errorf("connect to kafka: %w", err)
	}

	log.Info("kafka connection established")
	return nil
}
