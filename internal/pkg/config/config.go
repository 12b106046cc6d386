// Package config настройки процессов трекера из переменных окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		DraftsCleanupInterval time.Duration
		DraftTTL              time.Duration
	}

	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		LongRequestTimeout time.Duration // импорт таблиц и PDF
		RateLimiterQPS     int           // middleware rate limiter, запросов в секунду на пользователя
		RateLimiterBurst   int           // middleware rate limiter burst
		LookupDebounce     time.Duration // задержка type-ahead поиска
		PprofEnabled       bool
		PprofPort          string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Access struct {
		AdminKeyHash string
		TokenSecret  string
		TokenTTL     time.Duration
	}

	Storage struct {
		Root string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ShipmentStatusReported ShipmentStatusReported
	}

	ShipmentStatusReported struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Access   Access
		Storage  Storage
		Kafka    Kafka
	}
)

const (
	defaultTokenTTL       = 30 * time.Minute
	defaultLookupDebounce = 250 * time.Millisecond
	defaultDraftTTL       = 7 * 24 * time.Hour
	defaultLongTimeout    = 2 * time.Minute
	minTokenSecretLen     = 32
)

// Load конфигурация HTTP сервиса.
func Load() (*Config, error) {
	return load(validateServer, validateDatabase, validateAccess, validateStorage, validateTasks)
}

// LoadWorker конфигурация Kafka воркера статусов отгрузок.
func LoadWorker() (*Config, error) {
	return load(validateDatabase, validateKafka)
}

// LoadDatabase только подключение к базе, для trackerctl и тестов.
func LoadDatabase() (*Config, error) {
	return load(validateDatabase)
}

func load(validators ...func(cfg *Config) error) (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	errs := make([]error, 0, len(validators))
	for _, validate := range validators {
		errs = append(errs, validate(cfg))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	var e env

	cfg := &Config{
		LogLevel: e.str("LOG_LEVEL"),
		Tasks: Tasks{
			DraftsCleanupInterval: e.duration("BACKGROUND_DRAFTS_CLEANUP_INTERVAL", 0),
			DraftTTL:              e.duration("DRAFT_TTL", defaultDraftTTL),
		},
		Server: HTTPServer{
			Port:               e.str("PORT"),
			RequestTimeout:     e.duration("MIDDLEWARE_REQUEST_TIMEOUT", 0),
			LongRequestTimeout: e.duration("MIDDLEWARE_LONG_REQUEST_TIMEOUT", defaultLongTimeout),
			RateLimiterQPS:     e.int("MIDDLEWARE_RATE_LIMIT_QPS"),
			RateLimiterBurst:   e.int("MIDDLEWARE_RATE_LIMIT_BURST"),
			LookupDebounce:     e.duration("LOOKUP_DEBOUNCE", defaultLookupDebounce),
			PprofEnabled:       e.bool("PPROF_ENABLED"),
			PprofPort:          e.str("PPROF_PORT"),
		},
		Database: Database{
			Host:     e.str("POSTGRES_HOST"),
			Port:     e.str("POSTGRES_PORT"),
			User:     e.str("POSTGRES_USER"),
			Password: e.str("POSTGRES_PASSWORD"),
			DBName:   e.str("POSTGRES_DB"),
			SSLMode:  e.str("POSTGRES_SSLMODE"),
		},
		Access: Access{
			AdminKeyHash: e.str("ADMIN_KEY_HASH"),
			TokenSecret:  e.str("ADMIN_TOKEN_SECRET"),
			TokenTTL:     e.duration("ADMIN_TOKEN_TTL", defaultTokenTTL),
		},
		Storage: Storage{
			Root: e.str("STORAGE_ROOT"),
		},
		Kafka: Kafka{
			Brokers:         e.str("KAFKA_BROKERS"),
			Topic:           e.str("KAFKA_TOPIC"),
			ConsumerGroup:   e.str("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: e.str("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   e.str("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: e.bool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"),
			},
			Handlers: KafkaHandlers{
				ShipmentStatusReported: ShipmentStatusReported{
					ProcessTimeout: e.duration("KAFKA_HANDLER_SHIPMENT_STATUS_REPORTED_PROCESS_TIMEOUT", 0),
				},
			},
		},
	}
	return cfg, errors.Join(e.errs...)
}

func validateServer(cfg *Config) error {
	return errors.Join(
		required(cfg.Server.Port != "", "PORT"),
		required(cfg.Server.RequestTimeout > 0, "MIDDLEWARE_REQUEST_TIMEOUT"),
		required(cfg.Server.RateLimiterQPS > 0, "MIDDLEWARE_RATE_LIMIT_QPS"),
		required(cfg.Server.RateLimiterBurst > 0, "MIDDLEWARE_RATE_LIMIT_BURST"),
		required(!cfg.Server.PprofEnabled || cfg.Server.PprofPort != "", "PPROF_PORT"),
	)
}

func validateDatabase(cfg *Config) error {
	return errors.Join(
		required(cfg.Database.Host != "", "POSTGRES_HOST"),
		required(cfg.Database.Port != "", "POSTGRES_PORT"),
		required(cfg.Database.User != "", "POSTGRES_USER"),
		required(cfg.Database.Password != "", "POSTGRES_PASSWORD"),
		required(cfg.Database.DBName != "", "POSTGRES_DB"),
		required(cfg.Database.SSLMode != "", "POSTGRES_SSLMODE"),
	)
}

func validateAccess(cfg *Config) error {
	if cfg.Access.AdminKeyHash == "" {
		return errors.New("ADMIN_KEY_HASH is required (generate with trackerctl admin-key hash)")
	}
	if len(cfg.Access.TokenSecret) < minTokenSecretLen {
		return fmt.Errorf("ADMIN_TOKEN_SECRET is required and must be at least %d bytes", minTokenSecretLen)
	}
	return nil
}

func validateStorage(cfg *Config) error {
	return required(cfg.Storage.Root != "", "STORAGE_ROOT")
}

func validateTasks(cfg *Config) error {
	return required(cfg.Tasks.DraftsCleanupInterval > 0, "BACKGROUND_DRAFTS_CLEANUP_INTERVAL")
}

func validateKafka(cfg *Config) error {
	return errors.Join(
		required(cfg.Kafka.Brokers != "", "KAFKA_BROKERS"),
		required(cfg.Kafka.Topic != "", "KAFKA_TOPIC"),
		required(cfg.Kafka.ConsumerGroup != "", "KAFKA_CONSUMER_GROUP"),
		required(cfg.Kafka.PortHealthcheck != "", "KAFKA_HTTP_HEALTHCHECK_PORT"),
		required(cfg.Kafka.Sarama.Version != "", "KAFKA_SARAMA_VERSION"),
		required(cfg.Kafka.Handlers.ShipmentStatusReported.ProcessTimeout > 0,
			"KAFKA_HANDLER_SHIPMENT_STATUS_REPORTED_PROCESS_TIMEOUT"),
	)
}

func required(ok bool, key string) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%s is required", key)
}

// env копит ошибки разбора, чтобы сообщить обо всех неверных
// переменных за один запуск.
type env struct {
	errs []error
}

func (e *env) str(key string) string {
	return os.Getenv(key)
}

func (e *env) int(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	res, err := strconv.Atoi(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid int format for %s=%q: %w", key, val, err))
	}
	return res
}

// duration def подставляется, если переменная пуста или равна нулю.
func (e *env) duration(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	res, err := time.ParseDuration(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid duration format for %s=%q: %w", key, val, err))
		return def
	}
	if res == 0 {
		return def
	}
	return res
}

func (e *env) bool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	res, err := strconv.ParseBool(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid bool format for %s=%q: %w", key, val, err))
	}
	return res
}
