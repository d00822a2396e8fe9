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
		TransitionSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Push struct {
		Endpoint       string
		APIKey         string
		RequestTimeout time.Duration
	}

	Transitions struct {
		ApplyTimeout time.Duration
		MaxAttempts  int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topics          KafkaTopics
		ConsumerGroups  KafkaConsumerGroups
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		OrderReady            string
		AssignmentRequested   string
		SubOrderStatusChanged string
	}

	KafkaConsumerGroups struct {
		OrderReady            string
		SubOrderStatusChanged string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		SubOrderStatusChanged HandlerTimeouts
		OrderReady            HandlerTimeouts
	}

	HandlerTimeouts struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks       Tasks
		Server      HTTPServer
		Database    Database
		Push        Push
		Transitions Transitions
		Kafka       Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	sweepInterval, err := osGetEnvDuration("BACKGROUND_TRANSITION_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyTimeout, err := osGetEnvDuration("TRANSITION_APPLY_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxAttempts, err := osGetInt("TRANSITION_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pushTimeout, err := osGetEnvDuration("PUSH_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	subOrderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SUBORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderReadyTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_READY_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			TransitionSweepInterval: sweepInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Push: Push{
			Endpoint:       os.Getenv("PUSH_ENDPOINT"),
			APIKey:         os.Getenv("PUSH_API_KEY"),
			RequestTimeout: pushTimeout,
		},
		Transitions: Transitions{
			ApplyTimeout: applyTimeout,
			MaxAttempts:  maxAttempts,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Topics: KafkaTopics{
				OrderReady:            os.Getenv("KAFKA_TOPIC_ORDER_READY"),
				AssignmentRequested:   os.Getenv("KAFKA_TOPIC_ASSIGNMENT_REQUESTED"),
				SubOrderStatusChanged: os.Getenv("KAFKA_TOPIC_SUBORDER_STATUS_CHANGED"),
			},
			ConsumerGroups: KafkaConsumerGroups{
				OrderReady:            os.Getenv("KAFKA_CONSUMER_GROUP_ORDER_READY"),
				SubOrderStatusChanged: os.Getenv("KAFKA_CONSUMER_GROUP_SUBORDER_STATUS_CHANGED"),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				SubOrderStatusChanged: HandlerTimeouts{
					ProcessTimeout: subOrderStatusChangedTimeout,
				},
				OrderReady: HandlerTimeouts{
					ProcessTimeout: orderReadyTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Push.Endpoint == "" {
		return errors.New("PUSH_ENDPOINT is required")
	}
	if cfg.Push.APIKey == "" {
		return errors.New("PUSH_API_KEY is required")
	}
	if cfg.Push.RequestTimeout == time.Duration(0) {
		return errors.New("PUSH_REQUEST_TIMEOUT is required")
	}

	if cfg.Tasks.TransitionSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_TRANSITION_SWEEP_INTERVAL is required")
	}
	if cfg.Transitions.ApplyTimeout == time.Duration(0) {
		return errors.New("TRANSITION_APPLY_TIMEOUT is required")
	}
	if cfg.Transitions.MaxAttempts == 0 {
		return errors.New("TRANSITION_MAX_ATTEMPTS is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Topics.OrderReady == "" {
		return errors.New("KAFKA_TOPIC_ORDER_READY is required")
	}
	if cfg.Kafka.Topics.AssignmentRequested == "" {
		return errors.New("KAFKA_TOPIC_ASSIGNMENT_REQUESTED is required")
	}
	if cfg.Kafka.Topics.SubOrderStatusChanged == "" {
		return errors.New("KAFKA_TOPIC_SUBORDER_STATUS_CHANGED is required")
	}
	if cfg.Kafka.ConsumerGroups.OrderReady == "" {
		return errors.New("KAFKA_CONSUMER_GROUP_ORDER_READY is required")
	}
	if cfg.Kafka.ConsumerGroups.SubOrderStatusChanged == "" {
		return errors.New("KAFKA_CONSUMER_GROUP_SUBORDER_STATUS_CHANGED is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.SubOrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SUBORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	if cfg.Kafka.Handlers.OrderReady.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_READY_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
