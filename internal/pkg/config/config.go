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
		DelayMonitorInterval  time.Duration
		DelayMonitorLockTTL   time.Duration
		PresenceSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
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

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Realtime struct {
		ProcessID         string
		MaxConnsPerUser   int
		HeartbeatInterval time.Duration
		// DeadMultiplier times HeartbeatInterval gives the silent-death
		// timeout after which a connection is swept.
		DeadMultiplier  int
		OfflineQueueTTL time.Duration
		GatewayToken    string
	}

	Notification struct {
		PushAttempts        uint64
		PushRetryInterval   time.Duration
		FCMEndpoint         string
		FCMServerKey        string
		ExpoEndpoint        string
		SendgridAPIKey      string
		SendgridFromName    string
		SendgridFromMail    string
		TwilioAccountSID    string
		TwilioAuthToken     string
		TwilioFromNumber    string
		ProviderCallTimeout time.Duration
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
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Redis        Redis
		Realtime     Realtime
		Notification Notification
		Kafka        Kafka
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
	delayMonitorInterval, err := osGetEnvDuration("BACKGROUND_DELAY_MONITOR_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	delayMonitorLockTTL, err := osGetEnvDuration("BACKGROUND_DELAY_MONITOR_LOCK_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	presenceSweepInterval, err := osGetEnvDuration("BACKGROUND_PRESENCE_SWEEP_INTERVAL")
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

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConnsPerUser, err := osGetInt("REALTIME_MAX_CONNS_PER_USER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	heartbeatInterval, err := osGetEnvDuration("REALTIME_HEARTBEAT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deadMultiplier, err := osGetInt("REALTIME_DEAD_MULTIPLIER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	offlineQueueTTL, err := osGetEnvDuration("REALTIME_OFFLINE_QUEUE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pushAttempts, err := osGetInt("NOTIFICATION_PUSH_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pushRetryInterval, err := osGetEnvDuration("NOTIFICATION_PUSH_RETRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	providerCallTimeout, err := osGetEnvDuration("NOTIFICATION_PROVIDER_CALL_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			DelayMonitorInterval:  delayMonitorInterval,
			DelayMonitorLockTTL:   delayMonitorLockTTL,
			PresenceSweepInterval: presenceSweepInterval,
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
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Realtime: Realtime{
			ProcessID:         os.Getenv("REALTIME_PROCESS_ID"),
			MaxConnsPerUser:   maxConnsPerUser,
			HeartbeatInterval: heartbeatInterval,
			DeadMultiplier:    deadMultiplier,
			OfflineQueueTTL:   offlineQueueTTL,
			GatewayToken:      os.Getenv("REALTIME_GATEWAY_TOKEN"),
		},
		Notification: Notification{
			PushAttempts:        uint64(pushAttempts),
			PushRetryInterval:   pushRetryInterval,
			FCMEndpoint:         os.Getenv("NOTIFICATION_FCM_ENDPOINT"),
			FCMServerKey:        os.Getenv("NOTIFICATION_FCM_SERVER_KEY"),
			ExpoEndpoint:        os.Getenv("NOTIFICATION_EXPO_ENDPOINT"),
			SendgridAPIKey:      os.Getenv("NOTIFICATION_SENDGRID_API_KEY"),
			SendgridFromName:    os.Getenv("NOTIFICATION_SENDGRID_FROM_NAME"),
			SendgridFromMail:    os.Getenv("NOTIFICATION_SENDGRID_FROM_MAIL"),
			TwilioAccountSID:    os.Getenv("NOTIFICATION_TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:     os.Getenv("NOTIFICATION_TWILIO_AUTH_TOKEN"),
			TwilioFromNumber:    os.Getenv("NOTIFICATION_TWILIO_FROM_NUMBER"),
			ProviderCallTimeout: providerCallTimeout,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
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

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Realtime.ProcessID == "" {
		return errors.New("REALTIME_PROCESS_ID is required")
	}
	if cfg.Realtime.MaxConnsPerUser == 0 {
		return errors.New("REALTIME_MAX_CONNS_PER_USER is required")
	}
	if cfg.Realtime.HeartbeatInterval == time.Duration(0) {
		return errors.New("REALTIME_HEARTBEAT_INTERVAL is required")
	}
	if cfg.Realtime.DeadMultiplier == 0 {
		return errors.New("REALTIME_DEAD_MULTIPLIER is required")
	}
	if cfg.Realtime.OfflineQueueTTL == time.Duration(0) {
		return errors.New("REALTIME_OFFLINE_QUEUE_TTL is required")
	}
	if cfg.Realtime.GatewayToken == "" {
		return errors.New("REALTIME_GATEWAY_TOKEN is required")
	}

	if cfg.Notification.PushAttempts == 0 {
		return errors.New("NOTIFICATION_PUSH_ATTEMPTS is required")
	}
	if cfg.Notification.PushRetryInterval == time.Duration(0) {
		return errors.New("NOTIFICATION_PUSH_RETRY_INTERVAL is required")
	}
	if cfg.Notification.ProviderCallTimeout == time.Duration(0) {
		return errors.New("NOTIFICATION_PROVIDER_CALL_TIMEOUT is required")
	}

	if cfg.Tasks.DelayMonitorInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DELAY_MONITOR_INTERVAL is required")
	}
	if cfg.Tasks.DelayMonitorLockTTL == time.Duration(0) {
		return errors.New("BACKGROUND_DELAY_MONITOR_LOCK_TTL is required")
	}
	if cfg.Tasks.PresenceSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PRESENCE_SWEEP_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
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
