package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds process-level settings shared by both binaries.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// SQS configures the batch transport.
type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

// Mongo configures the stateful entity store.
type Mongo struct {
	URI      string `envconfig:"MONGO_URI" required:"true"`
	Database string `envconfig:"MONGO_DB" default:"abtest"`
}

// ClickHouse configures the append-only event sink.
type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port            string `envconfig:"CLICKHOUSE_PORT" required:"true"`
	Database        string `envconfig:"CLICKHOUSE_DB" required:"true"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

// Consumer tunes the ingestion worker.
type Consumer struct {
	Workers         int    `envconfig:"CONSUMER_WORKERS" default:"4"`
	MaxMessages     int32  `envconfig:"CONSUMER_MAX_MESSAGES" default:"10"`
	WaitTimeSeconds int32  `envconfig:"CONSUMER_WAIT_TIME_SEC" default:"20"`
	HealthCheckPort string `envconfig:"CONSUMER_HEALTH_CHECK_PORT" default:"8081"`
}

// Config is the full environment-derived configuration.
type Config struct {
	Service    Service
	SQS        SQS
	Mongo      Mongo
	ClickHouse ClickHouse
	Consumer   Consumer
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
