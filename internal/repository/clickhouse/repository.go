package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// Repository is the append-only event sink backed by ClickHouse. Event
// rows are write-once; nothing in the pipeline ever updates or deletes one.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the event table if it does not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS ab_events (
		event_id String,
		project_id LowCardinality(String),
		visitor_id String,
		session_id String,
		event_type LowCardinality(String),
		event_name String,
		url String,
		experiment_id String,
		variant_id String,
		goal_id String,
		payload String,
		timestamp DateTime64(3),
		processed_at DateTime64(3) DEFAULT now64(3)
	) ENGINE = MergeTree()
	ORDER BY (project_id, event_type, timestamp)
	PARTITION BY toYYYYMM(timestamp)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create ab_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// Append inserts one event row.
func (r *Repository) Append(ctx context.Context, event *domain.Event) error {
	query := `
	INSERT INTO ab_events (
		event_id, project_id, visitor_id, session_id, event_type, event_name,
		url, experiment_id, variant_id, goal_id, payload, timestamp, processed_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := r.client.Conn().Exec(ctx, query,
		event.EventID,
		event.ProjectID,
		event.VisitorID,
		event.SessionID,
		event.EventType,
		event.EventName,
		event.URL,
		event.ExperimentID,
		event.VariantID,
		event.GoalID,
		event.Payload,
		event.Timestamp,
		event.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Ping checks if the ClickHouse connection is alive.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the underlying connection.
func (r *Repository) Close() error {
	return r.client.Close()
}

// GetDailyMetrics returns per-day event counts and unique visitor counts
// for one project and event type over a time range.
func (r *Repository) GetDailyMetrics(ctx context.Context, query repository.EventMetricsQuery) ([]repository.EventMetricsRow, error) {
	stmt := `
	SELECT
		formatDateTime(toStartOfDay(timestamp), '%Y-%m-%d') as day,
		count() as total_count,
		uniq(visitor_id) as unique_count
	FROM ab_events
	WHERE project_id = ? AND event_type = ? AND timestamp >= ? AND timestamp <= ?
	GROUP BY toStartOfDay(timestamp)
	ORDER BY day ASC
	`

	rows, err := r.client.Conn().Query(ctx, stmt,
		query.ProjectID, query.EventType, query.From, query.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close daily metrics rows", zap.Error(err))
		}
	}(rows)

	var results []repository.EventMetricsRow
	for rows.Next() {
		var row repository.EventMetricsRow
		if err := rows.Scan(&row.Day, &row.TotalCount, &row.UniqueCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily metrics row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily metrics rows: %w", err)
	}

	return results, nil
}
