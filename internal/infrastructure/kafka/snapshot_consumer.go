package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/procurelens/supplier-risk-service/internal/application/dto"
	"github.com/procurelens/supplier-risk-service/internal/application/usecase"
	pkgkafka "github.com/procurelens/supplier-risk-service/pkg/kafka"
)

// SnapshotConsumer consumes procurement data snapshots and runs a risk
// assessment for each one. It is the event-driven alternative to calling
// AssessSupplierRisk over gRPC.
type SnapshotConsumer struct {
	consumer *pkgkafka.Consumer
	logger   *slog.Logger
}

// NewSnapshotConsumer creates a consumer for the given snapshot topic.
func NewSnapshotConsumer(
	cfg pkgkafka.Config,
	topic string,
	assess *usecase.AssessSupplierRisk,
	logger *slog.Logger,
) *SnapshotConsumer {
	handler := func(ctx context.Context, msg pkgkafka.Message) error {
		var req dto.AssessSupplierRiskRequest
		if err := json.Unmarshal(msg.Value, &req); err != nil {
			// Malformed snapshots are logged and skipped, not retried.
			logger.Error("invalid snapshot message, skipping",
				slog.String("key", string(msg.Key)),
				slog.String("error", err.Error()),
			)
			return nil
		}

		result, err := assess.Execute(ctx, req)
		if err != nil {
			return fmt.Errorf("assessing snapshot for tenant %s: %w", req.TenantID, err)
		}

		logger.Info("snapshot assessed",
			slog.String("tenant_id", req.TenantID.String()),
			slog.String("assessment_id", result.ID.String()),
			slog.Int("supplier_count", len(result.Suppliers)),
		)
		return nil
	}

	return &SnapshotConsumer{
		consumer: pkgkafka.NewConsumer(cfg, topic, handler, logger),
		logger:   logger,
	}
}

// Start blocks consuming snapshot messages until the context is canceled.
func (c *SnapshotConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

// Close closes the underlying Kafka reader.
func (c *SnapshotConsumer) Close() error {
	return c.consumer.Close()
}
