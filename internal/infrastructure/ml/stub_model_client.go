package ml

import (
	"context"
	"log/slog"
)

// StubModelClient is a development stand-in for an external supplier risk
// model endpoint (SageMaker, Vertex AI, or similar).
type StubModelClient struct {
	logger *slog.Logger
}

// NewStubModelClient creates a stub ML model client.
func NewStubModelClient(logger *slog.Logger) *StubModelClient {
	return &StubModelClient{logger: logger}
}

// Predict logs the supplier feature vector and returns a neutral score of
// 0.5. The rule-based scorer carries the actual assessment.
func (c *StubModelClient) Predict(ctx context.Context, features map[string]interface{}) (float64, error) {
	c.logger.Debug("stub supplier risk prediction requested",
		slog.Int("feature_count", len(features)),
	)

	return 0.5, nil
}
