package selection

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	scoringv1 "github.com/llimit/gateway/proto"
)

// Prediction is the scoring service's verdict for one candidate model.
type Prediction struct {
	ModelID         string
	Score           float64
	PredictedLength float64
}

// ScoringClient wraps the gRPC connection to the scoring service.
type ScoringClient struct {
	conn   *grpc.ClientConn
	client scoringv1.ScoringServiceClient
}

// NewScoringClient connects to the scoring service at addr.
func NewScoringClient(addr string) (*ScoringClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scoring service at %s: %w", addr, err)
	}
	return &ScoringClient{
		conn:   conn,
		client: scoringv1.NewScoringServiceClient(conn),
	}, nil
}

// Score obtains quality and length predictions for the candidates.
func (c *ScoringClient) Score(ctx context.Context, prompt string, modelIDs []string) ([]Prediction, error) {
	resp, err := c.client.Infer(ctx, &scoringv1.InferRequest{
		Prompt:   prompt,
		ModelIds: modelIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("scoring Infer call failed: %w", err)
	}

	out := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, Prediction{
			ModelID:         p.ModelId,
			Score:           p.Score,
			PredictedLength: p.PredictedLength,
		})
	}
	return out, nil
}

// Healthy probes the scoring service.
func (c *ScoringClient) Healthy(ctx context.Context) bool {
	resp, err := c.client.Health(ctx, &scoringv1.HealthRequest{})
	if err != nil {
		return false
	}
	return resp.Healthy
}

// Close releases the gRPC connection.
func (c *ScoringClient) Close() error {
	return c.conn.Close()
}
