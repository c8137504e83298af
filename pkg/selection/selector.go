// Package selection picks the model to run a step on: candidates are
// filtered by modality and capability, scored by the external scoring
// service, priced, and ranked by score over dampened cost.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/pricing"
)

// ErrNoSuitableModel means no catalogue model satisfies the step's
// modality and capability requirements.
var ErrNoSuitableModel = errors.New("no suitable model for step requirements")

// ScoringUnavailableError wraps a scoring service failure so callers
// can distinguish it from a genuinely empty candidate set.
type ScoringUnavailableError struct {
	Err error
}

func (e *ScoringUnavailableError) Error() string {
	return fmt.Sprintf("scoring service unavailable: %v", e.Err)
}

func (e *ScoringUnavailableError) Unwrap() error { return e.Err }

// utilityEpsilon keeps the utility denominator positive for free
// models and is also the slack on the cost outlier cutoff.
const utilityEpsilon = 0.01

// Catalogue lists candidate models. Implemented by catalogue.Cache.
type Catalogue interface {
	All(ctx context.Context, provider string) ([]models.ModelDescription, error)
}

// Scorer predicts quality and length per candidate. Implemented by
// ScoringClient.
type Scorer interface {
	Score(ctx context.Context, prompt string, modelIDs []string) ([]Prediction, error)
	Healthy(ctx context.Context) bool
}

// CostEstimator prices a prospective call. Implemented by
// pricing.Calculator.
type CostEstimator interface {
	EstimateCost(ctx context.Context, modelID, prompt string, predictedCompletionTokens int64, files []pricing.FileInfo, cfg llm.Config) (float64, error)
}

// Evaluation is the winning candidate with its predictions.
type Evaluation struct {
	ModelID         string
	Score           float64
	PredictedLength float64
	EstimatedCost   float64
}

// Selector implements the model selection policy.
type Selector struct {
	catalogue Catalogue
	scorer    Scorer
	estimator CostEstimator
}

// NewSelector creates a selector over the given collaborators.
func NewSelector(catalogue Catalogue, scorer Scorer, estimator CostEstimator) *Selector {
	return &Selector{catalogue: catalogue, scorer: scorer, estimator: estimator}
}

// SelectModel picks the best model for a step. The attached files drive
// the modality filter and the cost estimate; the capabilities drive the
// capability filter and the per-call config.
func (s *Selector) SelectModel(ctx context.Context, prompt string, capabilities []models.Capability, files []pricing.FileInfo) (*Evaluation, error) {
	all, err := s.catalogue.All(ctx, "")
	if err != nil {
		return nil, err
	}

	candidates := filterCandidates(all, capabilities, files)
	if len(candidates) == 0 {
		return nil, ErrNoSuitableModel
	}

	ids := make([]string, len(candidates))
	byID := make(map[string]models.ModelDescription, len(candidates))
	for i, m := range candidates {
		ids[i] = m.ID
		byID[m.ID] = m
	}

	predictions, err := s.scorer.Score(ctx, prompt, ids)
	if err != nil {
		if !s.scorer.Healthy(ctx) {
			slog.Error("Scoring service health probe failed", "error", err)
		}
		return nil, &ScoringUnavailableError{Err: err}
	}

	cfg := llm.ConfigForCapabilities(capabilities)
	evals := make([]Evaluation, 0, len(predictions))
	for _, p := range predictions {
		if _, ok := byID[p.ModelID]; !ok {
			continue
		}
		cost, err := s.estimator.EstimateCost(ctx, p.ModelID, prompt, int64(p.PredictedLength), files, cfg)
		if err != nil {
			slog.Warn("Skipping candidate, cost estimate failed", "model", p.ModelID, "error", err)
			continue
		}
		evals = append(evals, Evaluation{
			ModelID:         p.ModelID,
			Score:           p.Score,
			PredictedLength: p.PredictedLength,
			EstimatedCost:   cost,
		})
	}
	if len(evals) == 0 {
		return nil, ErrNoSuitableModel
	}

	winner := pickBest(evals)
	slog.Info("Model selected",
		"model", winner.ModelID,
		"score", winner.Score,
		"estimated_cost", winner.EstimatedCost,
		"candidates", len(evals))
	return winner, nil
}

// filterCandidates keeps models satisfying every modality the files
// demand and every restricting capability.
func filterCandidates(all []models.ModelDescription, capabilities []models.Capability, files []pricing.FileInfo) []models.ModelDescription {
	required := map[string]bool{}
	for _, f := range files {
		if m := models.ModalityForContentType(f.ContentType); m != "" {
			required[m] = true
		}
	}

	var out []models.ModelDescription
	for _, m := range all {
		ok := true
		for modality := range required {
			if !m.Architecture.SupportsInput(modality) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for _, c := range capabilities {
			switch c {
			case models.CapabilityReasoning:
				ok = m.SupportsReasoning()
			case models.CapabilityNativeWebSearch:
				ok = m.SupportsNativeWebSearch()
			case models.CapabilityNativePDF:
				ok = m.Architecture.SupportsInput("file")
			}
			if !ok {
				break
			}
		}
		if ok {
			out = append(out, m)
		}
	}
	return out
}

// utility ranks a candidate. The square root dampens cost sensitivity
// so a strong model is not rejected over a moderate price difference.
func utility(e *Evaluation) float64 {
	return e.Score / math.Sqrt(e.EstimatedCost+utilityEpsilon)
}

// pickBest drops outliers and maximizes utility. Score outliers are
// cut at two standard deviations below the mean; cost outliers at
// three times the median.
func pickBest(evals []Evaluation) *Evaluation {
	mean, std := scoreStats(evals)
	medianCost := costMedian(evals)

	var best *Evaluation
	var bestUtility float64
	for i := range evals {
		e := &evals[i]
		if std > 0 && (e.Score-mean)/std < -2 {
			continue
		}
		if e.EstimatedCost > 3*medianCost+utilityEpsilon {
			continue
		}
		if u := utility(e); best == nil || u > bestUtility {
			best = e
			bestUtility = u
		}
	}
	if best == nil {
		// Every candidate was an outlier; fall back to the raw best
		// utility.
		best = &evals[0]
		bestUtility = utility(best)
		for i := range evals[1:] {
			e := &evals[i+1]
			if u := utility(e); u > bestUtility {
				best = e
				bestUtility = u
			}
		}
	}
	return best
}

func scoreStats(evals []Evaluation) (mean, std float64) {
	for _, e := range evals {
		mean += e.Score
	}
	mean /= float64(len(evals))
	for _, e := range evals {
		d := e.Score - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(len(evals)))
	return mean, std
}

func costMedian(evals []Evaluation) float64 {
	costs := make([]float64, len(evals))
	for i, e := range evals {
		costs[i] = e.EstimatedCost
	}
	sort.Float64s(costs)
	mid := len(costs) / 2
	if len(costs)%2 == 0 {
		return (costs[mid-1] + costs[mid]) / 2
	}
	return costs[mid]
}
