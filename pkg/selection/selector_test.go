package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
	"github.com/llimit/gateway/pkg/pricing"
)

type fakeCatalogue []models.ModelDescription

func (c fakeCatalogue) All(ctx context.Context, provider string) ([]models.ModelDescription, error) {
	return c, nil
}

type fakeScorer struct {
	predictions []Prediction
	err         error
	healthy     bool
	gotIDs      []string
}

func (s *fakeScorer) Score(ctx context.Context, prompt string, modelIDs []string) ([]Prediction, error) {
	s.gotIDs = modelIDs
	if s.err != nil {
		return nil, s.err
	}
	return s.predictions, nil
}

func (s *fakeScorer) Healthy(ctx context.Context) bool { return s.healthy }

type fakeEstimator struct {
	costs map[string]float64
}

func (e *fakeEstimator) EstimateCost(ctx context.Context, modelID, prompt string, predicted int64, files []pricing.FileInfo, cfg llm.Config) (float64, error) {
	cost, ok := e.costs[modelID]
	if !ok {
		return 0, errors.New("no price")
	}
	return cost, nil
}

func textModel(id string, params ...string) models.ModelDescription {
	return models.ModelDescription{
		ID:       id,
		Provider: models.ProviderFromID(id),
		Architecture: models.ModelArchitecture{
			InputModalities: []string{"text"},
		},
		SupportedParameters: params,
	}
}

func TestSelectModelFiltersByModality(t *testing.T) {
	vision := textModel("a/vision")
	vision.Architecture.InputModalities = []string{"text", "image"}
	textOnly := textModel("b/text")

	scorer := &fakeScorer{predictions: []Prediction{
		{ModelID: "a/vision", Score: 1, PredictedLength: 100},
	}}
	estimator := &fakeEstimator{costs: map[string]float64{"a/vision": 0.1, "b/text": 0.1}}
	sel := NewSelector(fakeCatalogue{vision, textOnly}, scorer, estimator)

	files := []pricing.FileInfo{{ContentType: "image/png"}}
	eval, err := sel.SelectModel(context.Background(), "describe this", nil, files)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/vision"}, scorer.gotIDs)
	assert.Equal(t, "a/vision", eval.ModelID)
}

func TestSelectModelFiltersByCapability(t *testing.T) {
	reasoner := textModel("a/reasoner", "reasoning")
	searcher := textModel("perplexity/search")
	plain := textModel("b/plain")

	tests := []struct {
		name       string
		capability models.Capability
		wantIDs    []string
	}{
		{"reasoning", models.CapabilityReasoning, []string{"a/reasoner"}},
		{"native web search", models.CapabilityNativeWebSearch, []string{"perplexity/search"}},
		{"exa search does not restrict", models.CapabilityExaSearch, []string{"a/reasoner", "perplexity/search", "b/plain"}},
		{"text pdf does not restrict", models.CapabilityTextPDF, []string{"a/reasoner", "perplexity/search", "b/plain"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := &fakeScorer{predictions: []Prediction{
				{ModelID: tt.wantIDs[0], Score: 1, PredictedLength: 100},
			}}
			estimator := &fakeEstimator{costs: map[string]float64{
				"a/reasoner": 0.1, "perplexity/search": 0.1, "b/plain": 0.1,
			}}
			sel := NewSelector(fakeCatalogue{reasoner, searcher, plain}, scorer, estimator)

			_, err := sel.SelectModel(context.Background(), "prompt", []models.Capability{tt.capability}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, scorer.gotIDs)
		})
	}
}

func TestSelectModelNativePDFRequiresFileInput(t *testing.T) {
	filer := textModel("a/filer")
	filer.Architecture.InputModalities = []string{"text", "file"}
	plain := textModel("b/plain")

	scorer := &fakeScorer{predictions: []Prediction{
		{ModelID: "a/filer", Score: 1, PredictedLength: 100},
	}}
	estimator := &fakeEstimator{costs: map[string]float64{"a/filer": 0.1}}
	sel := NewSelector(fakeCatalogue{filer, plain}, scorer, estimator)

	_, err := sel.SelectModel(context.Background(), "prompt", []models.Capability{models.CapabilityNativePDF}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/filer"}, scorer.gotIDs)
}

func TestSelectModelNoCandidates(t *testing.T) {
	plain := textModel("b/plain")
	sel := NewSelector(fakeCatalogue{plain}, &fakeScorer{}, &fakeEstimator{})

	_, err := sel.SelectModel(context.Background(), "prompt", []models.Capability{models.CapabilityReasoning}, nil)
	assert.ErrorIs(t, err, ErrNoSuitableModel)
}

func TestSelectModelScoringUnavailable(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("connection refused")}
	sel := NewSelector(fakeCatalogue{textModel("b/plain")}, scorer, &fakeEstimator{})

	_, err := sel.SelectModel(context.Background(), "prompt", nil, nil)

	var unavailable *ScoringUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestSelectModelPicksBestUtility(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]float64
		costs  map[string]float64
		want   string
	}{
		{
			// 3/sqrt(0.91) = 3.15 beats 1/sqrt(0.11) = 3.02.
			name:   "stronger model survives a moderate price gap",
			scores: map[string]float64{"a/strong": 3, "b/cheap": 1},
			costs:  map[string]float64{"a/strong": 0.9, "b/cheap": 0.1},
			want:   "a/strong",
		},
		{
			// 1/sqrt(0.26) = 1.96 beats 2/sqrt(4.01) = 1.00.
			name:   "large enough price gap flips the pick",
			scores: map[string]float64{"a/strong": 2, "b/cheap": 1},
			costs:  map[string]float64{"a/strong": 4.0, "b/cheap": 0.25},
			want:   "b/cheap",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var predictions []Prediction
			for _, id := range []string{"a/strong", "b/cheap"} {
				predictions = append(predictions, Prediction{
					ModelID: id, Score: tt.scores[id], PredictedLength: 100,
				})
			}
			scorer := &fakeScorer{predictions: predictions}
			estimator := &fakeEstimator{costs: tt.costs}
			sel := NewSelector(fakeCatalogue{textModel("a/strong"), textModel("b/cheap")}, scorer, estimator)

			eval, err := sel.SelectModel(context.Background(), "prompt", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eval.ModelID)
			assert.InDelta(t, tt.costs[tt.want], eval.EstimatedCost, 1e-9)
		})
	}
}

func TestSelectModelDropsCostOutlier(t *testing.T) {
	a := textModel("a/a")
	b := textModel("b/b")
	c := textModel("c/c")

	scorer := &fakeScorer{predictions: []Prediction{
		{ModelID: "a/a", Score: 10, PredictedLength: 100},
		{ModelID: "b/b", Score: 1, PredictedLength: 100},
		{ModelID: "c/c", Score: 1, PredictedLength: 100},
	}}
	// a/a has the best utility (10/sqrt(10.01) = 3.16 against
	// 1/sqrt(0.11) = 3.02) but costs far beyond the median.
	estimator := &fakeEstimator{costs: map[string]float64{
		"a/a": 10.0,
		"b/b": 0.1,
		"c/c": 0.1,
	}}
	sel := NewSelector(fakeCatalogue{a, b, c}, scorer, estimator)

	eval, err := sel.SelectModel(context.Background(), "prompt", nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, "a/a", eval.ModelID)
}

func TestSelectModelDropsScoreOutlier(t *testing.T) {
	// weak/free scores far below the pack but is free, which would win
	// on raw utility (0.5/sqrt(0.01) = 5 against 1/sqrt(0.11) = 3.02).
	catalogue := fakeCatalogue{textModel("weak/free")}
	predictions := []Prediction{{ModelID: "weak/free", Score: 0.5, PredictedLength: 100}}
	costs := map[string]float64{"weak/free": 0.0}
	for _, id := range []string{"a/a", "b/b", "c/c", "d/d", "e/e"} {
		catalogue = append(catalogue, textModel(id))
		predictions = append(predictions, Prediction{ModelID: id, Score: 1.0, PredictedLength: 100})
		costs[id] = 0.1
	}

	sel := NewSelector(catalogue, &fakeScorer{predictions: predictions}, &fakeEstimator{costs: costs})

	eval, err := sel.SelectModel(context.Background(), "prompt", nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, "weak/free", eval.ModelID)
}
