package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/models"
)

type staticCatalogue map[string]models.ModelDescription

func (c staticCatalogue) ByID(ctx context.Context, id string) (*models.ModelDescription, error) {
	if m, ok := c[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func price(v float64) *float64 { return &v }
func size(v int64) *int64      { return &v }
func pages(v int) *int         { return &v }

func testCatalogue() staticCatalogue {
	return staticCatalogue{
		"test/basic": {
			ID: "test/basic",
			Pricing: models.ModelPricing{
				PromptPerMillion:     2.0,
				CompletionPerMillion: 8.0,
			},
		},
		"test/full": {
			ID: "test/full",
			Pricing: models.ModelPricing{
				PromptPerMillion:     2.0,
				CompletionPerMillion: 8.0,
				Request:              price(0.01),
				Image:                price(0.005),
				Audio:                price(100.0),
				InternalReasoning:    price(16.0),
				ExaSearch:            price(4.0),
				NativeSearch:         price(10.0),
				PDFMistralOCR:        2.0,
			},
		},
	}
}

func TestActualCostTokensOnly(t *testing.T) {
	calc := NewCalculator(testCatalogue())

	cost, err := calc.ActualCost(context.Background(), "test/basic", 1_000_000, 500_000, nil, llm.DefaultConfig())
	require.NoError(t, err)
	// 1M prompt at 2.0 + 0.5M completion at 8.0
	assert.InDelta(t, 2.0+4.0, cost, 1e-9)
}

func TestActualCostRequestFee(t *testing.T) {
	calc := NewCalculator(testCatalogue())

	cost, err := calc.ActualCost(context.Background(), "test/full", 0, 0, nil, llm.DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 0.01, cost, 1e-9)
}

func TestUnknownModel(t *testing.T) {
	calc := NewCalculator(testCatalogue())

	_, err := calc.ActualCost(context.Background(), "test/missing", 10, 10, nil, llm.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrModelNotFound)
}

func TestFileCosts(t *testing.T) {
	calc := NewCalculator(testCatalogue())
	ctx := context.Background()

	t.Run("image charged flat in both paths", func(t *testing.T) {
		files := []FileInfo{{ContentType: "image/png"}}

		actual, err := calc.ActualCost(ctx, "test/full", 0, 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01+0.005, actual, 1e-9)

		estimate, err := calc.EstimateCost(ctx, "test/full", "", 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01+0.005, estimate, 1e-9)
	})

	t.Run("audio priced by duration from size", func(t *testing.T) {
		// 1.2 MiB of mp3 is one minute, 4500 tokens.
		oneMinuteBytes := 1.2 * 1024 * 1024
		files := []FileInfo{{ContentType: "audio/mpeg", SizeBytes: size(int64(oneMinuteBytes))}}

		actual, err := calc.ActualCost(ctx, "test/full", 0, 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01+4500.0/1e6*100.0, actual, 1e-6)
	})

	t.Run("audio without size errors", func(t *testing.T) {
		files := []FileInfo{{ContentType: "audio/wav"}}
		_, err := calc.ActualCost(ctx, "test/full", 0, 0, files, llm.DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("video free in actual, image batch in estimate", func(t *testing.T) {
		files := []FileInfo{{ContentType: "video/mp4"}}

		actual, err := calc.ActualCost(ctx, "test/full", 0, 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01, actual, 1e-9)

		estimate, err := calc.EstimateCost(ctx, "test/full", "", 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01+10*0.005, estimate, 1e-9)
	})

	t.Run("text free in actual, token estimate otherwise", func(t *testing.T) {
		files := []FileInfo{{ContentType: "text/plain", SizeBytes: size(6000)}}

		actual, err := calc.ActualCost(ctx, "test/full", 0, 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01, actual, 1e-9)

		// 6000 bytes -> 4000 chars -> 1000 tokens at 2.0 per million.
		estimate, err := calc.EstimateCost(ctx, "test/full", "", 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01+1000.0/1e6*2.0, estimate, 1e-9)
	})

	t.Run("pdf ocr engine priced per page batch", func(t *testing.T) {
		files := []FileInfo{{ContentType: "application/pdf", PageCount: pages(100)}}
		cfg := llm.DefaultConfig()
		cfg.PDF.Engine = llm.PDFEngineMistralOCR

		estimate, err := calc.EstimateCost(ctx, "test/full", "", 0, files, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0.01+100.0/1000*2.0, estimate, 1e-9)
	})

	t.Run("pdf text engine priced as prompt tokens", func(t *testing.T) {
		files := []FileInfo{{ContentType: "application/pdf", PageCount: pages(10)}}

		estimate, err := calc.EstimateCost(ctx, "test/full", "", 0, files, llm.DefaultConfig())
		require.NoError(t, err)
		assert.InDelta(t, 0.01+10*pdfTokensPerPage/1e6*2.0, estimate, 1e-9)
	})

	t.Run("pdf estimate without page count errors", func(t *testing.T) {
		files := []FileInfo{{ContentType: "application/pdf"}}
		_, err := calc.EstimateCost(ctx, "test/full", "", 0, files, llm.DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("unsupported content type errors", func(t *testing.T) {
		files := []FileInfo{{ContentType: "application/zip"}}
		_, err := calc.ActualCost(ctx, "test/full", 0, 0, files, llm.DefaultConfig())
		assert.Error(t, err)
	})
}

func TestReasoningCost(t *testing.T) {
	calc := NewCalculator(testCatalogue())
	ctx := context.Background()

	tests := []struct {
		effort llm.ReasoningEffort
		mult   float64
	}{
		{llm.ReasoningNone, 0},
		{llm.ReasoningMinimal, 0.5},
		{llm.ReasoningLow, 1},
		{llm.ReasoningMedium, 2},
		{llm.ReasoningHigh, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.effort), func(t *testing.T) {
			cfg := llm.DefaultConfig()
			cfg.Reasoning.Effort = tt.effort

			cost, err := calc.ActualCost(ctx, "test/full", 0, 1000, nil, cfg)
			require.NoError(t, err)
			base := 0.01 + 1000.0/1e6*8.0
			assert.InDelta(t, base+tt.mult*1000.0/1e6*16.0, cost, 1e-9)
		})
	}
}

func TestWebSearchCost(t *testing.T) {
	calc := NewCalculator(testCatalogue())
	ctx := context.Background()

	t.Run("exa", func(t *testing.T) {
		cfg := llm.DefaultConfig()
		cfg.WebSearch.UseExaSearch = true
		cfg.WebSearch.MaxResults = 5

		cost, err := calc.ActualCost(ctx, "test/full", 0, 0, nil, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0.01+5.0/1000*4.0, cost, 1e-9)
	})

	t.Run("native scales with context size", func(t *testing.T) {
		cfg := llm.DefaultConfig()
		cfg.WebSearch.UseNativeSearch = true
		cfg.WebSearch.MaxResults = 5
		cfg.WebSearch.ContextSize = llm.SearchContextHigh

		cost, err := calc.ActualCost(ctx, "test/full", 0, 0, nil, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0.01+5.0*2/1000*10.0, cost, 1e-9)
	})

	t.Run("missing price means free", func(t *testing.T) {
		cfg := llm.DefaultConfig()
		cfg.WebSearch.UseExaSearch = true
		cfg.WebSearch.MaxResults = 5

		cost, err := calc.ActualCost(ctx, "test/basic", 0, 0, nil, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0, cost, 1e-9)
	})
}

func TestEstimatePromptTokensFromLength(t *testing.T) {
	calc := NewCalculator(testCatalogue())

	prompt := string(make([]byte, 4000)) // 1000 tokens
	cost, err := calc.EstimateCost(context.Background(), "test/basic", prompt, 500, nil, llm.DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/1e6*2.0+500.0/1e6*8.0, cost, 1e-9)
}
