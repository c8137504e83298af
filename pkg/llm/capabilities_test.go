package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llimit/gateway/pkg/models"
)

func TestConfigForCapabilities(t *testing.T) {
	tests := []struct {
		name         string
		capabilities []models.Capability
		check        func(t *testing.T, cfg Config)
	}{
		{
			name:         "empty is neutral",
			capabilities: nil,
			check: func(t *testing.T, cfg Config) {
				assert.False(t, cfg.WebSearch.Enabled())
				assert.False(t, cfg.Reasoning.Enabled())
				assert.Equal(t, PDFEngineNative, cfg.PDF.Engine)
			},
		},
		{
			name:         "exa search",
			capabilities: []models.Capability{models.CapabilityExaSearch},
			check: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.WebSearch.UseExaSearch)
				assert.False(t, cfg.WebSearch.UseNativeSearch)
				assert.Equal(t, 5, cfg.WebSearch.MaxResults)
				assert.Equal(t, SearchContextMedium, cfg.WebSearch.ContextSize)
			},
		},
		{
			name:         "native search",
			capabilities: []models.Capability{models.CapabilityNativeWebSearch},
			check: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.WebSearch.UseNativeSearch)
				assert.False(t, cfg.WebSearch.UseExaSearch)
			},
		},
		{
			name:         "reasoning",
			capabilities: []models.Capability{models.CapabilityReasoning},
			check: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.Reasoning.Enabled())
				assert.Equal(t, ReasoningMedium, cfg.Reasoning.Effort)
			},
		},
		{
			name: "ocr outranks text and native pdf",
			capabilities: []models.Capability{
				models.CapabilityNativePDF,
				models.CapabilityTextPDF,
				models.CapabilityOCRPDF,
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, PDFEngineMistralOCR, cfg.PDF.Engine)
			},
		},
		{
			name: "text pdf outranks native",
			capabilities: []models.Capability{
				models.CapabilityNativePDF,
				models.CapabilityTextPDF,
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, PDFEngineText, cfg.PDF.Engine)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ConfigForCapabilities(tt.capabilities))
		})
	}
}
