package gemini

import (
	"testing"

	"github.com/shoenig/test/must"
	"google.golang.org/genai"
)

func TestContentConfig(t *testing.T) {
	cfg := contentConfig(DefaultGeneration, SafetyThresholds)

	must.Eq(t, float32(0.7), *cfg.Temperature)
	must.Eq(t, float32(0.95), *cfg.TopP)
	must.Eq(t, float32(40), *cfg.TopK)
	must.Eq(t, int32(2048), cfg.MaxOutputTokens)

	must.Len(t, 4, cfg.SafetySettings)
	for i, setting := range cfg.SafetySettings {
		must.Eq(t, safetyOrder[i], setting.Category)
		must.Eq(t, genai.HarmBlockThresholdBlockNone, setting.Threshold)
	}
}

func TestContentConfig_partialSafety(t *testing.T) {
	cfg := contentConfig(DefaultGeneration, map[HarmCategory]HarmBlockThreshold{
		genai.HarmCategoryDangerousContent: genai.HarmBlockThresholdBlockOnlyHigh,
	})

	must.Len(t, 1, cfg.SafetySettings)
	must.Eq(t, genai.HarmCategoryDangerousContent, cfg.SafetySettings[0].Category)
	must.Eq(t, genai.HarmBlockThresholdBlockOnlyHigh, cfg.SafetySettings[0].Threshold)
}
