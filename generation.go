package gemini

import "google.golang.org/genai"

// GenerationConfig holds the sampling parameters sent with every message.
//
// https://ai.google.dev/api/generate-content#generationconfig
type GenerationConfig struct {
	// Temperature controls the randomness of the output.
	Temperature float32

	// TopP is the nucleus sampling threshold.
	TopP float32

	// TopK limits sampling to the K most likely tokens.
	TopK float32

	// MaxOutputTokens caps the length of a single reply.
	MaxOutputTokens int32
}

// DefaultGeneration is the generation configuration used by every chat.
var DefaultGeneration = GenerationConfig{
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 2048,
}

// HarmCategory is a content category the service filters on.
type HarmCategory = genai.HarmCategory

// HarmBlockThreshold is how aggressively a category is filtered.
type HarmBlockThreshold = genai.HarmBlockThreshold

// SafetyThresholds maps every filtered category to the most permissive
// threshold, so replies are never withheld by the service.
var SafetyThresholds = map[HarmCategory]HarmBlockThreshold{
	genai.HarmCategoryHateSpeech:       genai.HarmBlockThresholdBlockNone,
	genai.HarmCategoryHarassment:       genai.HarmBlockThresholdBlockNone,
	genai.HarmCategorySexuallyExplicit: genai.HarmBlockThresholdBlockNone,
	genai.HarmCategoryDangerousContent: genai.HarmBlockThresholdBlockNone,
}

// safetyOrder keeps the request body stable across runs.
var safetyOrder = []HarmCategory{
	genai.HarmCategoryHateSpeech,
	genai.HarmCategoryHarassment,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// contentConfig converts the generation configuration and safety thresholds
// into the SDK request configuration.
func contentConfig(g GenerationConfig, thresholds map[HarmCategory]HarmBlockThreshold) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.Temperature),
		TopP:            genai.Ptr(g.TopP),
		TopK:            genai.Ptr(g.TopK),
		MaxOutputTokens: g.MaxOutputTokens,
	}

	for _, category := range safetyOrder {
		threshold, ok := thresholds[category]
		if !ok {
			continue
		}
		cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
			Category:  category,
			Threshold: threshold,
		})
	}

	return cfg
}
