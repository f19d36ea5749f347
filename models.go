package gemini

import (
	"context"
	"slices"
	"strings"
)

/*

$ curl -s "https://generativelanguage.googleapis.com/v1beta/models?key=$GEMINI_API_KEY" | jq -r '.models[].name'

models/embedding-gecko-001
models/gemini-1.0-pro-vision-latest
models/gemini-pro-vision
models/gemini-1.5-pro-latest
models/gemini-1.5-pro-001
models/gemini-1.5-pro-002
models/gemini-1.5-pro
models/gemini-1.5-flash-latest
models/gemini-1.5-flash-001
models/gemini-1.5-flash-001-tuning
models/gemini-1.5-flash
models/gemini-1.5-flash-002
models/gemini-1.5-flash-8b
models/gemini-1.5-flash-8b-001
models/gemini-1.5-flash-8b-latest
models/gemini-2.0-flash-exp
models/gemini-2.0-flash-thinking-exp
models/gemini-2.5-flash-preview-tts
models/gemini-2.5-flash-preview-native-audio-dialog
models/embedding-001
models/text-embedding-004
models/aqa

*/

const (
	ModelGemini15Flash   = "models/gemini-1.5-flash"
	ModelGemini15Flash8B = "models/gemini-1.5-flash-8b"
	ModelGemini15Pro     = "models/gemini-1.5-pro"
	ModelGemini10Pro     = "models/gemini-1.0-pro"
)

// DefaultModel is the model used when none is given.
const DefaultModel = ModelGemini15Flash

// modelFamily must appear in every chat-capable model name.
const modelFamily = "gemini"

// excludedModelMarkers identify variants that can't hold a text chat.
var excludedModelMarkers = []string{
	"embedding",
	"vision",
	"tts",
	"native-audio",
	"thinking",
}

// coreModelFamilies are the model families known to work for chat.
var coreModelFamilies = []string{
	"gemini-1.5-pro",
	"gemini-1.5-flash",
	"gemini-1.0-pro",
}

// FallbackModels returns the models offered when the catalog can't be
// fetched, or has nothing usable in it.
func FallbackModels() []string {
	return []string{
		ModelGemini15Flash,
		ModelGemini15Pro,
		ModelGemini10Pro,
	}
}

// ModelLister lists the names of the models the service exposes.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// FilterModels returns the chat-compatible names from names, in their
// original order.
func FilterModels(names []string) []string {
	var compatible []string

	for _, name := range names {
		if !strings.Contains(name, modelFamily) {
			continue
		}

		if slices.ContainsFunc(excludedModelMarkers, func(marker string) bool {
			return strings.Contains(name, marker)
		}) {
			continue
		}

		if !slices.ContainsFunc(coreModelFamilies, func(family string) bool {
			return strings.Contains(name, family)
		}) {
			continue
		}

		compatible = append(compatible, name)
	}

	return compatible
}

// AvailableModels fetches the catalog and filters it down to the models
// that can be used for chat.
//
// The returned list is never empty: if the catalog call fails, or nothing in
// it passes the filter, FallbackModels is returned instead. A failed catalog
// call is still reported through the error, so callers can log it.
func AvailableModels(ctx context.Context, l ModelLister) ([]string, error) {
	names, err := l.ListModels(ctx)
	if err != nil {
		return FallbackModels(), wrapError("list models", err)
	}

	compatible := FilterModels(names)
	if len(compatible) == 0 {
		return FallbackModels(), nil
	}

	return compatible, nil
}
