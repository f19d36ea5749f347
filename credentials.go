package gemini

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable holding the API key.
const APIKeyEnv = "GEMINI_API_KEY"

// ModelEnv optionally overrides the default model.
const ModelEnv = "GEMINI_MODEL"

// APIKeyInstructions explains how to provide the API key.
const APIKeyInstructions = `Error: ` + APIKeyEnv + ` environment variable not set.

To use this program, you need to set your Google API key:
  export ` + APIKeyEnv + `='your-api-key'

You can get an API key from https://aistudio.google.com/app/apikey`

// ResolveAPIKey reads the API key using lookup, which is usually
// os.LookupEnv. It returns ErrMissingAPIKey if the key is absent or blank.
func ResolveAPIKey(lookup func(string) (string, bool)) (string, error) {
	key, ok := lookup(APIKeyEnv)
	if !ok || strings.TrimSpace(key) == "" {
		return "", ErrMissingAPIKey
	}
	return strings.TrimSpace(key), nil
}

// LoadEnvFile loads environment variables from path without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
