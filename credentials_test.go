package gemini_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/picatz/gemini"
	"github.com/shoenig/test/must"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestResolveAPIKey(t *testing.T) {
	key, err := gemini.ResolveAPIKey(lookupFrom(map[string]string{gemini.APIKeyEnv: " abc123\n"}))
	must.NoError(t, err)
	must.Eq(t, "abc123", key)

	_, err = gemini.ResolveAPIKey(lookupFrom(nil))
	must.ErrorIs(t, err, gemini.ErrMissingAPIKey)

	_, err = gemini.ResolveAPIKey(lookupFrom(map[string]string{gemini.APIKeyEnv: "   "}))
	must.ErrorIs(t, err, gemini.ErrMissingAPIKey)
}

func TestAPIKeyInstructions(t *testing.T) {
	must.StrContains(t, gemini.APIKeyInstructions, "export GEMINI_API_KEY='your-api-key'")
	must.StrContains(t, gemini.APIKeyInstructions, "https://aistudio.google.com/app/apikey")
}

func TestLoadEnvFile(t *testing.T) {
	must.NoError(t, gemini.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	must.NoError(t, os.WriteFile(path, []byte("GEMINI_TEST_FROM_FILE=from-file\nGEMINI_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("GEMINI_TEST_PRESET", "from-env")
	t.Setenv("GEMINI_TEST_FROM_FILE", "")
	must.NoError(t, os.Unsetenv("GEMINI_TEST_FROM_FILE"))

	must.NoError(t, gemini.LoadEnvFile(path))
	must.Eq(t, "from-file", os.Getenv("GEMINI_TEST_FROM_FILE"))
	must.Eq(t, "from-env", os.Getenv("GEMINI_TEST_PRESET"))
}
