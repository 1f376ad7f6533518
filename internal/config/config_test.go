package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.EqualValues(t, DefaultWindowWidth, cfg.WindowWidth)
	assert.Zero(t, cfg.DeliverySeed)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(mapLookup(map[string]string{
		"LOG_LEVEL":          "warn",
		"FOOD_JSON_LOGS":     "true",
		"FOOD_WINDOW_WIDTH":  "500",
		"FOOD_WINDOW_HEIGHT": "900.5",
		"FOOD_DELIVERY_SEED": "42",
	}))
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.EqualValues(t, 500, cfg.WindowWidth)
	assert.EqualValues(t, float32(900.5), cfg.WindowHeight)
	assert.EqualValues(t, 42, cfg.DeliverySeed)
}

func TestDebugForcesDebugLevel(t *testing.T) {
	cfg, err := FromLookup(mapLookup(map[string]string{"LOG_LEVEL": "error", "DEBUG": "1"}))
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestFromLookupRejectsInvalidValues(t *testing.T) {
	for name, value := range map[string]string{
		"LOG_LEVEL":          "chatty",
		"FOOD_JSON_LOGS":     "sometimes",
		"FOOD_WINDOW_WIDTH":  "-3",
		"FOOD_WINDOW_HEIGHT": "tall",
		"FOOD_DELIVERY_SEED": "-1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(mapLookup(map[string]string{name: value}))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food.env")
	require.NoError(t, os.WriteFile(path, []byte("FOOD_DELIVERY_SEED=7\n"), 0o600))

	t.Setenv("FOOD_ENV_FILE", path)
	// godotenv.Load sets variables on the process; clear it afterwards.
	t.Cleanup(func() { os.Unsetenv("FOOD_DELIVERY_SEED") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.EqualValues(t, 7, cfg.DeliverySeed)
}

func TestLoadToleratesMissingEnvFile(t *testing.T) {
	t.Setenv("FOOD_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	_, err := Load()
	assert.NoError(t, err)
}
