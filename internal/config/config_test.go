package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	return Load(viper.New(), fs)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, m.DefaultSeed, cfg.Seed)
	assert.Equal(t, m.DefaultMaxTests, cfg.MaxTests)
	assert.Equal(t, DefaultReportsDir, cfg.Output)
	assert.Equal(t, LevelInfo, cfg.LogLevel)
	assert.Equal(t, FormatPlain, cfg.LogFormat)
	assert.False(t, cfg.RandSeedSet)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.NoTUI)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t,
		"-C", "/tmp", "--seed", "abc", "-n", "7", "--rand-seed", "42",
		"--timeout", "2s", "-o", "", "--log-level", "debug", "--log-format", "json", "--no-tui",
	)
	require.NoError(t, err)

	assert.Equal(t, "/tmp", cfg.Dir)
	assert.Equal(t, "abc", cfg.Seed)
	assert.Equal(t, 7, cfg.MaxTests)
	assert.Equal(t, uint64(42), cfg.RandSeed)
	assert.True(t, cfg.RandSeedSet)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Output)
	assert.Equal(t, LevelDebug, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.True(t, cfg.NoTUI)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STDINFUZZ_MAX_TESTS", "12")
	t.Setenv("STDINFUZZ_RAND_SEED", "9")
	t.Setenv("STDINFUZZ_COMMAND", "./parse")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxTests)
	assert.Equal(t, uint64(9), cfg.RandSeed)
	assert.True(t, cfg.RandSeedSet)
	assert.Equal(t, "./parse", cfg.Command)
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("STDINFUZZ_MAX_TESTS", "12")

	cfg, err := load(t, "--max-tests", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxTests)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "stdinfuzz.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("command: ./parse --strict\nmax-tests: 20\ntimeout: 1m\n"), 0o600))

	cfg, err := load(t, "--config", yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "./parse --strict", cfg.Command)
	assert.Equal(t, 20, cfg.MaxTests)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, yamlFile, cfg.ConfigFile)

	tomlFile := filepath.Join(dir, "stdinfuzz.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte("seed = \"xyz\"\nno-tui = true\n"), 0o600))

	cfg, err = load(t, "--config", tomlFile)
	require.NoError(t, err)
	assert.Equal(t, "xyz", cfg.Seed)
	assert.True(t, cfg.NoTUI)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Dir: ".", MaxTests: 1, LogLevel: LevelInfo, LogFormat: FormatPlain}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"empty dir":         func(c *Config) { c.Dir = "" },
		"negative max":      func(c *Config) { c.MaxTests = -1 },
		"negative timeout":  func(c *Config) { c.Timeout = -time.Second },
		"seed and seedfile": func(c *Config) { c.seedSet, c.SeedFile = true, "seed.txt" },
		"unknown level":     func(c *Config) { c.LogLevel = "loud" },
		"unknown format":    func(c *Config) { c.LogFormat = "xml" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad_SeedFileWithoutSeedFlag(t *testing.T) {
	cfg, err := load(t, "--seed-file", "seed.txt")
	require.NoError(t, err)
	assert.Equal(t, "seed.txt", cfg.SeedFile)

	_, err = load(t, "--seed-file", "seed.txt", "--seed", "abc")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := NewLogger(&buf, Config{LogLevel: LevelDebug, LogFormat: FormatJSON})
		require.NoError(t, err)

		logger.Debug().Int("test", 3).Msg("spawned target")
		assert.Contains(t, buf.String(), `"level":"debug"`)
		assert.Contains(t, buf.String(), `"test":3`)
		assert.Contains(t, buf.String(), `"message":"spawned target"`)
	})

	t.Run("plain filters by level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := NewLogger(&buf, Config{LogLevel: LevelWarn, LogFormat: FormatPlain})
		require.NoError(t, err)
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, Config{LogLevel: "loud"})
		require.ErrorIs(t, err, ErrInvalidConfig)

		_, err = NewLogger(&bytes.Buffer{}, Config{LogFormat: "xml"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
