// Package config loads stdinfuzz settings from flags, environment and an
// optional config file, and builds the logger they describe.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// EnvPrefix prefixes every environment variable read by stdinfuzz.
const EnvPrefix = "STDINFUZZ"

// DefaultReportsDir is where run reports are stored unless --output says otherwise.
const DefaultReportsDir = ".stdinfuzz-reports"

// Configuration keys. Each one is also the name of a flag.
const (
	KeyCommand   = "command"
	KeyDir       = "dir"
	KeySeed      = "seed"
	KeySeedFile  = "seed-file"
	KeyMaxTests  = "max-tests"
	KeyRandSeed  = "rand-seed"
	KeyTimeout   = "timeout"
	KeyOutput    = "output"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyConfig    = "config"
	KeyNoTUI     = "no-tui"
)

// ErrInvalidConfig marks every configuration problem found before a run starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved stdinfuzz configuration.
type Config struct {
	Command     string
	Dir         string
	Seed        string
	SeedFile    string
	MaxTests    int
	RandSeed    uint64
	RandSeedSet bool
	Timeout     time.Duration
	Output      string
	LogLevel    string
	LogFormat   string
	ConfigFile  string
	NoTUI       bool

	seedSet bool
}

// RegisterFlags adds the stdinfuzz flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyDir, "C", ".", "working directory of the target command")
	fs.String(KeySeed, m.DefaultSeed, "seed input to mutate")
	fs.String(KeySeedFile, "", "read the seed input from a file")
	fs.IntP(KeyMaxTests, "n", m.DefaultMaxTests, "maximum number of inputs to execute")
	fs.Uint64(KeyRandSeed, 0, "seed for candidate pool generation (random when omitted)")
	fs.Duration(KeyTimeout, 0, "kill the target after this long (0 waits forever)")
	fs.StringP(KeyOutput, "o", DefaultReportsDir, "directory to store run reports in (empty disables)")
	fs.String(KeyLogLevel, LevelInfo, "log level: debug, info, warn or error")
	fs.String(KeyLogFormat, FormatPlain, "log format: plain or json")
	fs.String(KeyConfig, "", "config file (yaml or toml)")
	fs.Bool(KeyNoTUI, false, "use plain text output even on a terminal")
}

// Load resolves the configuration from flags, STDINFUZZ_* environment
// variables and the config file named by --config, in that order of precedence.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: failed to read config file %s: %w", ErrInvalidConfig, file, err)
		}
	}

	cfg := Config{
		Command:     v.GetString(KeyCommand),
		Dir:         v.GetString(KeyDir),
		Seed:        v.GetString(KeySeed),
		SeedFile:    v.GetString(KeySeedFile),
		MaxTests:    v.GetInt(KeyMaxTests),
		RandSeed:    v.GetUint64(KeyRandSeed),
		RandSeedSet: v.IsSet(KeyRandSeed),
		Timeout:     v.GetDuration(KeyTimeout),
		Output:      v.GetString(KeyOutput),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		ConfigFile:  v.GetString(KeyConfig),
		NoTUI:       v.GetBool(KeyNoTUI),
		seedSet:     v.IsSet(KeySeed),
	}

	return cfg, cfg.Validate()
}

// Validate reports the first problem in c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Dir == "":
		return fmt.Errorf("%w: --%s must not be empty", ErrInvalidConfig, KeyDir)
	case c.MaxTests < 0:
		return fmt.Errorf("%w: --%s must not be negative, got %d", ErrInvalidConfig, KeyMaxTests, c.MaxTests)
	case c.Timeout < 0:
		return fmt.Errorf("%w: --%s must not be negative, got %s", ErrInvalidConfig, KeyTimeout, c.Timeout)
	case c.seedSet && c.SeedFile != "":
		return fmt.Errorf("%w: --%s and --%s are mutually exclusive", ErrInvalidConfig, KeySeed, KeySeedFile)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.LogFormat != FormatPlain && c.LogFormat != FormatJSON {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
