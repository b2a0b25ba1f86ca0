package mcpserver

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/erraggy/hydraschema/schema"
)

// EnvPrefix is the prefix of every environment variable the server reads.
const EnvPrefix = "HYDRASCHEMA"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from HYDRASCHEMA_* environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Input and output limits.
	MaxInlineSize int64
	IssueLimit    int
	MaxLimit      int

	// Build and check defaults.
	Prefix string
	Strict bool
	Redact bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// newViper returns a viper instance reading HYDRASCHEMA_* variables with the
// server defaults applied.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("cache_enabled", true)
	v.SetDefault("cache_max_size", 10)
	v.SetDefault("cache_ttl", "15m")
	v.SetDefault("cache_sweep_interval", "60s")
	v.SetDefault("max_inline_size", 10*1024*1024)
	v.SetDefault("issue_limit", 100)
	v.SetDefault("max_limit", 1000)
	v.SetDefault("prefix", schema.HydraPrefix)
	v.SetDefault("strict", false)
	v.SetDefault("redact", false)
	return v
}

// loadConfig reads configuration from HYDRASCHEMA_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	v := newViper()
	return &serverConfig{
		CacheEnabled:       boolSetting(v, "cache_enabled", true),
		CacheMaxSize:       intSetting(v, "cache_max_size", 10),
		CacheTTL:           durationSetting(v, "cache_ttl", 15*time.Minute),
		CacheSweepInterval: durationSetting(v, "cache_sweep_interval", 60*time.Second),
		MaxInlineSize:      int64(intSetting(v, "max_inline_size", 10*1024*1024)),
		IssueLimit:         intSetting(v, "issue_limit", 100),
		MaxLimit:           intSetting(v, "max_limit", 1000),
		Prefix:             v.GetString("prefix"),
		Strict:             boolSetting(v, "strict", false),
		Redact:             boolSetting(v, "redact", false),
	}
}

// envKey returns the environment variable name of a setting, for log output.
func envKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

func boolSetting(v *viper.Viper, key string, fallback bool) bool {
	raw := v.GetString(key)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", envKey(key), "value", raw, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func intSetting(v *viper.Viper, key string, fallback int) int {
	raw := v.GetString(key)
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", envKey(key), "value", raw, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func durationSetting(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", envKey(key), "value", raw, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
