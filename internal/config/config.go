package config

import "time"

// Word-list source modes.
const (
	WordListPreload  = "preload"
	WordListStream   = "stream"
	WordListPostgres = "postgres"
)

// External chain modes.
const (
	ChainSequential = "sequential"
	ChainParallel   = "parallel"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	WordList  WordListConfig  `yaml:"wordlist"`
	Providers ProvidersConfig `yaml:"providers"`
	Chain     ChainConfig     `yaml:"chain"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
// PORT takes precedence over SERVER_PORT.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT,SERVER_PORT"        env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WordListConfig selects and locates the local word source.
type WordListConfig struct {
	Mode string `yaml:"mode" env:"WORDLIST_MODE" env-default:"preload"`
	Path string `yaml:"path" env:"WORDLIST_PATH" env-default:"dictionary.txt"`
}

// ProvidersConfig holds external provider endpoints. Empty URLs fall back
// to each adapter's public default.
type ProvidersConfig struct {
	FreeDictURL   string `yaml:"freedict_url"   env:"PROVIDER_FREEDICT_URL"`
	DatamuseURL   string `yaml:"datamuse_url"   env:"PROVIDER_DATAMUSE_URL"`
	MerriamURL    string `yaml:"merriam_url"    env:"PROVIDER_MERRIAM_URL"`
	MerriamAPIKey string `yaml:"merriam_api_key" env:"PROVIDER_MERRIAM_API_KEY" env-default:"test"`
}

// ChainConfig controls how external providers are consulted.
type ChainConfig struct {
	Mode            string        `yaml:"mode"             env:"CHAIN_MODE"             env-default:"sequential"`
	ProviderTimeout time.Duration `yaml:"provider_timeout" env:"CHAIN_PROVIDER_TIMEOUT" env-default:"5s"`
	// Deadline bounds the whole chain in parallel mode.
	Deadline time.Duration `yaml:"deadline" env:"CHAIN_DEADLINE" env-default:"6s"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres word-list mode and the import command.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
