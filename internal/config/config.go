package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string     `koanf:"host"`
	Port    int        `koanf:"port"`
	Mode    string     `koanf:"mode"`
	Timeout string     `koanf:"timeout"`
	CORS    CORSConfig `koanf:"cors"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowOrigins []string `koanf:"allow_origins"`
	MaxAge       string   `koanf:"max_age"`
}

// Supported database drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
)

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver   string         `koanf:"driver"`
	Seed     bool           `koanf:"seed"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	MongoDB  MongoDBConfig  `koanf:"mongodb"`
	Pool     PoolConfig     `koanf:"pool"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// PostgresConfig holds PostgreSQL-specific settings.
type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"dbname"`
	SSLMode  string `koanf:"sslmode"`
}

// MongoDBConfig holds MongoDB-specific settings.
type MongoDBConfig struct {
	URI            string `koanf:"uri"`
	Database       string `koanf:"database"`
	ConnectTimeout string `koanf:"connect_timeout"`
}

// PoolConfig holds database connection pool settings.
type PoolConfig struct {
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	ConnMaxLifetime string `koanf:"conn_max_lifetime"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level           string `koanf:"level"`
	Format          string `koanf:"format"`
	Color           *bool  `koanf:"color"`
	FilePath        string `koanf:"file_path"`
	MaxSizeMB       int    `koanf:"max_size_mb"`
	RetentionDays   int    `koanf:"retention_days"`
	MaxBackups      int    `koanf:"max_backups"`
	CompressRotated *bool  `koanf:"compress_rotated"`
}

var (
	serverModes     = []string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}
	databaseDrivers = []string{DriverMemory, DriverSQLite, DriverPostgres, DriverMongoDB}
	sslModes        = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}
	releaseSSLModes = []string{"require", "verify-ca", "verify-full"}
	logLevels       = []string{"debug", "info", "warn", "error"}
	logFormats      = []string{"text", "json"}
)

// Load reads configuration from a YAML file and overlays environment variables.
// Environment variables use the prefix "APP__" and double-underscore as the
// hierarchy separator. Single underscores are preserved as part of the key name.
// For example, APP__SERVER__PORT=9090 overrides server.port and
// APP__DATABASE__POOL__MAX_IDLE_CONNS=20 overrides database.pool.max_idle_conns.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	if err := k.Load(env.Provider("APP__", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps APP__DATABASE__MONGODB__CONNECT_TIMEOUT to database.mongodb.connect_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "APP__")), "__", ".")
}

// Validate checks supported values and cross-field constraints and normalizes
// c in place: strings are trimmed, the driver, log level and log format are
// lowercased, and whitespace-only durations are treated as unset.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}
	if err := c.Database.validate(c.Server.Mode); err != nil {
		return err
	}
	return c.Log.validate()
}

func (s *ServerConfig) validate() error {
	var err error
	if s.Mode, err = oneOf("server.mode", s.Mode, serverModes, false); err != nil {
		return err
	}
	if err := checkPort("server.port", s.Port); err != nil {
		return err
	}
	if s.Host = strings.TrimSpace(s.Host); s.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if err := optionalDuration("server.timeout", &s.Timeout); err != nil {
		return err
	}
	return optionalDuration("server.cors.max_age", &s.CORS.MaxAge)
}

func (d *DatabaseConfig) validate(mode string) error {
	var err error
	if d.Driver, err = oneOf("database.driver", d.Driver, databaseDrivers, true); err != nil {
		return err
	}

	switch d.Driver {
	case DriverSQLite:
		if d.SQLite.Path, err = required("database.sqlite.path", d.SQLite.Path, d.Driver); err != nil {
			return err
		}
	case DriverPostgres:
		if err := d.Postgres.validate(mode); err != nil {
			return err
		}
	case DriverMongoDB:
		if err := d.MongoDB.validate(); err != nil {
			return err
		}
	}

	if err := optionalDuration("database.pool.conn_max_lifetime", &d.Pool.ConnMaxLifetime); err != nil {
		return err
	}
	return optionalDuration("database.mongodb.connect_timeout", &d.MongoDB.ConnectTimeout)
}

// validate requires the connection fields and, in release mode, an sslmode
// that encrypts the connection.
func (p *PostgresConfig) validate(mode string) error {
	var err error
	if p.Host, err = required("database.postgres.host", p.Host, DriverPostgres); err != nil {
		return err
	}
	if err := checkPort("database.postgres.port", p.Port); err != nil {
		return err
	}
	if p.User, err = required("database.postgres.user", p.User, DriverPostgres); err != nil {
		return err
	}
	if p.DBName, err = required("database.postgres.dbname", p.DBName, DriverPostgres); err != nil {
		return err
	}
	if p.SSLMode, err = oneOf("database.postgres.sslmode", p.SSLMode, sslModes, false); err != nil {
		return err
	}
	if mode == gin.ReleaseMode {
		if _, err := oneOf("database.postgres.sslmode", p.SSLMode, releaseSSLModes, false); err != nil {
			return fmt.Errorf("%w (server.mode %q)", err, gin.ReleaseMode)
		}
	}
	return nil
}

func (m *MongoDBConfig) validate() error {
	uri := strings.TrimSpace(m.URI)
	if !strings.HasPrefix(uri, "mongodb://") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return fmt.Errorf("invalid database.mongodb.uri %q: must start with %q or %q", m.URI, "mongodb://", "mongodb+srv://")
	}
	m.URI = uri

	var err error
	m.Database, err = required("database.mongodb.database", m.Database, DriverMongoDB)
	return err
}

func (l *LogConfig) validate() error {
	var err error
	if l.Level, err = oneOf("log.level", l.Level, logLevels, true); err != nil {
		return err
	}
	l.Format, err = oneOf("log.format", l.Format, logFormats, true)
	return err
}

// oneOf trims v, lowercasing it when fold is set, and checks it against allowed.
func oneOf(name, v string, allowed []string, fold bool) (string, error) {
	norm := strings.TrimSpace(v)
	if fold {
		norm = strings.ToLower(norm)
	}
	for _, a := range allowed {
		if norm == a {
			return norm, nil
		}
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return v, fmt.Errorf("invalid %s %q: must be one of %s", name, v, strings.Join(quoted, ", "))
}

func required(name, v, driver string) (string, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return v, fmt.Errorf("%s is required when driver is %s", name, driver)
	}
	return trimmed, nil
}

func checkPort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", name, port)
	}
	return nil
}

// optionalDuration trims *v and, when it is set, requires a positive Go duration.
func optionalDuration(name string, v *string) error {
	*v = strings.TrimSpace(*v)
	if *v == "" {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, *v, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid %s %q: must be greater than 0", name, *v)
	}
	return nil
}
