package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Dashboard DashboardConfig `mapstructure:"dashboard" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AuthConfig holds credential-gate configuration.
type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes" validate:"required,min=1"`
}

// DashboardConfig holds dashboard aggregation configuration.
type DashboardConfig struct {
	TimeSeriesBuckets int `mapstructure:"time_series_buckets" validate:"required,min=1"`
}

// ReportConfig holds report export configuration.
type ReportConfig struct {
	TimeSeriesBuckets int `mapstructure:"time_series_buckets" validate:"required,min=1"`
}
