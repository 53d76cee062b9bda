package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Messages MessagesConfig
	CORS     CORSConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// IsProduction reports whether the service runs with production settings.
func (a AppConfig) IsProduction() bool {
	return a.Environment == EnvProduction
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the nsqd address used for message events.
// An empty address disables publishing. DeliveryChannel, when set, starts a
// consumer on Topic that marks logged messages as delivered.
type NSQConfig struct {
	Address         string
	Topic           string
	DeliveryChannel string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
	Issuer            string
}

// OTPConfig contains one-time passcode policy
type OTPConfig struct {
	TTL            time.Duration
	DefaultPurpose string
}

// MessagesConfig contains message log retention settings
type MessagesConfig struct {
	RetentionDays       int
	MaintenanceSchedule string
}

// CORSConfig contains the dashboard origin allowed to call the API with credentials
type CORSConfig struct {
	Origin string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
