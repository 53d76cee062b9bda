package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/piresc/smsmock/internal/pkg/constants"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/spf13/viper"
)

var (
	ErrMissingJWTSecrets = errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	ErrSharedJWTSecret   = errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
)

// InitConfig loads configuration from the environment, layered over an
// optional dotenv file at configPath. Missing files are not an error.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	cfg := loadConfig(v)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run safely with
func Validate(cfg *models.Config) error {
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return ErrMissingJWTSecrets
	}
	if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return ErrSharedJWTSecret
	}
	if cfg.JWT.AccessExpiration <= 0 || cfg.JWT.RefreshExpiration <= 0 {
		return errors.New("JWT_ACCESS_EXPIRE and JWT_REFRESH_EXPIRE must be positive")
	}
	if cfg.OTP.TTL <= 0 {
		return errors.New("OTP_TTL must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "smsmock")
	v.SetDefault("APP_ENV", models.EnvDevelopment)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("SERVER_READ_TIMEOUT", "10s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "smsmock")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "")
	v.SetDefault("NSQ_TOPIC", constants.TopicMessageLogged)
	v.SetDefault("NSQ_DELIVERY_CHANNEL", "")

	v.SetDefault("JWT_ACCESS_EXPIRE", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRE", "168h")
	v.SetDefault("JWT_ISSUER", "smsmock")

	v.SetDefault("OTP_TTL", "15m")
	v.SetDefault("OTP_DEFAULT_PURPOSE", "verification")

	v.SetDefault("MESSAGE_RETENTION_DAYS", 0)
	v.SetDefault("MAINTENANCE_SCHEDULE", "@every 1h")

	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	cfg := &models.Config{}

	// App config
	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENV")
	cfg.App.Version = v.GetString("APP_VERSION")

	// Server config
	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("PORT")
	if cfg.Server.Port == 0 {
		cfg.Server.Port = v.GetInt("SERVER_PORT")
	}
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	cfg.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetInt("DB_PORT")
	cfg.Database.Username = v.GetString("DB_USERNAME")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Database = v.GetString("DB_DATABASE")
	cfg.Database.SSLMode = v.GetString("DB_SSL_MODE")
	cfg.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	cfg.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = v.GetInt("REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	cfg.NSQ.Address = v.GetString("NSQ_ADDRESS")
	cfg.NSQ.Topic = v.GetString("NSQ_TOPIC")
	cfg.NSQ.DeliveryChannel = v.GetString("NSQ_DELIVERY_CHANNEL")

	// JWT config
	cfg.JWT.AccessSecret = v.GetString("JWT_ACCESS_SECRET")
	cfg.JWT.RefreshSecret = v.GetString("JWT_REFRESH_SECRET")
	cfg.JWT.AccessExpiration = v.GetDuration("JWT_ACCESS_EXPIRE")
	cfg.JWT.RefreshExpiration = v.GetDuration("JWT_REFRESH_EXPIRE")
	cfg.JWT.Issuer = v.GetString("JWT_ISSUER")

	// OTP config
	cfg.OTP.TTL = v.GetDuration("OTP_TTL")
	cfg.OTP.DefaultPurpose = v.GetString("OTP_DEFAULT_PURPOSE")

	// Message retention
	cfg.Messages.RetentionDays = v.GetInt("MESSAGE_RETENTION_DAYS")
	cfg.Messages.MaintenanceSchedule = v.GetString("MAINTENANCE_SCHEDULE")

	cfg.CORS.Origin = v.GetString("CORS_ORIGIN")

	// Logger config
	cfg.Logger.Level = v.GetString("LOG_LEVEL")
	cfg.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return cfg
}

// RetentionWindow converts the configured retention days to a duration
func RetentionWindow(cfg *models.Config) time.Duration {
	return time.Duration(cfg.Messages.RetentionDays) * 24 * time.Hour
}
