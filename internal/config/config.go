package config

import (
	"fmt"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string
	Port   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBRetries  int

	RedisAddr string

	KafkaBroker        string
	KafkaConsumerGroup string
	OutboxPollInterval time.Duration

	JWTSecret string
	RBACModel string

	MongoURI      string
	MongoDatabase string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	HRNotifyTo   string

	GeocoderURL     string
	GeocoderTimeout time.Duration

	Shift ShiftConfig
}

// ShiftConfig is the default working schedule used to derive PRESENT/LATE.
type ShiftConfig struct {
	Start        string // HH:MM
	GraceMinutes int
	Timezone     string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "hrportal")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_RETRIES", 5)

	v.SetDefault("REDIS_ADDR", "localhost:6379")

	v.SetDefault("KAFKA_CONSUMER_GROUP", "go-hrportal")
	v.SetDefault("OUTBOX_POLL_INTERVAL", "3s")

	v.SetDefault("RBAC_MODEL", "internal/rbac/infra/model.conf")

	v.SetDefault("MONGODB_NAME", "hrportal")

	v.SetDefault("SMTP_PORT", 587)

	v.SetDefault("GEOCODER_TIMEOUT", "3s")

	v.SetDefault("SHIFT_START", "09:00")
	v.SetDefault("SHIFT_GRACE_MINUTES", 15)
	v.SetDefault("SHIFT_TIMEZONE", "Asia/Jakarta")
}

// Load reads configuration from the process environment. Call godotenv.Load
// beforehand when a .env file should be honoured.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	defaults(v)

	cfg := Config{
		AppEnv: v.GetString("APP_ENV"),
		Port:   v.GetString("PORT"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
		DBRetries:  v.GetInt("DB_RETRIES"),

		RedisAddr: v.GetString("REDIS_ADDR"),

		KafkaBroker:        v.GetString("KAFKA_BROKER"),
		KafkaConsumerGroup: v.GetString("KAFKA_CONSUMER_GROUP"),
		OutboxPollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),

		JWTSecret: v.GetString("JWT_SECRET"),
		RBACModel: v.GetString("RBAC_MODEL"),

		MongoURI:      v.GetString("MONGODB_URI"),
		MongoDatabase: v.GetString("MONGODB_NAME"),

		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		MailFrom:     v.GetString("MAIL_FROM"),
		HRNotifyTo:   v.GetString("HR_NOTIFY_EMAIL"),

		GeocoderURL:     v.GetString("GEOCODER_URL"),
		GeocoderTimeout: v.GetDuration("GEOCODER_TIMEOUT"),

		Shift: ShiftConfig{
			Start:        v.GetString("SHIFT_START"),
			GraceMinutes: v.GetInt("SHIFT_GRACE_MINUTES"),
			Timezone:     v.GetString("SHIFT_TIMEZONE"),
		},
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DBRetries < 1 {
		return fmt.Errorf("DB_RETRIES must be >= 1, got %d", c.DBRetries)
	}
	if _, err := time.Parse("15:04", c.Shift.Start); err != nil {
		return fmt.Errorf("SHIFT_START must be HH:MM: %w", err)
	}
	if c.Shift.GraceMinutes < 0 {
		return fmt.Errorf("SHIFT_GRACE_MINUTES cannot be negative")
	}
	if _, err := time.LoadLocation(c.Shift.Timezone); err != nil {
		return fmt.Errorf("SHIFT_TIMEZONE: %w", err)
	}
	return nil
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}
