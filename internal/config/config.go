package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Wedding  WeddingConfig  `mapstructure:"wedding"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	// PasswordHash is the bcrypt hash of the shared event passphrase.
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	// TokenTTLHours is how long an issued session token stays valid.
	TokenTTLHours int `mapstructure:"token_ttl_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type WeddingConfig struct {
	CoupleNames string `mapstructure:"couple_names"`
	// Dates shown on the info pages; free-form strings, not parsed.
	EnglandDate   string `mapstructure:"england_date"`
	AustraliaDate string `mapstructure:"australia_date"`
}

// Load reads config.yaml and environment overrides.
// Environment variables use the WEDDING_ prefix with underscores,
// e.g. WEDDING_SERVER_PORT, WEDDING_AUTH_JWT_SECRET.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.port", 8000)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "wedding_user")
	v.SetDefault("database.name", "wedding_db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("auth.token_ttl_hours", 72)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("wedding.couple_names", "The Happy Couple")

	v.SetEnvPrefix("WEDDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config file: %v", err)
		}
		// No config file is fine; defaults plus env cover local runs.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	return &cfg
}
