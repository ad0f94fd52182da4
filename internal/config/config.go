package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	HTTPPort string `mapstructure:"HTTP_PORT"`
	GRPCPort string `mapstructure:"GRPC_PORT"`

	APIBaseURL string        `mapstructure:"API_BASE_URL"`
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	CookieSecure  bool          `mapstructure:"COOKIE_SECURE"`
	CookieDomain  string        `mapstructure:"COOKIE_DOMAIN"`

	CacheTTL       time.Duration `mapstructure:"CACHE_TTL"`
	AllowedOrigins string        `mapstructure:"ALLOWED_ORIGINS"`
	StaticDir      string        `mapstructure:"STATIC_DIR"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3PublicURL string `mapstructure:"S3_PUBLIC_URL"`

	LoginRateLimit  int           `mapstructure:"LOGIN_RATE_LIMIT"`
	LoginRateWindow time.Duration `mapstructure:"LOGIN_RATE_WINDOW"`
	HealthInterval  time.Duration `mapstructure:"HEALTH_INTERVAL"`
}

var keys = []string{
	"ENV", "HTTP_PORT", "GRPC_PORT",
	"API_BASE_URL", "API_TIMEOUT",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"SESSION_SECRET", "SESSION_TTL", "COOKIE_SECURE", "COOKIE_DOMAIN",
	"CACHE_TTL", "ALLOWED_ORIGINS", "STATIC_DIR",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_PUBLIC_URL",
	"LOGIN_RATE_LIMIT", "LOGIN_RATE_WINDOW", "HEALTH_INTERVAL",
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENV", "local")
	v.SetDefault("HTTP_PORT", ":8080")
	v.SetDefault("GRPC_PORT", ":50051")
	v.SetDefault("API_TIMEOUT", 15*time.Second)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("STATIC_DIR", "web/static")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("LOGIN_RATE_LIMIT", 5)
	v.SetDefault("LOGIN_RATE_WINDOW", time.Minute)
	v.SetDefault("HEALTH_INTERVAL", 15*time.Second)

	v.AutomaticEnv()

	// AutomaticEnv не видит ключи без значения в файле, поэтому биндим явно
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

// Origins splits ALLOWED_ORIGINS by comma.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

func (c Config) MediaEnabled() bool {
	return c.S3Bucket != ""
}
