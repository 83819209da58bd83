package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type HTTPConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	CategoryTTL time.Duration `yaml:"category_ttl"`
}

// MediaConfig points at the R2 bucket that hosts menu images.
type MediaConfig struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	Folder        string `yaml:"folder"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Env   string      `yaml:"env"`
	HTTP  HTTPConfig  `yaml:"http"`
	Mongo MongoConfig `yaml:"mongo"`
	Redis RedisConfig `yaml:"redis"`
	Media MediaConfig `yaml:"media"`
	Auth  AuthConfig  `yaml:"auth"`
	Log   LogConfig   `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Port:           "5000",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Mongo: MongoConfig{
			Database:       "silverstar",
			ConnectTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			CategoryTTL: 5 * time.Minute,
		},
		Media: MediaConfig{
			Folder: "silver-star-menu",
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration: defaults, then the optional YAML file at
// path, then environment variables. A .env file is honoured outside
// production.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase is Load for tools that only talk to MongoDB, such as the
// seed command. It requires MONGO_URI and nothing else.
func LoadDatabase(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return nil, fmt.Errorf("missing required configuration: MONGO_URI")
	}
	return cfg, nil
}

func load(path string) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Env, "APP_ENV")
	setString(&c.HTTP.Port, "PORT")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.HTTP.AllowedOrigins = splitList(v)
	}

	setString(&c.Mongo.URI, "MONGO_URI")
	setString(&c.Mongo.Database, "MONGO_DB")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Redis.DB = n
	}
	if err := setDuration(&c.Redis.CategoryTTL, "CATEGORY_CACHE_TTL"); err != nil {
		return err
	}

	setString(&c.Media.Endpoint, "R2_ENDPOINT")
	setString(&c.Media.AccessKey, "R2_ACCESS_KEY")
	setString(&c.Media.SecretKey, "R2_SECRET_KEY")
	setString(&c.Media.Bucket, "R2_BUCKET_NAME")
	setString(&c.Media.PublicBaseURL, "R2_PUBLIC_BASE_URL")
	setString(&c.Media.Folder, "MEDIA_FOLDER")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	if err := setDuration(&c.Auth.TokenTTL, "JWT_TTL"); err != nil {
		return err
	}

	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	return nil
}

// Validate fails fast on missing required settings.
func (c *Config) Validate() error {
	required := []struct{ key, value string }{
		{"MONGO_URI", c.Mongo.URI},
		{"JWT_SECRET", c.Auth.JWTSecret},
		{"R2_ENDPOINT", c.Media.Endpoint},
		{"R2_ACCESS_KEY", c.Media.AccessKey},
		{"R2_SECRET_KEY", c.Media.SecretKey},
		{"R2_BUCKET_NAME", c.Media.Bucket},
		{"R2_PUBLIC_BASE_URL", c.Media.PublicBaseURL},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
