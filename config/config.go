package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Restaurant and reservations
	Restaurant RestaurantConfig
	Storage    StorageConfig
	Redis      RedisConfig

	// Channels
	Telegram TelegramConfig
	Discord  DiscordConfig
	Chat     ChatConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// RateLimitPerMin bounds requests per client IP. Negative disables it.
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RestaurantConfig overrides the built-in catalog. Empty fields keep the defaults.
type RestaurantConfig struct {
	Name           string
	Address        string
	Phone          string
	Email          string
	Website        string
	Timezone       string
	MaxPerSlot     int
	MaxPartySize   int
	MaxAdvanceDays int
	// Hours maps a lowercase weekday to "HH:MM-HH:MM" or "closed".
	Hours map[string]string
}

// StorageConfig selects the reservation store backend.
type StorageConfig struct {
	Driver  string // file, sqlite, postgres, redis
	DataDir string
	DSN     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	// NgrokAPI is the local ngrok API probed for a public URL when WebhookURL is empty.
	NgrokAPI string
}

// DiscordConfig enables the Discord gateway listener when BotToken is set.
type DiscordConfig struct {
	BotToken string
	// MentionOnly makes the bot answer in guild channels only when mentioned. DMs are always answered.
	MentionOnly bool
}

// ChatConfig bounds the in-memory session cache and each session's turn rate.
type ChatConfig struct {
	SessionTTL       time.Duration
	MaxSessions      int
	RateLimitPerMin  int
	ResponderTimeout time.Duration
	EnableResponder  bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
	// Project and Location are only read by the vertex provider.
	Project  string `yaml:"project,omitempty"`
	Location string `yaml:"location,omitempty"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Restaurant
	cfg.Restaurant.Name = v.GetString("restaurant.name")
	cfg.Restaurant.Address = v.GetString("restaurant.address")
	cfg.Restaurant.Phone = v.GetString("restaurant.phone")
	cfg.Restaurant.Email = v.GetString("restaurant.email")
	cfg.Restaurant.Website = v.GetString("restaurant.website")
	cfg.Restaurant.Timezone = v.GetString("restaurant.timezone")
	cfg.Restaurant.MaxPerSlot = v.GetInt("restaurant.max_per_slot")
	cfg.Restaurant.MaxPartySize = v.GetInt("restaurant.max_party_size")
	cfg.Restaurant.MaxAdvanceDays = v.GetInt("restaurant.max_advance_days")
	if hours := v.GetStringMapString("restaurant.hours"); len(hours) > 0 {
		cfg.Restaurant.Hours = hours
	}

	// Storage
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(v.GetString("storage.driver")))
	cfg.Storage.DataDir = v.GetString("storage.data_dir")
	cfg.Storage.DSN = expandEnvVar(v, v.GetString("storage.dsn"))

	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(v, v.GetString("redis.password"))
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.Prefix = v.GetString("redis.prefix")

	// Channels
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Discord.BotToken = v.GetString("discord.bot_token")
	cfg.Discord.MentionOnly = v.GetBool("discord.mention_only")
	if dcToken := v.GetString("discord_bot_token"); dcToken != "" {
		cfg.Discord.BotToken = dcToken
	}

	cfg.Chat.SessionTTL = v.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = v.GetInt("chat.max_sessions")
	cfg.Chat.RateLimitPerMin = v.GetInt("chat.rate_limit_per_min")
	cfg.Chat.ResponderTimeout = v.GetDuration("chat.responder_timeout")
	cfg.Chat.EnableResponder = v.GetBool("chat.enable_responder")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
					Project:  expandEnvVar(v, getStringFromMap(providerMap, "project")),
					Location: getStringFromMap(providerMap, "location"),
				})
			}
		}
	}

	// The bot runs on canned replies alone, so providers are optional.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, err
		}
	}

	if err := validateStorage(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("restaurant.timezone", "Europe/Madrid")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.prefix", "restaurant")

	v.SetDefault("discord.mention_only", true)

	v.SetDefault("chat.session_ttl", "30m")
	v.SetDefault("chat.max_sessions", 1000)
	v.SetDefault("chat.rate_limit_per_min", 30)
	v.SetDefault("chat.responder_timeout", "8s")
	v.SetDefault("chat.enable_responder", true)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

func validateStorage(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "file", "sqlite":
		return nil
	case "postgres":
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for driver postgres")
		}
		return nil
	case "redis":
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for driver redis")
		}
		return nil
	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
