package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported generation providers
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Logger  LoggerConfig
	Prompts PromptConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
	StaticDir    string
}

type LLMConfig struct {
	Provider     string
	Model        string
	Timeout      time.Duration
	Temperature  float64
	ServerURL    string
	GeminiAPIKey string
	OpenAIAPIKey string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type PromptConfig struct {
	SubjectArea  string
	DefaultTopic string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 90)
	v.SetDefault("server.write_timeout", 90)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.body_limit", 4*1024*1024)
	v.SetDefault("server.static_dir", "./static")

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.timeout", 60)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.server_url", "http://localhost:11434")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("prompts.subject_area", "Comunicación")
	v.SetDefault("prompts.default_topic", "")
}

// LoadConfig reads .env, an optional config.yaml and the environment, in
// increasing order of precedence.
func LoadConfig() (*Config, error) {
	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
			StaticDir:    v.GetString("server.static_dir"),
		},
		LLM: LLMConfig{
			Provider:     strings.ToLower(v.GetString("llm.provider")),
			Model:        v.GetString("llm.model"),
			Timeout:      time.Duration(v.GetInt("llm.timeout")) * time.Second,
			Temperature:  v.GetFloat64("llm.temperature"),
			ServerURL:    v.GetString("llm.server_url"),
			GeminiAPIKey: v.GetString("gemini_api_key"),
			OpenAIAPIKey: v.GetString("openai_api_key"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Prompts: PromptConfig{
			SubjectArea:  v.GetString("prompts.subject_area"),
			DefaultTopic: v.GetString("prompts.default_topic"),
		},
	}

	// PORT wins over server.port.
	if port := os.Getenv("PORT"); port != "" {
		v.Set("server.port", port)
		cfg.Server.Port = v.GetInt("server.port")
	}
	if cfg.Prompts.DefaultTopic == "" {
		cfg.Prompts.DefaultTopic = cfg.Prompts.SubjectArea
	}

	return cfg
}

// Validate reports configuration that makes the server unable to serve any
// generation request.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLM.Provider)
		}
	case ProviderOpenAI:
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.LLM.Provider)
		}
	case ProviderOllama:
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("llm.server_url is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
