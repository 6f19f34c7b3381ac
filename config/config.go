package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string   `mapstructure:"SERVER_ADDRESS"`  // e.g., ":8080"
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"` // CORS origins for the frontend

	// AI Configuration
	DeepSeekAPIKey  string `mapstructure:"DEEPSEEK_API_KEY"`  // API key for DeepSeek
	DeepSeekBaseURL string `mapstructure:"DEEPSEEK_BASE_URL"` // OpenAI-compatible base URL
	DeepSeekModel   string `mapstructure:"DEEPSEEK_MODEL"`    // e.g., "deepseek-chat"
	MaxTokens       int    `mapstructure:"MAX_TOKENS"`        // completion token budget

	// Figma Integration Configuration
	FigmaAPIToken string `mapstructure:"FIGMA_API_TOKEN"` // Personal access token; optional

	// Export Configuration
	ExportDir string `mapstructure:"EXPORT_DIR"` // When set, generated projects are also written here
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("ALLOWED_ORIGINS", []string{})
	viper.SetDefault("DEEPSEEK_API_KEY", "")
	viper.SetDefault("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1")
	viper.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	viper.SetDefault("MAX_TOKENS", 4000)
	viper.SetDefault("FIGMA_API_TOKEN", "")
	viper.SetDefault("EXPORT_DIR", "")

	viper.AutomaticEnv() // Read environment variables that match keys

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine as long as env vars carry the values.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.DeepSeekAPIKey == "" {
		log.Println("WARN: DEEPSEEK_API_KEY is not set. Conversion endpoints will be unavailable until it is configured.")
	}

	return
}
