package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Queue    QueueConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	MaxConns   int32
	AutoCreate bool
}

type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type QueueConfig struct {
	BufferSize int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "review-insights")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_AUTO_CREATE", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("QUEUE_BUFFER_SIZE", 256)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:       viper.GetString("DB_HOST"),
			Port:       viper.GetString("DB_PORT"),
			Name:       viper.GetString("DB_NAME"),
			User:       viper.GetString("DB_USER"),
			Password:   viper.GetString("DB_PASS"),
			MaxConns:   viper.GetInt32("DB_MAX_CONNS"),
			AutoCreate: viper.GetBool("DB_AUTO_CREATE"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         viper.GetString("OPENAI_API_KEY"),
			BaseURL:        viper.GetString("OPENAI_BASE_URL"),
			Model:          viper.GetString("OPENAI_MODEL"),
			TimeoutSeconds: viper.GetInt("OPENAI_TIMEOUT_SECONDS"),
		},
		Queue: QueueConfig{
			BufferSize: viper.GetInt("QUEUE_BUFFER_SIZE"),
		},
	}

	return config, nil
}
