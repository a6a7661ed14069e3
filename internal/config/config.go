package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	HealthPort    string `mapstructure:"HEALTH_PORT"`
	MongoUrl      string `mapstructure:"MONGO_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
	RedisUrl      string `mapstructure:"REDIS_URL"`
	StaticDir     string `mapstructure:"STATIC_DIR"`
	AllowedOrigin string `mapstructure:"ALLOWED_ORIGIN"`
}

func LoadConfig() (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Set default values
	viper.SetDefault("PORT", ":3999")
	viper.SetDefault("HEALTH_PORT", ":3998")
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "condotrack")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("STATIC_DIR", "./public")
	viper.SetDefault("ALLOWED_ORIGIN", "http://localhost:3000")

	// Load environment file
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".") // Look in the project root directory

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// Map the values to the Config struct
	err = viper.Unmarshal(&c)
	return
}
