package common

import (
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	return NewViperFromFile(".env")
}

// NewViperFromFile reads path when it exists; the environment always wins.
func NewViperFromFile(path string) *Config {
	config := viper.New()
	config.SetConfigFile(path)
	config.SetConfigType("env")
	config.AutomaticEnv()

	config.SetDefault("APP_NAME", "registration-form")
	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("APP_LOCALE", "da")
	config.SetDefault("APP_PHONE_REGION", "DK")
	config.SetDefault("LOG_DIR", "logs")
	config.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:8080")

	log.Tracef("Checking file %s ....", path)
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("config file %s not loaded, using environment: %v", path, err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerAddress() string {
	port := strings.TrimPrefix(c.Viper.GetString("APP_PORT"), ":")
	return ":" + port
}

func (c *Config) GetValidationConfig() (locale, phoneRegion string) {
	locale = c.Viper.GetString("APP_LOCALE")
	phoneRegion = c.Viper.GetString("APP_PHONE_REGION")
	return locale, phoneRegion
}

func (c *Config) GetLogDir() string {
	return c.Viper.GetString("LOG_DIR")
}

func (c *Config) GetCorsConfig() (allowOrigins string) {
	return c.Viper.GetString("CORS_ALLOW_ORIGINS")
}
