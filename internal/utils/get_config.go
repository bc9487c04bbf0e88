package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Application configuration
	AppPort        string `yaml:"APP_PORT"`
	AppTimeZone    string `yaml:"APP_TIMEZONE"`
	RateLimitMax   string `yaml:"RATE_LIMIT_MAX"`
	LogFile        string `yaml:"LOG_FILE"`
	AllowedOrigins string `yaml:"ALLOWED_ORIGINS"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":        "5000",
	"APP_TIMEZONE":    "UTC",
	"RATE_LIMIT_MAX":  "10",
	"LOG_FILE":        "./logs/app.log",
	"ALLOWED_ORIGINS": "*",
	"DB_DRIVER":       "postgres",
	"DB_USER":         "recipe",
	"DB_NAME":         "recipeapp",
	"DB_PASSWORD":     "recipe123",
	"DB_PORT":         "5432",
	"DB_HOST":         "localhost",
	"DB_PATH":         "recipes.db",
}

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from the environment first, then config.yaml, then
// the built-in default.
func GetConfig(key string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	if value := fromFile(key); value != "" {
		return value
	}
	return defaults[key]
}

func fromFile(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_TIMEZONE":
		return config.AppTimeZone
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "LOG_FILE":
		return config.LogFile
	case "ALLOWED_ORIGINS":
		return config.AllowedOrigins
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	default:
		return ""
	}
}
