package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "RECIPES"
	configFileName = "favorites"
	configFileType = "yaml"

	cfgKeyAPIURL        = "api_url"
	cfgKeyTimeout       = "timeout"
	cfgKeyPrimary       = "primary"
	cfgKeyDBPath        = "db_path"
	cfgKeyS3Bucket      = "aws_s3_bucket"
	cfgKeyS3Prefix      = "aws_s3_prefix"
	cfgKeyS3Region      = "aws_s3_region"
	cfgKeyAccessKey     = "aws_access_key"
	cfgKeySecretKey     = "aws_secret_key"
	cfgKeyBackup        = "backup"
	cfgKeyRedisAddr     = "redis_addr"
	cfgKeyRedisPassword = "redis_password"
	cfgKeySessionID     = "session_id"
	cfgKeySessionTTL    = "session_ttl"

	primarySQLite = "sqlite"
	primaryS3     = "s3"
	backupMemory  = "memory"
	backupRedis   = "redis"
)

var defaults = map[string]interface{}{
	cfgKeyAPIURL:     "http://localhost:5000",
	cfgKeyTimeout:    10 * time.Second,
	cfgKeyPrimary:    primarySQLite,
	cfgKeyDBPath:     "./data/favorites.db",
	cfgKeyS3Prefix:   "favorites",
	cfgKeyS3Region:   "ap-southeast-1",
	cfgKeyBackup:     backupMemory,
	cfgKeyRedisAddr:  "localhost:6379",
	cfgKeySessionID:  "local",
	cfgKeySessionTTL: 24 * time.Hour,
}

// loadConfig layers defaults, an optional favorites.yaml and RECIPES_*
// environment variables into v. An explicit path must exist; the default
// lookup in the working directory may find nothing.
func loadConfig(v *viper.Viper, path string) error {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
