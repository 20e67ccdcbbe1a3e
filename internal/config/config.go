package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// StorageConfig holds editor-record storage backend settings
type StorageConfig struct {
	Type string `json:"type" mapstructure:"type"`
}

// CacheConfig holds geocode cache settings
type CacheConfig struct {
	Backend string        `json:"backend" mapstructure:"backend"` // memory or db
	TTL     time.Duration `json:"ttl" mapstructure:"ttl"`         // 0 disables expiry
}

// GeocoderConfig holds geocoding service settings
type GeocoderConfig struct {
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	APIKey   string `json:"apiKey" mapstructure:"apiKey"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./maplogs")
	viper.SetDefault("templatesDir", "")

	viper.SetDefault("server.address", ":8080")

	viper.SetDefault("geocoder.endpoint", "https://maps.googleapis.com/maps/api/geocode")
	viper.SetDefault("geocoder.apiKey", "")

	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", "0")

	viper.SetDefault("storage.type", "gorm")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "mapfront")

	viper.SetDefault("prefetch.enabled", false)
	viper.SetDefault("prefetch.workers", 4)

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "mapfront-metrics")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetConfigName("mapfront.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetStorageConfig returns the storage backend settings.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
	}
}

// GetCacheConfig returns the geocode cache settings.
func GetCacheConfig() CacheConfig {
	return CacheConfig{
		Backend: viper.GetString("cache.backend"),
		TTL:     viper.GetDuration("cache.ttl"),
	}
}

// GetGeocoderConfig returns the geocoding service settings.
func GetGeocoderConfig() GeocoderConfig {
	return GeocoderConfig{
		Endpoint: viper.GetString("geocoder.endpoint"),
		APIKey:   viper.GetString("geocoder.apiKey"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
