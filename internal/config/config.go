package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Baidu  BaiduConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type BaiduConfig struct {
	AK           string
	BaseURL      string
	CoordType    string
	Tactics      int
	Timeout      time.Duration
	RetryMax     int
	RetryBackoff time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DirectionsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, the environment is enough
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Baidu: BaiduConfig{
			AK:           viper.GetString("BAIDU_AK"),
			BaseURL:      viper.GetString("BAIDU_BASE_URL"),
			CoordType:    viper.GetString("BAIDU_COORD_TYPE"),
			Tactics:      viper.GetInt("BAIDU_TACTICS"),
			Timeout:      time.Duration(viper.GetInt("BAIDU_TIMEOUT")) * time.Second,
			RetryMax:     viper.GetInt("BAIDU_RETRY_MAX"),
			RetryBackoff: time.Duration(viper.GetInt("BAIDU_RETRY_BACKOFF_MS")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DirectionsCacheTTL: time.Duration(viper.GetInt("DIRECTIONS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Baidu.BaseURL == "" {
		cfg.Baidu.BaseURL = "https://api.map.baidu.com"
	}
	if cfg.Baidu.CoordType == "" {
		cfg.Baidu.CoordType = "bd09ll"
	}
	if cfg.Baidu.Timeout == 0 {
		cfg.Baidu.Timeout = 20 * time.Second
	}
	if cfg.Baidu.RetryMax == 0 {
		cfg.Baidu.RetryMax = 4
	}
	if cfg.Baidu.RetryBackoff == 0 {
		cfg.Baidu.RetryBackoff = 200 * time.Millisecond
	}
	if cfg.Cache.DirectionsCacheTTL == 0 {
		cfg.Cache.DirectionsCacheTTL = 24 * time.Hour
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}

	if cfg.Baidu.AK == "" {
		return nil, fmt.Errorf("BAIDU_AK is required")
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CacheEnabled сообщает, настроен ли Redis для кеша направлений
func (c *Config) CacheEnabled() bool {
	return c.Redis.Host != ""
}
