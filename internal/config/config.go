package config

import (
	"time"

	pkgconfig "github.com/carlosalvarezg/recipe-search/pkg/config"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Encoder EncoderConfig
	Search  SearchConfig
	Cache   CacheConfig
	AWS     AWSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type EncoderConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Token      string `mapstructure:"token"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
}

type SearchConfig struct {
	Index     string        `mapstructure:"index"`
	TopK      int           `mapstructure:"top_k"`
	PageSize  int           `mapstructure:"page_size"`
	OpTimeout time.Duration `mapstructure:"op_timeout"`
}

type CacheConfig struct {
	Prefix string        `mapstructure:"prefix"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type AWSConfig struct {
	Region      string `mapstructure:"region"`
	RedisSecret string `mapstructure:"redis_secret"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("encoder.base_url", "http://localhost:8000/v1")
	v.SetDefault("encoder.token", "none")
	v.SetDefault("encoder.model", "all-mpnet-base-v2")
	v.SetDefault("encoder.dimensions", 768)
	v.SetDefault("search.index", "idx:recipes")
	v.SetDefault("search.top_k", 100)
	v.SetDefault("search.page_size", 3)
	v.SetDefault("search.op_timeout", "5s")
	v.SetDefault("cache.prefix", "search_cache")
	v.SetDefault("cache.ttl", "3s")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.redis_secret", "redis_data")
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("redis.address", "REDIS_ADDRESS")
	v.BindEnv("redis.username", "REDIS_USERNAME")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("encoder.base_url", "ENCODER_BASE_URL")
	v.BindEnv("encoder.token", "ENCODER_TOKEN")
	v.BindEnv("encoder.model", "ENCODER_MODEL")
	v.BindEnv("search.index", "SEARCH_INDEX")
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.redis_secret", "AWS_REDIS_SECRET")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
