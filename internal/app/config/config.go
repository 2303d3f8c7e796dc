package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost     string
	ServicePort     int
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	Planning        PlanningConfig
	Drafts          DraftsConfig
	JWT             JWTConfig
	Redis           RedisConfig
	Minio           MinioConfig
}

type PlanningConfig struct {
	Timezone string
	Location *time.Location `mapstructure:"-"`
}

type DraftsConfig struct {
	TTL     time.Duration
	LockTTL time.Duration
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"
	envMinioBucket    = "MINIO_BUCKET"
	envMinioUseSSL    = "MINIO_USE_SSL"

	envJWTSecret = "JWT_SECRET"
)

func setDefaults() {
	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("CORSOrigins", []string{"http://localhost:5173"})
	viper.SetDefault("ShutdownTimeout", 10*time.Second)
	viper.SetDefault("Planning.Timezone", "Europe/Amsterdam")
	viper.SetDefault("Drafts.TTL", 12*time.Hour)
	viper.SetDefault("Drafts.LockTTL", 2*time.Minute)
	viper.SetDefault("JWT.ExpiresIn", 12*time.Hour)
	viper.SetDefault("Minio.Bucket", "werkbon-fotos")
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	setDefaults()
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	cfg.Planning.Location, err = time.LoadLocation(cfg.Planning.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown planning timezone %q: %w", cfg.Planning.Timezone, err)
	}

	// the signing secret comes from the environment only
	cfg.JWT.Token = os.Getenv(envJWTSecret)
	if cfg.JWT.Token == "" {
		return nil, fmt.Errorf("%s is not set", envJWTSecret)
	}
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	cfg.Minio.Endpoint = os.Getenv(envMinioEndpoint)
	cfg.Minio.AccessKey = os.Getenv(envMinioAccessKey)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecretKey)
	if bucket := os.Getenv(envMinioBucket); bucket != "" {
		cfg.Minio.Bucket = bucket
	}
	cfg.Minio.UseSSL = os.Getenv(envMinioUseSSL) == "true"

	log.WithFields(log.Fields{
		"host":     cfg.ServiceHost,
		"port":     cfg.ServicePort,
		"timezone": cfg.Planning.Timezone,
		"bucket":   cfg.Minio.Bucket,
	}).Info("config parsed")

	return cfg, nil
}
