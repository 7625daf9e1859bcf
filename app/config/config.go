package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreBadger = "badger"
	StoreMongo  = "mongo"
)

// Config holds all runtime settings of the blog service.
type Config struct {
	Addr  string
	Store string

	BadgerPath     string
	BadgerInMemory bool
	BackupDir      string

	MongoURI            string
	MongoDatabase       string
	MongoCollection     string
	MongoConnectTimeout time.Duration

	LogLevel       string
	LogDevelopment bool

	DefaultLimit int
	MaxLimit     int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("store", StoreBadger)
	v.SetDefault("badger.path", "data/badger")
	v.SetDefault("badger.in_memory", false)
	v.SetDefault("backup.dir", "data/backups")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "blog")
	v.SetDefault("mongo.collection", "posts_db")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("pagination.default_limit", 10)
	v.SetDefault("pagination.max_limit", 100)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
}

// Load reads configuration from defaults, an optional .env file, an
// optional config file named by BLOG_CONFIG, and BLOG_* environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("BLOG_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		Addr:                v.GetString("addr"),
		Store:               strings.ToLower(v.GetString("store")),
		BadgerPath:          v.GetString("badger.path"),
		BadgerInMemory:      v.GetBool("badger.in_memory"),
		BackupDir:           v.GetString("backup.dir"),
		MongoURI:            v.GetString("mongo.uri"),
		MongoDatabase:       v.GetString("mongo.database"),
		MongoCollection:     v.GetString("mongo.collection"),
		MongoConnectTimeout: v.GetDuration("mongo.connect_timeout"),
		LogLevel:            v.GetString("log.level"),
		LogDevelopment:      v.GetBool("log.development"),
		DefaultLimit:        v.GetInt("pagination.default_limit"),
		MaxLimit:            v.GetInt("pagination.max_limit"),
		ReadTimeout:         v.GetDuration("http.read_timeout"),
		WriteTimeout:        v.GetDuration("http.write_timeout"),
		ShutdownTimeout:     v.GetDuration("http.shutdown_timeout"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	switch c.Store {
	case StoreBadger:
		if c.BadgerPath == "" && !c.BadgerInMemory {
			return errors.New("config: badger.path is required")
		}
	case StoreMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" || c.MongoCollection == "" {
			return errors.New("config: mongo.uri, mongo.database and mongo.collection are required")
		}
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.DefaultLimit < 1 || c.MaxLimit < 1 {
		return errors.New("config: pagination limits must be positive")
	}
	if c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("config: default limit %d exceeds max limit %d", c.DefaultLimit, c.MaxLimit)
	}
	return nil
}
