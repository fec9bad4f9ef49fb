// Package config предоставляет структуры и функции для загрузки конфигурации
// из YAML-файла (CONFIG_PATH), переменных окружения и необязательного .env.
// Конфигурация читается один раз при старте и дальше не меняется.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/magabrotheeeer/gym-membership/internal/lib/secret"
)

// ErrNoAdminPIN — не задан ни PIN администратора, ни его хэш.
var ErrNoAdminPIN = errors.New("admin pin is not configured")

// Config общая структура для хранения настроек
type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"users.txt"`
	Admin       `yaml:"admin"`
	Metrics     `yaml:"metrics"`
	RabbitMQ    `yaml:"rabbitmq"`
}

// Admin структура для PIN администратора. Достаточно одного из полей.
type Admin struct {
	PIN     string `yaml:"pin" env:"ADMIN_PIN"`
	PINHash string `yaml:"pin_hash" env:"ADMIN_PIN_HASH"`
}

// Metrics структура для HTTP-эндпоинта метрик. Пустой адрес отключает сервер.
type Metrics struct {
	AddressMetrics string `yaml:"address" env:"METRICS_ADDRESS"`
}

// RabbitMQ структура для публикации событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URLRabbitMQ string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange    string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"members"`
	Retries     int           `yaml:"retries" env:"RABBITMQ_RETRIES" env-default:"3"`
	RetryDelay  time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"1s"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
// Перед чтением подхватывает .env из рабочей директории, если он есть.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("cannot load .env: %s", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла configPath (переменные окружения имеют приоритет)
// или только из окружения, если путь пустой.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	var err error
	if configPath != "" {
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PIN == "" && c.PINHash == "" {
		return ErrNoAdminPIN
	}
	if c.PINHash != "" && !secret.IsHash(c.PINHash) {
		return errors.New("admin pin_hash is not a bcrypt hash")
	}
	if c.StoragePath == "" {
		return errors.New("storage_path is empty")
	}
	return nil
}

// AdminPINHash возвращает bcrypt‑хэш PIN администратора.
// Готовый хэш имеет приоритет над открытым PIN.
func (c *Config) AdminPINHash() (string, error) {
	if c.PINHash != "" {
		return c.PINHash, nil
	}
	return secret.Hash(c.PIN)
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StoragePath: %s\n"+
			"Admin:\n"+
			"  PIN: %s\n"+
			"  PINHash: %s\n"+
			"Metrics:\n"+
			"  Address: %s\n"+
			"RabbitMQ:\n"+
			"  URL: %s\n"+
			"  Exchange: %s\n"+
			"  Retries: %d\n"+
			"  RetryDelay: %s\n",
		c.Env,
		c.StoragePath,
		mask(c.PIN),
		mask(c.PINHash),
		c.AddressMetrics,
		mask(c.URLRabbitMQ),
		c.Exchange,
		c.Retries,
		c.RetryDelay,
	)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
