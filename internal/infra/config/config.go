/*
MIT License

Copyright (c) 2025 Первый Бит

Данная лицензия разрешает использование, копирование, изменение, слияние, публикацию, распространение,
лицензирование и/или продажу копий программного обеспечения при соблюдении следующих условий:

В вышеуказанном уведомлении об авторских правах и данном уведомлении о разрешении должны быть включены все копии
или значимые части программного обеспечения.

ПРОГРАММНОЕ ОБЕСПЕЧЕНИЕ ПРЕДОСТАВЛЯЕТСЯ "КАК ЕСТЬ", БЕЗ ГАРАНТИЙ ЛЮБОГО РОДА, ЯВНЫХ ИЛИ ПОДРАЗУМЕВАЕМЫХ,
ВКЛЮЧАЯ, НО НЕ ОГРАНИЧИВАЯСЬ, ГАРАНТИЯМИ КОММЕРЧЕСКОЙ ПРИГОДНОСТИ, СООТВЕТСТВИЯ ДЛЯ ОПРЕДЕЛЕННОЙ ЦЕЛИ И
НЕНАРУШЕНИЯ ПРАВ. НИ В КОЕМ СЛУЧАЕ АВТОРЫ ИЛИ ПРАВООБЛАДАТЕЛИ НЕ НЕСУТ ОТВЕТСТВЕННОСТИ ПО ИСКАМ,
УСЛОВИЯМ, ДАМГЕ или другим обязательствам, возникающим из, или в связи с использованием, или иным образом
связанным с данным программным обеспечением.
*/

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Типы хранилища
const (
	StorageMemory   = "memory"
	StorageJSON     = "json"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Режимы получения обновлений Telegram
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// DefaultPath путь к файлу конфигурации, если CONFIG_PATH не задан
const DefaultPath = "configs/config.yaml"

// Config параметры приложения. Значения из YAML перекрываются переменными окружения.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
		// AllowedOrigins origins для CORS; пусто - CORS выключен
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string        `yaml:"token"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
		AdminIDs    []int64       `yaml:"admin_ids"`
		// Mode polling или webhook
		Mode       string `yaml:"mode"`
		WebhookURL string `yaml:"webhook_url"`
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"telegram_bot"`
	Admin struct {
		// Token значение заголовка X-Teacher-Token для HTTP API
		Token string `yaml:"token"`
	} `yaml:"admin"`
	Storage struct {
		Type         string `yaml:"type"`
		DataDir      string `yaml:"data_dir"`
		SQLitePath   string `yaml:"sqlite_path"`
		MessagesFile string `yaml:"messages_file"`
	} `yaml:"storage"`
	Database struct {
		DSN      string `yaml:"dsn"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Quiz struct {
		QuestionsPerTest int           `yaml:"questions_per_test"`
		RecordRetries    int           `yaml:"record_retries"`
		RetryDelay       time.Duration `yaml:"retry_delay"`
		ReportFontDir    string        `yaml:"report_font_dir"`
	} `yaml:"quiz"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Debug      bool   `yaml:"debug"`
	} `yaml:"log"`
	RateLimit struct {
		PerSecond float64 `yaml:"per_second"`
		Burst     int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// LoadConfig читает .env (если есть), YAML-файл filename и переменные окружения.
// Пустой filename или отсутствующий файл по умолчанию дают конфигурацию из значений по умолчанию.
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if filename != "" {
		if err := decodeFile(filename, config); err != nil {
			if !(errors.Is(err, os.ErrNotExist) && filename == DefaultPath) {
				return nil, err
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func decodeFile(filename string, config *Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return fmt.Errorf("failed to decode config %s: %w", filename, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("TELEGRAM_BOT_TOKEN", &c.TelegramBot.Token)
	setString("TELEGRAM_MODE", &c.TelegramBot.Mode)
	setString("WEBHOOK_URL", &c.TelegramBot.WebhookURL)
	setString("ADMIN_TOKEN", &c.Admin.Token)
	setString("STORAGE_TYPE", &c.Storage.Type)
	setString("DATA_DIR", &c.Storage.DataDir)
	setString("SQLITE_PATH", &c.Storage.SQLitePath)
	setString("DATABASE_DSN", &c.Database.DSN)
	setString("LOG_LEVEL", &c.Log.Level)

	if v := os.Getenv("TELEGRAM_ADMIN_IDS"); v != "" {
		ids, err := parseIDs(v)
		if err != nil {
			return err
		}
		c.TelegramBot.AdminIDs = ids
	}

	if v := os.Getenv("DEBUG"); v != "" {
		c.Log.Debug = v == "true" || v == "1"
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.TelegramBot.PollTimeout <= 0 {
		c.TelegramBot.PollTimeout = 10 * time.Second
	}
	if c.TelegramBot.Mode == "" {
		c.TelegramBot.Mode = ModePolling
	}
	if c.TelegramBot.ListenAddr == "" {
		c.TelegramBot.ListenAddr = ":8443"
	}
	if c.Storage.Type == "" {
		c.Storage.Type = StorageMemory
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = filepath.Join(c.Storage.DataDir, "quiz.db")
	}
	if c.Quiz.QuestionsPerTest <= 0 {
		c.Quiz.QuestionsPerTest = 5
	}
	if c.Quiz.RecordRetries <= 0 {
		c.Quiz.RecordRetries = 3
	}
	if c.Quiz.RetryDelay <= 0 {
		c.Quiz.RetryDelay = 200 * time.Millisecond
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.RateLimit.PerSecond <= 0 {
		c.RateLimit.PerSecond = 2
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 5
	}
}

// Validate проверяет согласованность настроек. Токен бота проверяется при запуске бота.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageJSON, StorageSQLite:
	case StoragePostgres:
		if c.Database.DSN == "" && c.Database.Host == "" {
			return fmt.Errorf("storage type postgres requires database dsn or host")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	switch c.TelegramBot.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.TelegramBot.WebhookURL == "" {
			return errors.New("telegram mode webhook requires webhook_url")
		}
	default:
		return fmt.Errorf("unknown telegram mode %q", c.TelegramBot.Mode)
	}
	return nil
}

// IsAdmin true, если Telegram-пользователь указан в admin_ids
func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.TelegramBot.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

// DSN строка подключения к PostgreSQL
func (c *Config) DSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Database.User, c.Database.Password),
		Host:   c.Database.Host + ":" + c.Database.Port,
		Path:   "/" + c.Database.Name,
	}
	return u.String()
}

// DataFile путь к JSON-файлу хранилища
func (c *Config) DataFile(name string) string {
	return filepath.Join(c.Storage.DataDir, name)
}

// Addr адрес HTTP-сервера
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
