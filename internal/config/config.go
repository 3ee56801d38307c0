package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/briefly/internal/validation"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
	StorageDriverMySQL  = "mysql"
)

type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Server     ServerConfig     `mapstructure:"server"`
	Workflow   WorkflowConfig   `mapstructure:"workflow"`
	Generation GenerationConfig `mapstructure:"generation"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
}

// StorageConfig selects the medium of the persistent store and the file that
// holds session-scoped staging between commands.
type StorageConfig struct {
	Driver      string `mapstructure:"driver" validate:"oneof=memory file sqlite mysql"`
	FilePath    string `mapstructure:"file_path" validate:"required_if=Driver file"`
	SQLitePath  string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	SessionFile string `mapstructure:"session_file"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// WorkflowConfig holds the feedback delays of the save workflow.
type WorkflowConfig struct {
	SavingDelay   time.Duration `mapstructure:"saving_delay"`
	SuccessWindow time.Duration `mapstructure:"success_window"`
}

type GenerationConfig struct {
	BaseURL    string        `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries uint          `mapstructure:"max_retries"`
}

type TemplatesConfig struct {
	StudySheetTemplate string `mapstructure:"study_sheet_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	StudySheetDirectory string `mapstructure:"study_sheet_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := validation.New("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/briefly")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("storage.driver", StorageDriverFile)
	v.SetDefault("storage.file_path", filepath.Join("data", "briefly.yml"))
	v.SetDefault("storage.sqlite_path", filepath.Join("data", "briefly.db"))
	v.SetDefault("storage.session_file", filepath.Join("data", "session.yml"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "briefly")
	v.SetDefault("database.username", "user")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("workflow.saving_delay", "0s")
	v.SetDefault("workflow.success_window", "1500ms")
	v.SetDefault("generation.base_url", "http://localhost:3001/api")
	v.SetDefault("generation.timeout", "60s")
	v.SetDefault("generation.max_retries", 3)
	// Template is optional - if not specified, the embedded study sheet template is used
	v.SetDefault("templates.study_sheet_template", "")
	v.SetDefault("outputs.study_sheet_directory", filepath.Join("outputs", "study_sheets"))

	// A local .env file may provide the secrets below
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "BRIEFLY_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind BRIEFLY_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("generation.api_key", "BRIEFLY_GENERATION_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind BRIEFLY_GENERATION_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("storage.driver", "BRIEFLY_STORAGE_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind BRIEFLY_STORAGE_DRIVER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		errorMsgs := validation.Messages(err, loader.translator)
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
