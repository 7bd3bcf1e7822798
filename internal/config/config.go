package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	GoogleSheets   GoogleSheets   `mapstructure:",squash"`
	Admin          Admin          `mapstructure:",squash"`
	DatasetSync    DatasetSync    `mapstructure:",squash"`
	KPIHistorySync KPIHistorySync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type GoogleSheets struct {
	ClientEmail     string        `mapstructure:"google_sheets_client_email"`
	PrivateKey      string        `mapstructure:"google_sheets_private_key"`
	CredentialsFile string        `mapstructure:"google_sheets_credentials_file"`
	SpreadsheetID   string        `mapstructure:"pizzana_spreadsheet_id"`
	RequestTimeout  time.Duration `mapstructure:"sheets_request_timeout"`
	CacheTTL        time.Duration `mapstructure:"dataset_cache_ttl"`
}

type Admin struct {
	KeyHash string `mapstructure:"admin_key_hash"`
}

type DatasetSync struct {
	CronSchedule string `mapstructure:"dataset_sync_cron"`
	Enabled      bool   `mapstructure:"dataset_sync_enabled"`
}

type KPIHistorySync struct {
	CronSchedule      string `mapstructure:"kpi_history_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"kpi_history_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"kpi_history_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pizzana")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("APP_TIMEZONE", "America/Santiago")

	viper.SetDefault("GOOGLE_SHEETS_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_SHEETS_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("PIZZANA_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_REQUEST_TIMEOUT", "20s")
	viper.SetDefault("DATASET_CACHE_TTL", "2m") // 0 desabilita o cache

	viper.SetDefault("ADMIN_KEY_HASH", "")

	viper.SetDefault("DATASET_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DATASET_SYNC_ENABLED", false)

	viper.SetDefault("KPI_HISTORY_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("KPI_HISTORY_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("KPI_HISTORY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// A chave privada costuma vir com \n escapado nas variáveis de ambiente
	config.GoogleSheets.PrivateKey = strings.ReplaceAll(config.GoogleSheets.PrivateKey, `\n`, "\n")

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.App.Timezone, err)
	}
	config.App.Location = location

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
