package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Smartlead Smartlead `mapstructure:",squash"`
	Pipl      Pipl      `mapstructure:",squash"`
	Instantly Instantly `mapstructure:",squash"`
	Fetch     Fetch     `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
	StatsSync StatsSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Smartlead struct {
	URL string `mapstructure:"smartlead_url"`
}

type Pipl struct {
	URL string `mapstructure:"pipl_url"`
}

type Instantly struct {
	URL string `mapstructure:"instantly_url"`
}

// Fetch controla o fan-out de busca de estatísticas por campanha
type Fetch struct {
	Timeout          time.Duration `mapstructure:"fetch_timeout"`
	MaxConcurrency   int           `mapstructure:"fetch_max_concurrency"`
	PiplLookbackDays int           `mapstructure:"pipl_lookback_days"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// StatsSync é a atualização periódica das api keys cadastradas
type StatsSync struct {
	CronSchedule        string `mapstructure:"stats_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"stats_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"stats_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"stats_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sequencer_stats?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SMARTLEAD_URL", "https://server.smartlead.ai")
	viper.SetDefault("PIPL_URL", "https://api.pipl.ai")
	viper.SetDefault("INSTANTLY_URL", "https://api.instantly.ai")

	viper.SetDefault("FETCH_TIMEOUT", "20s")
	viper.SetDefault("FETCH_MAX_CONCURRENCY", 5)
	viper.SetDefault("PIPL_LOOKBACK_DAYS", 90)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Atualização periódica desabilitada por padrão; a busca sob demanda é o fluxo principal
	viper.SetDefault("STATS_SYNC_CRON", "0 */6 * * *")
	viper.SetDefault("STATS_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("STATS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("STATS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
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

	if config.Auth.Secret == "" {
		return nil, fmt.Errorf("AUTH_SECRET não configurado")
	}

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

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
