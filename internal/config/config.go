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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	Chat       Chat       `mapstructure:",squash"`
	ChatHealth ChatHealth `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

// Chat agrupa as configurações do proxy para o webhook do n8n
type Chat struct {
	WebhookURL         string        `mapstructure:"n8n_webhook_chat_url"`
	HealthURL          string        `mapstructure:"n8n_webhook_health_url"`
	RateLimitPerSecond float64       `mapstructure:"chat_rate_limit_per_second"`
	RateLimitBurst     int           `mapstructure:"chat_rate_limit_burst"`
	HistoryLimit       int           `mapstructure:"chat_history_limit"`
	HistoryTTL         time.Duration `mapstructure:"chat_history_ttl"`
}

type ChatHealth struct {
	CronSchedule string `mapstructure:"chat_health_cron"`
	Enabled      bool   `mapstructure:"chat_health_enabled"`
}

type Dashboard struct {
	TopLimit int `mapstructure:"dashboard_top_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("AUTO_MIGRATE", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("REDIS_URL", "") // Vazio = histórico do chat em memória

	viper.SetDefault("N8N_WEBHOOK_CHAT_URL", "")
	viper.SetDefault("N8N_WEBHOOK_HEALTH_URL", "")
	viper.SetDefault("CHAT_RATE_LIMIT_PER_SECOND", 1) // 1 mensagem por segundo por sessão
	viper.SetDefault("CHAT_RATE_LIMIT_BURST", 3)
	viper.SetDefault("CHAT_HISTORY_LIMIT", 100)
	viper.SetDefault("CHAT_HISTORY_TTL", "24h")

	viper.SetDefault("CHAT_HEALTH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CHAT_HEALTH_ENABLED", false)

	viper.SetDefault("DASHBOARD_TOP_LIMIT", 5)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	config.Database.DSN = BuildDSN(config.Database)

	if config.Dashboard.TopLimit <= 0 {
		config.Dashboard.TopLimit = 5
	}

	return config, nil
}

// BuildDSN monta a string de conexão a partir das partes configuradas
func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
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
