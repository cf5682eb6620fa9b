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

const (
	EngineModeRemote = "remote"
	EngineModeLocal  = "local"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Engine      Engine      `mapstructure:",squash"`
	Upload      Upload      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	ChartRepair ChartRepair `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	SSLMode     string `mapstructure:"database_sslmode"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

// Engine configura o motor de recomendação de gráficos.
// Mode "remote" usa o serviço HTTP em URL, "local" usa o motor embutido.
type Engine struct {
	Mode    string        `mapstructure:"engine_mode"`
	URL     string        `mapstructure:"engine_url"`
	Timeout time.Duration `mapstructure:"engine_timeout"`
}

type Upload struct {
	MaxMemoryMB        int64  `mapstructure:"upload_max_memory_mb"`
	DefaultProjectType string `mapstructure:"upload_default_project_type"`
}

type Auth struct {
	Enabled    bool   `mapstructure:"auth_enabled"`
	Secret     string `mapstructure:"auth_secret"`
	APIKeyHash string `mapstructure:"auth_api_key_hash"`
}

type ChartRepair struct {
	CronSchedule string `mapstructure:"chart_repair_cron"`
	Enabled      bool   `mapstructure:"chart_repair_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("ENGINE_MODE", EngineModeRemote)
	viper.SetDefault("ENGINE_URL", "http://127.0.0.1:8000")
	viper.SetDefault("ENGINE_TIMEOUT", "30s")

	viper.SetDefault("UPLOAD_MAX_MEMORY_MB", 32)
	viper.SetDefault("UPLOAD_DEFAULT_PROJECT_TYPE", "general")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_API_KEY_HASH", "")

	viper.SetDefault("CHART_REPAIR_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("CHART_REPAIR_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

// Validate confere as combinações de configuração que não têm default seguro
func (c *Config) Validate() error {
	switch c.Engine.Mode {
	case EngineModeRemote:
		if c.Engine.URL == "" {
			return fmt.Errorf("ENGINE_URL é obrigatório quando ENGINE_MODE=%s", EngineModeRemote)
		}
	case EngineModeLocal:
	default:
		return fmt.Errorf("ENGINE_MODE inválido: %q", c.Engine.Mode)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DATABASE_DRIVER inválido: %q", c.Database.Driver)
	}

	if c.Upload.DefaultProjectType == "" {
		c.Upload.DefaultProjectType = "general"
	}

	return nil
}

// BuildDSN monta a string de conexão do driver configurado.
// Para sqlite, DATABASE_URL é o caminho do arquivo.
func (d Database) BuildDSN() string {
	if d.Driver == DriverSQLite {
		return d.URL
	}

	dsn := fmt.Sprintf("%s://%s:%s@%s", d.Driver, d.User, d.Password, d.URL)
	if d.SSLMode != "" && !strings.Contains(d.URL, "sslmode=") {
		separator := "?"
		if strings.Contains(d.URL, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=" + d.SSLMode
	}

	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
