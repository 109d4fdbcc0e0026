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
	DriverMongoDB = "mongodb"
	DriverMemory  = "memory"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Performance Performance `mapstructure:",squash"`
	StoreHealth StoreHealth `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Driver         string        `mapstructure:"database_driver"`
	URL            string        `mapstructure:"database_url"`
	Name           string        `mapstructure:"database_name"`
	SeedFile       string        `mapstructure:"database_seed_file"`
	ConnectTimeout time.Duration `mapstructure:"database_connect_timeout"`
}

type Performance struct {
	MaxConcurrentFetches int `mapstructure:"performance_max_concurrent_fetches"`
}

// DateLayout é o formato das datas do painel (dailyData.date)
const DateLayout = "2006-01-02"

type Dashboard struct {
	// Vazio usa a data corrente
	ReferenceDate string `mapstructure:"dashboard_reference_date"`
}

// Date retorna a data de referência, ou o zero quando não configurada
func (d Dashboard) Date() time.Time {
	date, err := time.Parse(DateLayout, strings.TrimSpace(d.ReferenceDate))
	if err != nil {
		return time.Time{}
	}
	return date
}

type StoreHealth struct {
	CronSchedule string `mapstructure:"store_health_cron"`
	Enabled      bool   `mapstructure:"store_health_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5001)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverMongoDB)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "admin-dashboard")
	viper.SetDefault("DATABASE_SEED_FILE", "")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "10s")

	// Buscas de transações feitas em paralelo no endpoint de performance
	viper.SetDefault("PERFORMANCE_MAX_CONCURRENT_FETCHES", 8)

	viper.SetDefault("STORE_HEALTH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("STORE_HEALTH_ENABLED", true)

	viper.SetDefault("DASHBOARD_REFERENCE_DATE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	return config, nil
}

// Validate confere as combinações que a aplicação não consegue usar
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))

	origins := make([]string, 0, len(c.App.AllowedOrigins))
	for _, origin := range c.App.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.App.AllowedOrigins = origins

	switch c.Database.Driver {
	case DriverMongoDB:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL é obrigatório para o driver %s", DriverMongoDB)
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DATABASE_NAME é obrigatório para o driver %s", DriverMongoDB)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("DATABASE_DRIVER inválido: %q", c.Database.Driver)
	}

	if c.Performance.MaxConcurrentFetches <= 0 {
		return fmt.Errorf("PERFORMANCE_MAX_CONCURRENT_FETCHES deve ser maior que zero")
	}

	if raw := strings.TrimSpace(c.Dashboard.ReferenceDate); raw != "" {
		if _, err := time.Parse(DateLayout, raw); err != nil {
			return fmt.Errorf("DASHBOARD_REFERENCE_DATE deve estar no formato %s: %q", DateLayout, raw)
		}
	}

	return nil
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
