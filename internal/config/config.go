package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Dataset  Dataset  `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
	Scenario Scenario `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	CSVPath     string `mapstructure:"dataset_csv_path"`
	Seed        int64  `mapstructure:"dataset_seed"`
	BasePeriods int    `mapstructure:"dataset_base_periods"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	AccessKeyHash string        `mapstructure:"dashboard_access_key_hash"`
	TokenDuration time.Duration `mapstructure:"token_duration"`
}

type Session struct {
	TTL          time.Duration `mapstructure:"session_ttl"`
	SweepCron    string        `mapstructure:"session_sweep_cron"`
	SweepEnabled bool          `mapstructure:"session_sweep_enabled"`
}

type Scenario struct {
	DefaultModelType      string `mapstructure:"scenario_default_model"`
	DefaultForecastMonths int    `mapstructure:"scenario_default_months"`
	MaxForecastMonths     int    `mapstructure:"scenario_max_months"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Defaults do dataset sintético de vendas. A geração cobre 36
	// períodos de 30 dias a partir de 2015-01-01 com seed fixa.
	viper.SetDefault("DATASET_CSV_PATH", "data/synthetic_car_sales.csv")
	viper.SetDefault("DATASET_SEED", 42)
	viper.SetDefault("DATASET_BASE_PERIODS", 36)

	viper.SetDefault("AUTH_SECRET", "local_dev_secret_key") // ONLY LOCAL
	viper.SetDefault("DASHBOARD_ACCESS_KEY_HASH", "")       // Vazio libera qualquer chave em desenvolvimento
	viper.SetDefault("TOKEN_DURATION", "24h")

	// Defaults do ciclo de vida das sessões
	viper.SetDefault("SESSION_TTL", "2h")                  // Sessões ociosas além disso são removidas
	viper.SetDefault("SESSION_SWEEP_CRON", "*/15 * * * *") // Varredura a cada 15 minutos
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)

	// Defaults do motor de cenários
	viper.SetDefault("SCENARIO_DEFAULT_MODEL", domain.ModelTypeLinear)
	viper.SetDefault("SCENARIO_DEFAULT_MONTHS", 6)
	viper.SetDefault("SCENARIO_MAX_MONTHS", 24)
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

	// O motor aceita apenas os modelos linear e forest; qualquer outro
	// valor de default cairia em erro na criação de toda sessão
	if config.Scenario.DefaultModelType != domain.ModelTypeLinear &&
		config.Scenario.DefaultModelType != domain.ModelTypeForest {
		logrus.Warnf("Modelo padrão inválido: %s, usando '%s'", config.Scenario.DefaultModelType, domain.ModelTypeLinear)
		config.Scenario.DefaultModelType = domain.ModelTypeLinear
	}

	if config.Scenario.DefaultForecastMonths < 0 {
		config.Scenario.DefaultForecastMonths = 0
	}

	return config, nil
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
