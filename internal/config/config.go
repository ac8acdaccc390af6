package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	GoogleAds  GoogleAds  `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	Tenants    Tenants    `mapstructure:",squash"`
	BudgetSync BudgetSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	AccessToken    string `mapstructure:"google_ads_access_token"`
}

type Sheets struct {
	BaseURL string `mapstructure:"sheets_base_url"`
	APIKey  string `mapstructure:"sheets_api_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cache struct {
	Dir string `mapstructure:"cache_dir"`
}

type Tenants struct {
	Dir string `mapstructure:"tenants_dir"`
}

type BudgetSync struct {
	CronSchedule string `mapstructure:"budget_sync_cron"`
	Enabled      bool   `mapstructure:"budget_sync_enabled"`
	DryRun       bool   `mapstructure:"budget_sync_dry_run"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/spendsphere")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com/v4")
	viper.SetDefault("SHEETS_API_KEY", "your_api_key")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("CACHE_DIR", "./data/cache")
	viper.SetDefault("TENANTS_DIR", "./config/tenants")

	// Defaults para a sincronização automática de orçamentos
	viper.SetDefault("BUDGET_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("BUDGET_SYNC_ENABLED", false)    // Habilitar sincronização automática
	viper.SetDefault("BUDGET_SYNC_DRY_RUN", true)     // Execuções agendadas sem aplicar mutações

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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
