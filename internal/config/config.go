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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Google       Google       `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	BudgetReview BudgetReview `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// HasCredentials indica se a integração com o Meta pode ser registrada
func (m Meta) HasCredentials() bool {
	return m.AccessToken != "" || m.LongLivedToken != ""
}

type Google struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	APIVersion      string `mapstructure:"google_ads_api_version"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	TokenURL        string `mapstructure:"google_ads_token_url"`
}

func (g Google) HasCredentials() bool {
	return g.DeveloperToken != "" && g.ClientID != "" && g.ClientSecret != "" && g.RefreshToken != ""
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type BudgetReview struct {
	RequestDelay               time.Duration `mapstructure:"budget_review_request_delay"`
	AdjustmentThresholdPercent float64       `mapstructure:"budget_review_adjustment_threshold_percent"`
	MetaCronSchedule           string        `mapstructure:"budget_review_meta_cron"`
	GoogleCronSchedule         string        `mapstructure:"budget_review_google_cron"`
	Enabled                    bool          `mapstructure:"budget_review_enabled"`
	UpdateCampaignHealth       bool          `mapstructure:"budget_review_update_campaign_health"`
	LogsDefaultLimit           int           `mapstructure:"budget_review_logs_default_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/budget_review?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("META_LONG_LIVED_TOKEN", "")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Defaults para a revisão de orçamentos
	viper.SetDefault("BUDGET_REVIEW_REQUEST_DELAY", "500ms")           // intervalo entre clientes no lote
	viper.SetDefault("BUDGET_REVIEW_ADJUSTMENT_THRESHOLD_PERCENT", 10) // desvio que exige ajuste
	viper.SetDefault("BUDGET_REVIEW_META_CRON", "0 7 * * *")           // Todos os dias às 7h da manhã
	viper.SetDefault("BUDGET_REVIEW_GOOGLE_CRON", "30 7 * * *")        // Todos os dias às 7h30 da manhã
	viper.SetDefault("BUDGET_REVIEW_ENABLED", false)
	viper.SetDefault("BUDGET_REVIEW_UPDATE_CAMPAIGN_HEALTH", true)
	viper.SetDefault("BUDGET_REVIEW_LOGS_DEFAULT_LIMIT", 20)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("METRICS_ENABLED", true)
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

	if err := Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Decode aplica as configurações do viper na struct e preenche os campos derivados
func Decode(config *Config) error {
	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
