package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                    App                    `mapstructure:",squash"`
	Server                 Server                 `mapstructure:",squash"`
	Storage                Storage                `mapstructure:",squash"`
	DailyConsolidationSync DailyConsolidationSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Storage agrupa os caminhos de dados do pipeline. A data de negócio nunca
// vem daqui: é sempre um argumento explícito da execução.
type Storage struct {
	InputDir     string `mapstructure:"input_dir"`
	OutputDir    string `mapstructure:"output_dir"`
	DatabasePath string `mapstructure:"database_path"`
}

type DailyConsolidationSync struct {
	CronSchedule string `mapstructure:"daily_consolidation_cron"`
	LookbackDays int    `mapstructure:"daily_consolidation_lookback_days"`
	Enabled      bool   `mapstructure:"daily_consolidation_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("INPUT_DIR", "data/input")
	viper.SetDefault("OUTPUT_DIR", "data/out")
	viper.SetDefault("DATABASE_PATH", filepath.Join("data", "out", "sales.db"))

	// Defaults para a consolidação agendada (processa o dia anterior)
	viper.SetDefault("DAILY_CONSOLIDATION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DAILY_CONSOLIDATION_LOOKBACK_DAYS", 1)
	viper.SetDefault("DAILY_CONSOLIDATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando defaults e variáveis de ambiente")
}
